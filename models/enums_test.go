package models_test

import (
	"testing"
	"time"

	"github.com/mmeducare/edutracker_backend/models"
)

func TestDateString_OrderMatchesChronology(t *testing.T) {
	cases := []struct {
		earlier, later models.DateString
	}{
		{"2023-09-15", "2023-10-01"},
		{"2023-12-31", "2024-01-01"},
		{"2023-11-15", "2023-11-16"},
	}
	for _, c := range cases {
		if !c.earlier.Before(c.later) {
			t.Fatalf("%s should sort before %s", c.earlier, c.later)
		}
		if c.later.Before(c.earlier) {
			t.Fatalf("%s should not sort before %s", c.later, c.earlier)
		}
	}
}

func TestDateString_Validity(t *testing.T) {
	if !models.DateString("2023-11-15").Valid() {
		t.Fatal("2023-11-15 should be valid")
	}
	for _, bad := range []models.DateString{"15/11/2023", "2023-13-01", "yesterday", ""} {
		if bad.Valid() {
			t.Fatalf("%q should be invalid", bad)
		}
	}
	if !models.DateString("").IsZero() {
		t.Fatal("empty date should be zero")
	}
}

func TestDateString_Scan(t *testing.T) {
	var d models.DateString

	if err := d.Scan("2023-11-15"); err != nil || d != "2023-11-15" {
		t.Fatalf("scan string: %v, got %q", err, d)
	}
	if err := d.Scan([]byte("2023-11-16")); err != nil || d != "2023-11-16" {
		t.Fatalf("scan bytes: %v, got %q", err, d)
	}
	if err := d.Scan(time.Date(2023, 11, 17, 8, 30, 0, 0, time.UTC)); err != nil || d != "2023-11-17" {
		t.Fatalf("scan time: %v, got %q", err, d)
	}
	if err := d.Scan(nil); err != nil || d != "" {
		t.Fatalf("scan nil: %v, got %q", err, d)
	}
	if err := d.Scan(42); err == nil {
		t.Fatal("scan int should fail")
	}
}

func TestEnumMembership(t *testing.T) {
	if !models.PaymentStatusPartiallyPaid.Valid() {
		t.Fatal("partially-paid is a declared payment status")
	}
	if models.PaymentStatus("refunded").Valid() {
		t.Fatal("refunded is not a payment status")
	}
	if !models.LeadSourceSocialMedia.Valid() {
		t.Fatal("Social Media is a declared lead source")
	}
	if models.StudentStatus("expelled").Valid() {
		t.Fatal("expelled is not a student status")
	}
	if !models.TrainingModeHybrid.Valid() {
		t.Fatal("Hybrid is a declared training mode")
	}
}
