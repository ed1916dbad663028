package models_test

import (
	"testing"

	"github.com/mmeducare/edutracker_backend/models"
	"github.com/shopspring/decimal"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestPaymentProgress(t *testing.T) {
	cases := []struct {
		fee, paid int64
		want      int
	}{
		{3500, 2000, 57},
		{3000, 3000, 100},
		{4000, 0, 0},
		{0, 0, 0},
		{3000, 1000, 33},
	}
	for _, c := range cases {
		fin := models.StudentFinancials{TotalFee: dec(c.fee), TotalPaid: dec(c.paid)}
		if got := models.PaymentProgress(fin); got != c.want {
			t.Fatalf("PaymentProgress(fee=%d paid=%d) = %d, want %d", c.fee, c.paid, got, c.want)
		}
	}
}

func TestNextDueSchedule(t *testing.T) {
	schedules := []models.PaymentSchedule{
		{ID: "SCH003", DueDate: "2023-10-15", Status: models.PaymentStatusPaid},
		{ID: "SCH005", DueDate: "2023-12-15", Status: models.PaymentStatusPending},
		{ID: "SCH004", DueDate: "2023-11-15", Status: models.PaymentStatusPending},
	}
	next := models.NextDueSchedule(schedules)
	if next == nil || next.ID != "SCH004" {
		t.Fatalf("next due = %+v, want SCH004", next)
	}

	// Same due date: smaller id wins.
	tied := []models.PaymentSchedule{
		{ID: "SCHB", DueDate: "2023-11-15", Status: models.PaymentStatusPending},
		{ID: "SCHA", DueDate: "2023-11-15", Status: models.PaymentStatusPending},
	}
	next = models.NextDueSchedule(tied)
	if next == nil || next.ID != "SCHA" {
		t.Fatalf("tie-break next due = %+v, want SCHA", next)
	}

	if models.NextDueSchedule(nil) != nil {
		t.Fatal("no schedules should yield nil")
	}
	allPaid := []models.PaymentSchedule{{ID: "SCH001", DueDate: "2023-08-15", Status: models.PaymentStatusPaid}}
	if models.NextDueSchedule(allPaid) != nil {
		t.Fatal("no pending schedules should yield nil")
	}
}

func TestScheduleRunningTotals(t *testing.T) {
	schedules := []models.PaymentSchedule{
		{ID: "SCH002", DueDate: "2023-09-15", Amount: dec(500)},
		{ID: "SCH001", DueDate: "2023-08-15", Amount: dec(1000)},
		{ID: "SCH003", DueDate: "2023-10-15", Amount: dec(500)},
	}
	totals := models.ScheduleRunningTotals(schedules)
	if len(totals) != 3 {
		t.Fatalf("totals = %d entries, want 3", len(totals))
	}

	wantIDs := []string{"SCH001", "SCH002", "SCH003"}
	wantSums := []int64{1000, 1500, 2000}
	for i, entry := range totals {
		if entry.Schedule.ID != wantIDs[i] {
			t.Fatalf("entry %d = %s, want %s", i, entry.Schedule.ID, wantIDs[i])
		}
		if !entry.RunningTotal.Equal(dec(wantSums[i])) {
			t.Fatalf("entry %d running total = %s, want %d", i, entry.RunningTotal, wantSums[i])
		}
	}

	// Input slice order is not disturbed.
	if schedules[0].ID != "SCH002" {
		t.Fatal("ScheduleRunningTotals mutated its input")
	}
}
