package ledger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/mmeducare/edutracker_backend/models"
	"github.com/mmeducare/edutracker_backend/utils"
)

func TestGetStudentByID_NotFound(t *testing.T) {
	store := openSeededStore(t)

	_, err := store.GetStudentByID(context.Background(), "S404")
	if !utils.IsNotFound(err) {
		t.Fatalf("err = %v, want record not found", err)
	}
}

func TestGetStudentByID_IdempotentReads(t *testing.T) {
	store := openSeededStore(t)
	ctx := context.Background()

	first, err := store.GetStudentByID(ctx, "S001")
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := store.GetStudentByID(ctx, "S001")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("aggregate views differ without intervening mutation:\n%s\n%s", a, b)
	}
}

func TestGetStudentByID_OrdersCollections(t *testing.T) {
	store := openSeededStore(t)

	detail, err := store.GetStudentByID(context.Background(), "S001")
	if err != nil {
		t.Fatalf("GetStudentByID: %v", err)
	}

	schedules := detail.Financials.Schedules
	for i := 1; i < len(schedules); i++ {
		if schedules[i].DueDate.Before(schedules[i-1].DueDate) {
			t.Fatalf("schedules out of due-date order at %d: %s before %s",
				i, schedules[i].DueDate, schedules[i-1].DueDate)
		}
	}

	payments := detail.Financials.Payments
	for i := 1; i < len(payments); i++ {
		if payments[i-1].Date.Before(payments[i].Date) {
			t.Fatalf("payments not date-descending at %d: %s then %s",
				i, payments[i-1].Date, payments[i].Date)
		}
	}
}

// Seeding an empty store yields the three example students, each fully
// reconstructible through GetStudentByID; a second seed is a no-op.
func TestSeed_OnceAndReconstructible(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	students, err := store.GetAllStudents(ctx)
	if err != nil {
		t.Fatalf("GetAllStudents: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("students = %d, want 3", len(students))
	}

	wantSchedules := map[string]int{"S001": 6, "S002": 6, "S003": 1}
	wantPayments := map[string]int{"S001": 3, "S002": 4, "S003": 1}
	for _, listed := range students {
		detail, err := store.GetStudentByID(ctx, listed.ID)
		if err != nil {
			t.Fatalf("GetStudentByID(%s): %v", listed.ID, err)
		}
		if len(detail.Financials.Schedules) != wantSchedules[listed.ID] {
			t.Fatalf("%s schedules = %d, want %d",
				listed.ID, len(detail.Financials.Schedules), wantSchedules[listed.ID])
		}
		if len(detail.Financials.Payments) != wantPayments[listed.ID] {
			t.Fatalf("%s payments = %d, want %d",
				listed.ID, len(detail.Financials.Payments), wantPayments[listed.ID])
		}
		assertConsistentTotals(t, detail.Financials)
	}
}

func TestGetDashboardStats(t *testing.T) {
	store := openSeededStore(t)

	stats, err := store.GetDashboardStats(context.Background())
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.TotalStudents != 3 || stats.ActiveStudents != 3 {
		t.Fatalf("students = %d/%d, want 3/3", stats.TotalStudents, stats.ActiveStudents)
	}
	if stats.PlacedStudents != 1 {
		t.Fatalf("placed = %d, want 1", stats.PlacedStudents)
	}
	if !stats.FeesCollected.Equal(dec(8000)) {
		t.Fatalf("feesCollected = %s, want 8000", stats.FeesCollected)
	}
	if !stats.FeesOutstanding.Equal(dec(2500)) {
		t.Fatalf("feesOutstanding = %s, want 2500", stats.FeesOutstanding)
	}
	if stats.ActiveBatches != 2 || stats.OpenJobs != 2 || stats.ScheduledInterviews != 1 {
		t.Fatalf("roster stats = %d/%d/%d, want 2/2/1",
			stats.ActiveBatches, stats.OpenJobs, stats.ScheduledInterviews)
	}
}

func TestRosterRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateTrainer(ctx, &models.Trainer{
		ID: "T010", Name: "Priya Nair", Expertise: []string{"Go", "SQL"},
		JoinDate: "2024-02-01", Status: models.TrainerStatusActive,
	}); err != nil {
		t.Fatalf("CreateTrainer: %v", err)
	}

	active := models.TrainerStatusActive
	trainers, err := store.GetTrainers(ctx, &active)
	if err != nil {
		t.Fatalf("GetTrainers: %v", err)
	}
	if len(trainers) != 1 || trainers[0].ID != "T010" {
		t.Fatalf("trainers = %+v, want single T010", trainers)
	}
	if len(trainers[0].Expertise) != 2 || trainers[0].Expertise[0] != "Go" {
		t.Fatalf("expertise round-trip = %v", trainers[0].Expertise)
	}

	if _, err := store.CreateInterview(ctx, &models.Interview{ID: "I010"}); !utils.IsValidation(err) {
		t.Fatalf("interview without student err = %v, want validation error", err)
	}
}
