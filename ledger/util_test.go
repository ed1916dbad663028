package ledger_test

import (
	"context"
	"io"
	"testing"

	"github.com/mmeducare/edutracker_backend/config"
	"github.com/mmeducare/edutracker_backend/ledger"
	"github.com/mmeducare/edutracker_backend/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func openTestStore(t *testing.T) *ledger.Store {
	t.Helper()

	db, err := config.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, err := ledger.New(db, logger)
	if err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	return store
}

func openSeededStore(t *testing.T) *ledger.Store {
	t.Helper()

	store := openTestStore(t)
	if err := store.Seed(context.Background()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func newStudentInput(id string) *models.NewStudent {
	return &models.NewStudent{
		ID:              id,
		Name:            "Test Student",
		Email:           "test@example.com",
		Phone:           "+1 555-0000",
		JoinDate:        "2023-06-01",
		Batch:           "Test Batch 1",
		Course:          "Testing 101",
		Attendance:      90,
		Progress:        50,
		PlacementStatus: models.PlacementStatusNotStarted,
		Location:        "Austin",
		LeadSource:      models.LeadSourceReferral,
		Scc:             "AUS001",
		Market:          "US South",
		Year:            2023,
		Month:           6,
		Mode:            models.TrainingModeOnline,
		Module:          "Testing",
		Status:          models.StudentStatusActive,
	}
}

func mustFinancials(t *testing.T, store *ledger.Store, studentID string) models.StudentFinancials {
	t.Helper()

	detail, err := store.GetStudentByID(context.Background(), studentID)
	if err != nil {
		t.Fatalf("GetStudentByID(%s): %v", studentID, err)
	}
	return detail.Financials
}

func assertConsistentTotals(t *testing.T, fin models.StudentFinancials) {
	t.Helper()

	if !fin.ConsistentTotals() {
		t.Fatalf("totals inconsistent for %s: totalPaid %s + balance %s != totalFee %s",
			fin.StudentID, fin.TotalPaid, fin.Balance, fin.TotalFee)
	}
}
