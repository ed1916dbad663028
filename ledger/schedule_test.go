package ledger_test

import (
	"context"
	"testing"

	"github.com/mmeducare/edutracker_backend/models"
	"github.com/mmeducare/edutracker_backend/utils"
)

// Adding an installment is planning, not paying: the financials snapshot must
// be identical before and after except for the new schedule's presence.
func TestAddPaymentSchedule_LeavesTotalsUntouched(t *testing.T) {
	store := openSeededStore(t)
	ctx := context.Background()

	before := mustFinancials(t, store, "S001")

	schedule, err := store.AddPaymentSchedule(ctx, "S001", &models.NewPaymentSchedule{
		DueDate: "2024-02-15",
		Amount:  dec(500),
	})
	if err != nil {
		t.Fatalf("AddPaymentSchedule: %v", err)
	}
	if schedule.Status != models.PaymentStatusPending {
		t.Fatalf("status = %s, want pending", schedule.Status)
	}
	if schedule.ActualPaymentDate != "" || schedule.PaymentID != "" {
		t.Fatal("new schedule must carry no payment stamps")
	}

	after := mustFinancials(t, store, "S001")
	if !after.TotalFee.Equal(before.TotalFee) ||
		!after.TotalPaid.Equal(before.TotalPaid) ||
		!after.Balance.Equal(before.Balance) {
		t.Fatalf("totals changed: %s/%s/%s -> %s/%s/%s",
			before.TotalFee, before.TotalPaid, before.Balance,
			after.TotalFee, after.TotalPaid, after.Balance)
	}
	if len(after.Schedules) != len(before.Schedules)+1 {
		t.Fatalf("schedules = %d, want %d", len(after.Schedules), len(before.Schedules)+1)
	}
	if len(after.Payments) != len(before.Payments) {
		t.Fatalf("payments = %d, want unchanged %d", len(after.Payments), len(before.Payments))
	}
}

func TestAddPaymentSchedule_RequiresFinancialsRecord(t *testing.T) {
	store := openSeededStore(t)

	_, err := store.AddPaymentSchedule(context.Background(), "S404", &models.NewPaymentSchedule{
		DueDate: "2024-02-15",
		Amount:  dec(500),
	})
	if !utils.IsNotFound(err) {
		t.Fatalf("err = %v, want record not found", err)
	}
}

func TestAddPaymentSchedule_RejectsBadInput(t *testing.T) {
	store := openSeededStore(t)
	ctx := context.Background()

	_, err := store.AddPaymentSchedule(ctx, "S001", &models.NewPaymentSchedule{
		DueDate: "2024-02-15",
		Amount:  dec(0),
	})
	if !utils.IsValidation(err) {
		t.Fatalf("zero amount err = %v, want validation error", err)
	}

	_, err = store.AddPaymentSchedule(ctx, "S001", &models.NewPaymentSchedule{
		DueDate: "15/02/2024",
		Amount:  dec(500),
	})
	if !utils.IsValidation(err) {
		t.Fatalf("bad date err = %v, want validation error", err)
	}
}
