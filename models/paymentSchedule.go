package models

import (
	"time"

	"github.com/mmeducare/edutracker_backend/utils"
	"github.com/shopspring/decimal"
)

// PaymentSchedule is a single installment obligation. It transitions
// pending -> paid exactly once, stamped by RecordPayment; an installment is
// a plan, so creating one never changes the financials totals.
type PaymentSchedule struct {
	ID                string          `gorm:"primaryKey;size:64" json:"id"`
	StudentID         string          `gorm:"index;size:64;not null" json:"studentId"`
	DueDate           DateString      `gorm:"size:10;not null" json:"dueDate"`
	Amount            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Status            PaymentStatus   `gorm:"size:16;default:pending" json:"status"`
	ActualPaymentDate DateString      `gorm:"size:10" json:"actualPaymentDate,omitempty"`
	PaymentID         string          `gorm:"size:64" json:"paymentId,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPaymentSchedule struct {
	DueDate DateString      `json:"dueDate" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
	// Optional; defaults to pending. Seed imports carry historic paid rows.
	Status            PaymentStatus `json:"status"`
	ActualPaymentDate DateString    `json:"actualPaymentDate"`
	PaymentID         string        `json:"paymentId"`
}

func (input NewPaymentSchedule) Validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if !input.DueDate.Valid() {
		return utils.ValidationError("invalid due date %q", input.DueDate)
	}
	if !input.Amount.IsPositive() {
		return utils.ValidationError("schedule amount must be positive")
	}
	if input.Status != "" && !input.Status.Valid() {
		return utils.ValidationError("invalid schedule status %q", input.Status)
	}
	if !input.ActualPaymentDate.IsZero() && !input.ActualPaymentDate.Valid() {
		return utils.ValidationError("invalid actual payment date %q", input.ActualPaymentDate)
	}
	return nil
}
