package models

import (
	"time"

	"github.com/mmeducare/edutracker_backend/utils"
	"github.com/shopspring/decimal"
)

// StudentFinancials is the source of truth for a student's ledger totals.
// Invariant: TotalPaid + Balance == TotalFee after every mutating operation.
type StudentFinancials struct {
	ID              string          `gorm:"primaryKey;size:64" json:"id"`
	StudentID       string          `gorm:"uniqueIndex;size:64;not null" json:"studentId"`
	TotalFee        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"totalFee"`
	TotalPaid       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"totalPaid"`
	Balance         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"balance"`
	NextPaymentDate DateString      `gorm:"size:10" json:"nextPaymentDate,omitempty"`
	PaymentTerms    string          `gorm:"size:255" json:"paymentTerms"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Assembled at read time; not columns of this table.
	Schedules []PaymentSchedule `gorm:"-" json:"schedules"`
	Payments  []Payment         `gorm:"-" json:"payments"`
}

// ConsistentTotals reports whether TotalPaid + Balance == TotalFee.
func (f StudentFinancials) ConsistentTotals() bool {
	return f.TotalPaid.Add(f.Balance).Equal(f.TotalFee)
}

// NewFinancialsTerms seeds a student's financials record at enrollment;
// TotalPaid and Balance are derived from the seeded payments, never supplied.
type NewFinancialsTerms struct {
	TotalFee        decimal.Decimal `json:"totalFee"`
	NextPaymentDate DateString      `json:"nextPaymentDate"`
	PaymentTerms    string          `json:"paymentTerms"`
}

func (input NewFinancialsTerms) Validate() error {
	if input.TotalFee.IsNegative() {
		return utils.ValidationError("total fee cannot be negative")
	}
	if !input.NextPaymentDate.IsZero() && !input.NextPaymentDate.Valid() {
		return utils.ValidationError("invalid next payment date %q", input.NextPaymentDate)
	}
	return nil
}

// UpdateFinancialsInput is a partial update of financial terms. Supplying
// TotalPaid and Balance together is only accepted when they add up to the
// (possibly updated) TotalFee; supplying one recomputes the other.
type UpdateFinancialsInput struct {
	TotalFee        *decimal.Decimal `json:"totalFee"`
	TotalPaid       *decimal.Decimal `json:"totalPaid"`
	Balance         *decimal.Decimal `json:"balance"`
	NextPaymentDate *DateString      `json:"nextPaymentDate"`
	PaymentTerms    *string          `json:"paymentTerms"`
}

func (input UpdateFinancialsInput) Validate() error {
	if input.TotalFee != nil && input.TotalFee.IsNegative() {
		return utils.ValidationError("total fee cannot be negative")
	}
	if input.TotalPaid != nil && input.TotalPaid.IsNegative() {
		return utils.ValidationError("total paid cannot be negative")
	}
	if input.NextPaymentDate != nil && !input.NextPaymentDate.IsZero() && !input.NextPaymentDate.Valid() {
		return utils.ValidationError("invalid next payment date %q", *input.NextPaymentDate)
	}
	return nil
}
