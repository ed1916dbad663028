package models

import (
	"time"

	"github.com/mmeducare/edutracker_backend/utils"
	"github.com/shopspring/decimal"
)

// Payment is an immutable record of money received. It is only ever created
// and read.
type Payment struct {
	ID            string          `gorm:"primaryKey;size:64" json:"id"`
	StudentID     string          `gorm:"index;size:64;not null" json:"studentId"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Date          DateString      `gorm:"size:10;not null" json:"date"`
	PaymentMethod string          `gorm:"size:255" json:"paymentMethod"`
	Reference     string          `gorm:"size:255" json:"reference"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewPayment struct {
	StudentID     string          `json:"studentId" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Date          DateString      `json:"date" validate:"required"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes"`
}

func (input NewPayment) Validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if !input.Amount.IsPositive() {
		return utils.ValidationError("payment amount must be positive")
	}
	if !input.Date.Valid() {
		return utils.ValidationError("invalid payment date %q", input.Date)
	}
	return nil
}
