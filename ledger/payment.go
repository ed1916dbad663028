package ledger

import (
	"context"
	"errors"

	"github.com/mmeducare/edutracker_backend/config"
	"github.com/mmeducare/edutracker_backend/models"
	"github.com/mmeducare/edutracker_backend/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AddPaymentSchedule creates a pending installment for the student. An
// installment is a plan, not a payment: the financials totals are untouched.
func (s *Store) AddPaymentSchedule(ctx context.Context, studentID string, input *models.NewPaymentSchedule) (*models.PaymentSchedule, error) {
	if input == nil {
		return nil, utils.ValidationError("schedule payload is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := financialsByStudent(ctx, s.db, studentID); err != nil {
		return nil, err
	}

	schedule := models.PaymentSchedule{
		ID:        utils.NewRecordId("SCH"),
		StudentID: studentID,
		DueDate:   input.DueDate,
		Amount:    input.Amount,
		Status:    models.PaymentStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&schedule).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return &schedule, nil
}

// RecordPayment applies a received payment as one atomic unit:
//
//  1. insert the immutable payment record;
//  2. raise financials.TotalPaid and lower Balance by the amount;
//  3. mark the earliest-due pending schedule paid (due date, then id,
//     ascending), stamping the actual payment date and the payment id;
//  4. mirror the delta into the legacy student columns.
//
// The balance is not clamped at zero: an over-payment leaves it negative and
// is surfaced as a warning. Either every write commits or none does.
func (s *Store) RecordPayment(ctx context.Context, input *models.NewPayment) (*models.Payment, error) {
	if input == nil {
		return nil, utils.ValidationError("payment payload is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.StorageError(tx.Error)
	}

	fin, err := financialsByStudent(ctx, tx, input.StudentID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	payment := models.Payment{
		ID:            utils.NewRecordId("PAY"),
		StudentID:     input.StudentID,
		Amount:        input.Amount,
		Date:          input.Date,
		PaymentMethod: input.PaymentMethod,
		Reference:     input.Reference,
		Notes:         input.Notes,
	}
	if err := tx.WithContext(ctx).Create(&payment).Error; err != nil {
		tx.Rollback()
		return nil, utils.StorageError(err)
	}

	fin.TotalPaid = fin.TotalPaid.Add(input.Amount)
	fin.Balance = fin.Balance.Sub(input.Amount)
	if err := tx.WithContext(ctx).Save(fin).Error; err != nil {
		tx.Rollback()
		return nil, utils.StorageError(err)
	}

	var schedule models.PaymentSchedule
	err = tx.WithContext(ctx).
		Where("student_id = ? AND status = ?", input.StudentID, models.PaymentStatusPending).
		Order("due_date ASC, id ASC").
		First(&schedule).Error
	switch {
	case err == nil:
		schedule.Status = models.PaymentStatusPaid
		schedule.ActualPaymentDate = input.Date
		schedule.PaymentID = payment.ID
		if err := tx.WithContext(ctx).Save(&schedule).Error; err != nil {
			tx.Rollback()
			return nil, utils.StorageError(err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Nothing pending; the payment still stands on its own.
	default:
		tx.Rollback()
		return nil, utils.StorageError(err)
	}

	student, err := studentByID(ctx, tx, input.StudentID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	student.TotalCollected = student.TotalCollected.Add(input.Amount)
	student.Balance = student.Balance.Sub(input.Amount)
	if err := tx.WithContext(ctx).Save(student).Error; err != nil {
		tx.Rollback()
		return nil, utils.StorageError(err)
	}

	if err := tx.Commit().Error; err != nil {
		config.LogError(s.log, "ledger", "RecordPayment", "commit", input, err)
		return nil, utils.StorageError(err)
	}

	if fin.Balance.IsNegative() {
		s.log.WithFields(logrus.Fields{
			"studentId": input.StudentID,
			"paymentId": payment.ID,
			"amount":    input.Amount,
			"balance":   fin.Balance,
		}).Warn("payment exceeds remaining balance")
	}

	return &payment, nil
}
