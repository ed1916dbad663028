package ledger

import (
	"context"

	"github.com/mmeducare/edutracker_backend/config"
	"github.com/mmeducare/edutracker_backend/models"
	"github.com/mmeducare/edutracker_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AddStudent atomically creates the student record, its financials record and
// any seeded schedule/payment rows, then returns the assembled view.
// The financials totals are derived here: TotalPaid is the sum of the seeded
// payments, Balance is TotalFee - TotalPaid, so the totals invariant holds
// from the first write.
func (s *Store) AddStudent(ctx context.Context, input *models.NewStudent, terms *models.NewFinancialsTerms, schedules []models.NewPaymentSchedule, payments []models.NewPayment) (*models.StudentDetail, error) {
	if input == nil || terms == nil {
		return nil, utils.ValidationError("student profile and financial terms are required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	for _, schedule := range schedules {
		if err := schedule.Validate(); err != nil {
			return nil, err
		}
	}

	totalPaid := decimal.Zero
	for _, payment := range payments {
		if payment.StudentID == "" {
			payment.StudentID = input.ID
		}
		if err := payment.Validate(); err != nil {
			return nil, err
		}
		totalPaid = totalPaid.Add(payment.Amount)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", input.ID).Count(&count).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	if count > 0 {
		return nil, utils.ValidationError("student %s already exists", input.ID)
	}

	student := input.Student()
	student.Quoted = terms.TotalFee
	student.TotalCollected = totalPaid
	student.Balance = terms.TotalFee.Sub(totalPaid)

	fin := models.StudentFinancials{
		ID:              utils.NewRecordId("FIN"),
		StudentID:       student.ID,
		TotalFee:        terms.TotalFee,
		TotalPaid:       totalPaid,
		Balance:         terms.TotalFee.Sub(totalPaid),
		NextPaymentDate: terms.NextPaymentDate,
		PaymentTerms:    terms.PaymentTerms,
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.StorageError(tx.Error)
	}

	if err := tx.WithContext(ctx).Create(&student).Error; err != nil {
		tx.Rollback()
		return nil, utils.StorageError(err)
	}
	if err := tx.WithContext(ctx).Create(&fin).Error; err != nil {
		tx.Rollback()
		return nil, utils.StorageError(err)
	}
	for _, input := range schedules {
		status := input.Status
		if status == "" {
			status = models.PaymentStatusPending
		}
		schedule := models.PaymentSchedule{
			ID:                utils.NewRecordId("SCH"),
			StudentID:         student.ID,
			DueDate:           input.DueDate,
			Amount:            input.Amount,
			Status:            status,
			ActualPaymentDate: input.ActualPaymentDate,
			PaymentID:         input.PaymentID,
		}
		if err := tx.WithContext(ctx).Create(&schedule).Error; err != nil {
			tx.Rollback()
			return nil, utils.StorageError(err)
		}
	}
	for _, input := range payments {
		payment := models.Payment{
			ID:            utils.NewRecordId("PAY"),
			StudentID:     student.ID,
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
	}

	if err := tx.Commit().Error; err != nil {
		config.LogError(s.log, "ledger", "AddStudent", "commit", input.ID, err)
		return nil, utils.StorageError(err)
	}

	return s.GetStudentByID(ctx, student.ID)
}

// UpdateStudent merges the non-nil fields of the update into the profile.
// Financials are never touched through this path.
func (s *Store) UpdateStudent(ctx context.Context, id string, updates *models.UpdateStudentInput) (*models.StudentDetail, error) {
	if updates == nil {
		return nil, utils.ValidationError("update payload is required")
	}
	if err := updates.Validate(); err != nil {
		return nil, err
	}

	student, err := studentByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	updates.ApplyTo(student)
	if err := s.db.WithContext(ctx).Save(student).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return s.GetStudentByID(ctx, id)
}

// UpdateStudentFinancials merges partial financial terms for a student.
// TotalPaid/Balance may not be set to a combination that breaks
// TotalPaid + Balance == TotalFee: supplied together they must add up;
// supplied alone the counterpart is recomputed from TotalFee. The legacy
// mirror columns on the student row are updated in the same transaction.
func (s *Store) UpdateStudentFinancials(ctx context.Context, studentID string, updates *models.UpdateFinancialsInput) (*models.StudentDetail, error) {
	if updates == nil {
		return nil, utils.ValidationError("update payload is required")
	}
	if err := updates.Validate(); err != nil {
		return nil, err
	}

	fin, err := financialsByStudent(ctx, s.db, studentID)
	if err != nil {
		return nil, err
	}

	if updates.TotalFee != nil {
		fin.TotalFee = *updates.TotalFee
	}
	if updates.NextPaymentDate != nil {
		fin.NextPaymentDate = *updates.NextPaymentDate
	}
	if updates.PaymentTerms != nil {
		fin.PaymentTerms = *updates.PaymentTerms
	}

	switch {
	case updates.TotalPaid != nil && updates.Balance != nil:
		if !updates.TotalPaid.Add(*updates.Balance).Equal(fin.TotalFee) {
			return nil, utils.ValidationError(
				"totalPaid %s + balance %s does not equal totalFee %s",
				updates.TotalPaid, updates.Balance, fin.TotalFee)
		}
		fin.TotalPaid = *updates.TotalPaid
		fin.Balance = *updates.Balance
	case updates.TotalPaid != nil:
		fin.TotalPaid = *updates.TotalPaid
		fin.Balance = fin.TotalFee.Sub(fin.TotalPaid)
	case updates.Balance != nil:
		fin.Balance = *updates.Balance
		fin.TotalPaid = fin.TotalFee.Sub(fin.Balance)
	case updates.TotalFee != nil:
		// Fee changed without totals: paid amount stands, balance re-derives.
		fin.Balance = fin.TotalFee.Sub(fin.TotalPaid)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.StorageError(tx.Error)
	}
	if err := tx.WithContext(ctx).Save(fin).Error; err != nil {
		tx.Rollback()
		return nil, utils.StorageError(err)
	}

	student, err := studentByID(ctx, tx, studentID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	student.Quoted = fin.TotalFee
	student.TotalCollected = fin.TotalPaid
	student.Balance = fin.Balance
	if err := tx.WithContext(ctx).Save(student).Error; err != nil {
		tx.Rollback()
		return nil, utils.StorageError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.StorageError(err)
	}

	s.log.WithFields(logrus.Fields{
		"studentId": studentID,
		"totalFee":  fin.TotalFee,
		"totalPaid": fin.TotalPaid,
		"balance":   fin.Balance,
	}).Info("student financials updated")

	return s.GetStudentByID(ctx, studentID)
}
