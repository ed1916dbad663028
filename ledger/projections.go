package ledger

import (
	"context"
	"errors"

	"github.com/mmeducare/edutracker_backend/models"
	"github.com/mmeducare/edutracker_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStudentByID joins the student with its financials, schedules (due date
// ascending) and payments (date descending) into one aggregate view.
func (s *Store) GetStudentByID(ctx context.Context, id string) (*models.StudentDetail, error) {
	student, err := studentByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return s.assembleDetail(ctx, student)
}

// GetAllStudents applies the same join to every student, in scan order.
// Callers must not rely on the sequence ordering.
func (s *Store) GetAllStudents(ctx context.Context) ([]*models.StudentDetail, error) {
	var students []models.Student
	if err := s.db.WithContext(ctx).Find(&students).Error; err != nil {
		return nil, utils.StorageError(err)
	}

	details := make([]*models.StudentDetail, 0, len(students))
	for i := range students {
		detail, err := s.assembleDetail(ctx, &students[i])
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *Store) assembleDetail(ctx context.Context, student *models.Student) (*models.StudentDetail, error) {
	detail := models.StudentDetail{Student: *student}

	// Exactly one financials record is expected per student; an absent one
	// leaves a zero-valued ledger rather than failing the whole view.
	var fin models.StudentFinancials
	err := s.db.WithContext(ctx).Where("student_id = ?", student.ID).First(&fin).Error
	switch {
	case err == nil:
		detail.Financials = fin
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, utils.StorageError(err)
	}

	err = s.db.WithContext(ctx).
		Where("student_id = ?", student.ID).
		Order("due_date ASC, id ASC").
		Find(&detail.Financials.Schedules).Error
	if err != nil {
		return nil, utils.StorageError(err)
	}

	err = s.db.WithContext(ctx).
		Where("student_id = ?", student.ID).
		Order("date DESC, id DESC").
		Find(&detail.Financials.Payments).Error
	if err != nil {
		return nil, utils.StorageError(err)
	}

	return &detail, nil
}

// DashboardStats backs the overview cards of the dashboard.
type DashboardStats struct {
	TotalStudents       int64           `json:"totalStudents"`
	ActiveStudents      int64           `json:"activeStudents"`
	PlacedStudents      int64           `json:"placedStudents"`
	ActiveBatches       int64           `json:"activeBatches"`
	OpenJobs            int64           `json:"openJobs"`
	ScheduledInterviews int64           `json:"scheduledInterviews"`
	FeesCollected       decimal.Decimal `json:"feesCollected"`
	FeesOutstanding     decimal.Decimal `json:"feesOutstanding"`
}

func (s *Store) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	dbCtx := s.db.WithContext(ctx)

	if err := dbCtx.Model(&models.Student{}).Count(&stats.TotalStudents).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	if err := dbCtx.Model(&models.Student{}).Where("status = ?", models.StudentStatusActive).Count(&stats.ActiveStudents).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	if err := dbCtx.Model(&models.Student{}).Where("placement_status = ?", models.PlacementStatusPlaced).Count(&stats.PlacedStudents).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	if err := dbCtx.Model(&models.Batch{}).Where("status = ?", models.BatchStatusActive).Count(&stats.ActiveBatches).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	if err := dbCtx.Model(&models.JobPosting{}).Where("status = ?", models.JobStatusOpen).Count(&stats.OpenJobs).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	if err := dbCtx.Model(&models.Interview{}).Where("status = ?", models.InterviewStatusScheduled).Count(&stats.ScheduledInterviews).Error; err != nil {
		return nil, utils.StorageError(err)
	}

	var fins []models.StudentFinancials
	if err := dbCtx.Find(&fins).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	stats.FeesCollected = decimal.Zero
	stats.FeesOutstanding = decimal.Zero
	for _, fin := range fins {
		stats.FeesCollected = stats.FeesCollected.Add(fin.TotalPaid)
		stats.FeesOutstanding = stats.FeesOutstanding.Add(fin.Balance)
	}
	return &stats, nil
}
