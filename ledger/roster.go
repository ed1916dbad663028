package ledger

import (
	"context"
	"errors"

	"github.com/mmeducare/edutracker_backend/models"
	"github.com/mmeducare/edutracker_backend/utils"
	"gorm.io/gorm"
)

// Roster records are display scaffolding for the non-ledger pages; plain
// create/list, no business rules.

func (s *Store) CreateTrainer(ctx context.Context, trainer *models.Trainer) (*models.Trainer, error) {
	if trainer == nil {
		return nil, utils.ValidationError("trainer payload is required")
	}
	if err := trainer.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(trainer).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return trainer, nil
}

func (s *Store) GetTrainers(ctx context.Context, status *models.TrainerStatus) ([]*models.Trainer, error) {
	dbCtx := s.db.WithContext(ctx)
	if status != nil {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	var results []*models.Trainer
	if err := dbCtx.Find(&results).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return results, nil
}

func (s *Store) CreateBatch(ctx context.Context, batch *models.Batch) (*models.Batch, error) {
	if batch == nil {
		return nil, utils.ValidationError("batch payload is required")
	}
	if err := batch.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(batch).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return batch, nil
}

func (s *Store) GetBatches(ctx context.Context, status *models.BatchStatus) ([]*models.Batch, error) {
	dbCtx := s.db.WithContext(ctx)
	if status != nil {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	var results []*models.Batch
	if err := dbCtx.Find(&results).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return results, nil
}

func (s *Store) CreateJobPosting(ctx context.Context, job *models.JobPosting) (*models.JobPosting, error) {
	if job == nil {
		return nil, utils.ValidationError("job payload is required")
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return job, nil
}

func (s *Store) GetJobPostings(ctx context.Context, status *models.JobStatus) ([]*models.JobPosting, error) {
	dbCtx := s.db.WithContext(ctx)
	if status != nil {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	var results []*models.JobPosting
	if err := dbCtx.Find(&results).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return results, nil
}

func (s *Store) CreateInterview(ctx context.Context, interview *models.Interview) (*models.Interview, error) {
	if interview == nil {
		return nil, utils.ValidationError("interview payload is required")
	}
	if err := interview.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(interview).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return interview, nil
}

func (s *Store) GetInterviews(ctx context.Context, status *models.InterviewStatus) ([]*models.Interview, error) {
	dbCtx := s.db.WithContext(ctx)
	if status != nil {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	var results []*models.Interview
	if err := dbCtx.Find(&results).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return results, nil
}

// GetInterviewByID exists for the details drawer; not part of the ledger.
func (s *Store) GetInterviewByID(ctx context.Context, id string) (*models.Interview, error) {
	var interview models.Interview
	err := s.db.WithContext(ctx).First(&interview, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorRecordNotFound
	}
	if err != nil {
		return nil, utils.StorageError(err)
	}
	return &interview, nil
}
