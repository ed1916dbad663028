// Package ledger implements the student financial ledger: a keyed record
// store over four collections (students, student_financials,
// payment_schedules, payments) plus the transactional operations and read
// projections that keep a student's totals, installments and payment history
// mutually consistent.
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

// Store owns the four ledger collections. It is constructed once at session
// start and handed to its callers; nothing in this package keeps a global
// handle.
type Store struct {
	db  *gorm.DB
	log *logrus.Logger
}

// New wraps an open database handle, migrating the ledger tables.
func New(db *gorm.DB, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = config.GetLogger()
	}
	if err := models.MigrateTable(db); err != nil {
		return nil, utils.StorageError(err)
	}
	return &Store{db: db, log: log}, nil
}

// Open opens (or creates) the database at path and wraps it. An empty store
// is seeded with the example dataset when config.SeedOnEmpty allows it.
func Open(ctx context.Context, path string, log *logrus.Logger) (*Store, error) {
	db, err := config.OpenDatabase(path)
	if err != nil {
		return nil, utils.StorageError(err)
	}
	s, err := New(db, log)
	if err != nil {
		return nil, err
	}
	if config.SeedOnEmpty() {
		if err := s.Seed(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// financialsByStudent resolves the one financials record of a student inside
// the given handle (live db or open transaction).
func financialsByStudent(ctx context.Context, tx *gorm.DB, studentID string) (*models.StudentFinancials, error) {
	var fin models.StudentFinancials
	err := tx.WithContext(ctx).Where("student_id = ?", studentID).First(&fin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorRecordNotFound
	}
	if err != nil {
		return nil, utils.StorageError(err)
	}
	return &fin, nil
}

func studentByID(ctx context.Context, tx *gorm.DB, id string) (*models.Student, error) {
	var student models.Student
	err := tx.WithContext(ctx).First(&student, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorRecordNotFound
	}
	if err != nil {
		return nil, utils.StorageError(err)
	}
	return &student, nil
}
