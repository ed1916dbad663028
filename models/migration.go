package models

import (
	"gorm.io/gorm"
)

func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&Student{}, &StudentFinancials{}, &PaymentSchedule{}, &Payment{},
		&Trainer{}, &Batch{}, &JobPosting{}, &Interview{},
	)
}
