package ledger

import (
	"context"

	"github.com/mmeducare/edutracker_backend/config"
	"github.com/mmeducare/edutracker_backend/models"
	"github.com/mmeducare/edutracker_backend/utils"
	"github.com/shopspring/decimal"
)

// Seed loads the fixed example dataset into an empty store so the dashboard
// has content on first run. A populated store is left alone; this is a
// bootstrap convenience, not a business rule.
func (s *Store) Seed(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Student{}).Count(&count).Error; err != nil {
		return utils.StorageError(err)
	}
	if count > 0 {
		s.log.Debug("store already contains data, skipping seed")
		return nil
	}
	return s.loadSeedData(ctx)
}

// Reseed clears every collection and reloads the example dataset. Dev use
// only.
func (s *Store) Reseed(ctx context.Context) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return utils.StorageError(tx.Error)
	}
	for _, model := range []interface{}{
		&models.PaymentSchedule{}, &models.Payment{}, &models.StudentFinancials{}, &models.Student{},
		&models.Trainer{}, &models.Batch{}, &models.JobPosting{}, &models.Interview{},
	} {
		if err := tx.WithContext(ctx).Where("1 = 1").Delete(model).Error; err != nil {
			tx.Rollback()
			return utils.StorageError(err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return utils.StorageError(err)
	}
	return s.loadSeedData(ctx)
}

func (s *Store) loadSeedData(ctx context.Context) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return utils.StorageError(tx.Error)
	}

	records := []interface{}{}
	for i := range seedStudents {
		records = append(records, &seedStudents[i])
	}
	for i := range seedFinancials {
		records = append(records, &seedFinancials[i])
	}
	for i := range seedSchedules {
		records = append(records, &seedSchedules[i])
	}
	for i := range seedPayments {
		records = append(records, &seedPayments[i])
	}
	for i := range seedTrainers {
		records = append(records, &seedTrainers[i])
	}
	for i := range seedBatches {
		records = append(records, &seedBatches[i])
	}
	for i := range seedJobs {
		records = append(records, &seedJobs[i])
	}
	for i := range seedInterviews {
		records = append(records, &seedInterviews[i])
	}

	for _, record := range records {
		if err := tx.WithContext(ctx).Create(record).Error; err != nil {
			tx.Rollback()
			config.LogError(s.log, "ledger", "loadSeedData", "create", record, err)
			return utils.StorageError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.StorageError(err)
	}
	s.log.Info("store seeded with example dataset")
	return nil
}

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

var seedStudents = []models.Student{
	{
		ID: "S001", Name: "Alex Johnson", Email: "alex.j@example.com", Phone: "+1 555-1234",
		JoinDate: "2023-08-15", Batch: "Python Batch 23", Course: "Python Full Stack Development",
		Attendance: 92, Progress: 78, PlacementStatus: models.PlacementStatusSearching,
		Location: "New York", LeadSource: models.LeadSourceWebsite, Scc: "NYC001", Market: "US East",
		Year: 2023, Month: 8, Mode: models.TrainingModeOnline, Module: "Full Stack Python",
		Status: models.StudentStatusActive, Quoted: d(3500), DateExpected: "2023-09-01",
		ExpectedMonth: "Sep-23", TotalCollected: d(2000), Balance: d(1500),
		Comments: "Student requesting extension for final payment",
	},
	{
		ID: "S002", Name: "Emma Wilson", Email: "emma.w@example.com", Phone: "+1 555-2345",
		JoinDate: "2023-07-10", Batch: "Data Science Batch 14", Course: "Data Science & Machine Learning",
		Attendance: 85, Progress: 65, PlacementStatus: models.PlacementStatusSearching,
		Location: "Chicago", LeadSource: models.LeadSourceSocialMedia, Scc: "CHI002", Market: "US Central",
		Year: 2023, Month: 7, Mode: models.TrainingModeHybrid, Module: "Data Science",
		Status: models.StudentStatusActive, Quoted: d(4000), DateExpected: "2023-07-15",
		ExpectedMonth: "Jul-23", TotalCollected: d(3000), Balance: d(1000),
	},
	{
		ID: "S003", Name: "Ryan Martinez", Email: "ryan.m@example.com", Phone: "+1 555-3456",
		JoinDate: "2023-09-01", Batch: "Web Dev Batch 31", Course: "Modern Web Development",
		Attendance: 98, Progress: 92, PlacementStatus: models.PlacementStatusPlaced,
		Location: "San Francisco", LeadSource: models.LeadSourceReferral, Scc: "SF003", Market: "US West",
		Year: 2023, Month: 9, Mode: models.TrainingModeOnline, Module: "Frontend Development",
		Status: models.StudentStatusActive, Quoted: d(3000), DateExpected: "2023-09-05",
		ExpectedMonth: "Sep-23", TotalCollected: d(3000), Balance: d(0),
	},
}

var seedFinancials = []models.StudentFinancials{
	{ID: "FIN001", StudentID: "S001", TotalFee: d(3500), TotalPaid: d(2000), Balance: d(1500),
		NextPaymentDate: "2023-10-15", PaymentTerms: "Monthly installments of $500"},
	{ID: "FIN002", StudentID: "S002", TotalFee: d(4000), TotalPaid: d(3000), Balance: d(1000),
		NextPaymentDate: "2023-11-10", PaymentTerms: "Initial payment + 5 installments"},
	{ID: "FIN003", StudentID: "S003", TotalFee: d(3000), TotalPaid: d(3000), Balance: d(0),
		PaymentTerms: "Full payment"},
}

var seedSchedules = []models.PaymentSchedule{
	{ID: "SCH001", StudentID: "S001", DueDate: "2023-08-15", Amount: d(1000), Status: models.PaymentStatusPaid, ActualPaymentDate: "2023-08-15", PaymentID: "PAY001"},
	{ID: "SCH002", StudentID: "S001", DueDate: "2023-09-15", Amount: d(500), Status: models.PaymentStatusPaid, ActualPaymentDate: "2023-09-16", PaymentID: "PAY002"},
	{ID: "SCH003", StudentID: "S001", DueDate: "2023-10-15", Amount: d(500), Status: models.PaymentStatusPaid, ActualPaymentDate: "2023-10-14", PaymentID: "PAY003"},
	{ID: "SCH004", StudentID: "S001", DueDate: "2023-11-15", Amount: d(500), Status: models.PaymentStatusPending},
	{ID: "SCH005", StudentID: "S001", DueDate: "2023-12-15", Amount: d(500), Status: models.PaymentStatusPending},
	{ID: "SCH006", StudentID: "S001", DueDate: "2024-01-15", Amount: d(500), Status: models.PaymentStatusPending},
	{ID: "SCH007", StudentID: "S002", DueDate: "2023-07-15", Amount: d(1500), Status: models.PaymentStatusPaid, ActualPaymentDate: "2023-07-15", PaymentID: "PAY004"},
	{ID: "SCH008", StudentID: "S002", DueDate: "2023-08-15", Amount: d(500), Status: models.PaymentStatusPaid, ActualPaymentDate: "2023-08-14", PaymentID: "PAY005"},
	{ID: "SCH009", StudentID: "S002", DueDate: "2023-09-15", Amount: d(500), Status: models.PaymentStatusPaid, ActualPaymentDate: "2023-09-15", PaymentID: "PAY006"},
	{ID: "SCH010", StudentID: "S002", DueDate: "2023-10-15", Amount: d(500), Status: models.PaymentStatusPaid, ActualPaymentDate: "2023-10-16", PaymentID: "PAY007"},
	{ID: "SCH011", StudentID: "S002", DueDate: "2023-11-15", Amount: d(500), Status: models.PaymentStatusPending},
	{ID: "SCH012", StudentID: "S002", DueDate: "2023-12-15", Amount: d(500), Status: models.PaymentStatusPending},
	{ID: "SCH013", StudentID: "S003", DueDate: "2023-09-05", Amount: d(3000), Status: models.PaymentStatusPaid, ActualPaymentDate: "2023-09-05", PaymentID: "PAY008"},
}

var seedPayments = []models.Payment{
	{ID: "PAY001", StudentID: "S001", Amount: d(1000), Date: "2023-08-15", PaymentMethod: "Credit Card", Reference: "CC-98765"},
	{ID: "PAY002", StudentID: "S001", Amount: d(500), Date: "2023-09-16", PaymentMethod: "Bank Transfer", Reference: "BT-12345"},
	{ID: "PAY003", StudentID: "S001", Amount: d(500), Date: "2023-10-14", PaymentMethod: "Credit Card", Reference: "CC-54321"},
	{ID: "PAY004", StudentID: "S002", Amount: d(1500), Date: "2023-07-15", PaymentMethod: "Credit Card", Reference: "CC-12345"},
	{ID: "PAY005", StudentID: "S002", Amount: d(500), Date: "2023-08-14", PaymentMethod: "Credit Card", Reference: "CC-23456"},
	{ID: "PAY006", StudentID: "S002", Amount: d(500), Date: "2023-09-15", PaymentMethod: "Bank Transfer", Reference: "BT-34567"},
	{ID: "PAY007", StudentID: "S002", Amount: d(500), Date: "2023-10-16", PaymentMethod: "Bank Transfer", Reference: "BT-45678"},
	{ID: "PAY008", StudentID: "S003", Amount: d(3000), Date: "2023-09-05", PaymentMethod: "Bank Transfer", Reference: "BT-56789"},
}

var seedTrainers = []models.Trainer{
	{ID: "T001", Name: "John Smith", Email: "john.smith@example.com", Phone: "+1 555-1111",
		Expertise: []string{"Python", "Django", "React"}, JoinDate: "2022-05-10",
		ActiveBatches: 2, CompletedBatches: 15, Rating: 4.8, Status: models.TrainerStatusActive},
	{ID: "T002", Name: "Sarah Johnson", Email: "sarah.j@example.com", Phone: "+1 555-2222",
		Expertise: []string{"Data Science", "Machine Learning", "Python"}, JoinDate: "2022-08-01",
		ActiveBatches: 1, CompletedBatches: 9, Rating: 4.6, Status: models.TrainerStatusActive},
	{ID: "T003", Name: "Miguel Alvarez", Email: "miguel.a@example.com", Phone: "+1 555-3333",
		Expertise: []string{"JavaScript", "React", "Node.js"}, JoinDate: "2023-01-16",
		ActiveBatches: 0, CompletedBatches: 4, Rating: 4.4, Status: models.TrainerStatusOnLeave},
}

var seedBatches = []models.Batch{
	{ID: "B001", Name: "Python Full Stack - Batch 23", Course: "Python Full Stack Development",
		Trainer: "John Smith", StartDate: "2023-10-15", EndDate: "2024-01-15",
		Time: "9:00 AM - 12:00 PM", Students: 24, MaxCapacity: 30, Progress: 45,
		Status: models.BatchStatusActive},
	{ID: "B002", Name: "Data Science - Batch 14", Course: "Data Science & Machine Learning",
		Trainer: "Sarah Johnson", StartDate: "2023-09-01", EndDate: "2023-12-20",
		Time: "2:00 PM - 5:00 PM", Students: 18, MaxCapacity: 25, Progress: 70,
		Status: models.BatchStatusActive},
	{ID: "B003", Name: "Web Dev - Batch 32", Course: "Modern Web Development",
		Trainer: "Miguel Alvarez", StartDate: "2024-01-08", EndDate: "2024-04-05",
		Time: "6:00 PM - 9:00 PM", Students: 7, MaxCapacity: 30, Progress: 0,
		Status: models.BatchStatusUpcoming},
}

var seedJobs = []models.JobPosting{
	{ID: "J001", Title: "Python Full Stack Developer", Company: "TechSolutions Inc.",
		Location: "San Francisco, CA", JobType: models.JobTypeFullTime, Salary: "$90,000 - $120,000",
		PostedDate: "2023-10-10", Applicants: 18, Status: models.JobStatusOpen,
		Description: "Full stack development with Python, Django and React.",
		Skills:      []string{"Python", "Django", "React", "PostgreSQL"}},
	{ID: "J002", Title: "Junior Data Analyst", Company: "DataCorp Analytics",
		Location: "Chicago, IL", JobType: models.JobTypeFullTime, Salary: "$65,000 - $80,000",
		PostedDate: "2023-10-22", Applicants: 11, Status: models.JobStatusOpen,
		Description: "Entry-level analytics role with SQL and Python.",
		Skills:      []string{"SQL", "Python", "Tableau"}},
	{ID: "J003", Title: "Frontend Developer (Contract)", Company: "Webify Studio",
		Location: "Remote", JobType: models.JobTypeContract, Salary: "$50/hr",
		PostedDate: "2023-09-28", Applicants: 32, Status: models.JobStatusFilled,
		Description: "Three-month contract building React dashboards.",
		Skills:      []string{"JavaScript", "React", "CSS"}},
}

var seedInterviews = []models.Interview{
	{ID: "I001", Student: "Alex Johnson", Company: "TechSolutions Inc.",
		JobTitle: "Python Full Stack Developer", Date: "2023-11-15", Time: "10:00 AM",
		Type: models.InterviewTypeRemote, Location: "Zoom Meeting",
		Status: models.InterviewStatusScheduled},
	{ID: "I002", Student: "Emma Wilson", Company: "DataCorp Analytics",
		JobTitle: "Junior Data Analyst", Date: "2023-11-08", Time: "2:30 PM",
		Type: models.InterviewTypePhone, Location: "Phone Screen",
		Status: models.InterviewStatusCompleted, Feedback: "Strong SQL, needs practice on case questions",
		Result: models.InterviewResultPending},
	{ID: "I003", Student: "Ryan Martinez", Company: "Webify Studio",
		JobTitle: "Frontend Developer", Date: "2023-10-05", Time: "11:00 AM",
		Type: models.InterviewTypeInPerson, Location: "Webify HQ, SF",
		Status: models.InterviewStatusCompleted, Feedback: "Excellent portfolio walk-through",
		Result: models.InterviewResultSelected},
}
