package models

import (
	"time"

	"github.com/mmeducare/edutracker_backend/utils"
	"github.com/shopspring/decimal"
)

// Student is the enrollment and profile record. The Quoted/TotalCollected/
// Balance columns are legacy display mirrors of StudentFinancials, which is
// the source of truth; RecordPayment keeps them in step.
type Student struct {
	ID              string          `gorm:"primaryKey;size:64" json:"id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Email           string          `gorm:"size:255;not null" json:"email"`
	Phone           string          `gorm:"size:64" json:"phone"`
	JoinDate        DateString      `gorm:"size:10" json:"joinDate"`
	Batch           string          `gorm:"size:255" json:"batch"`
	Course          string          `gorm:"size:255" json:"course"`
	Attendance      int             `gorm:"default:0" json:"attendance"`
	Progress        int             `gorm:"default:0" json:"progress"`
	PlacementStatus PlacementStatus `gorm:"size:32" json:"placementStatus"`
	Location        string          `gorm:"size:255" json:"location"`
	LeadSource      LeadSource      `gorm:"size:32" json:"leadSource"`
	Scc             string          `gorm:"size:32" json:"scc"`
	Market          string          `gorm:"size:64" json:"market"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	Mode            TrainingMode    `gorm:"size:16" json:"mode"`
	Module          string          `gorm:"size:255" json:"module"`
	Status          StudentStatus   `gorm:"size:16" json:"status"`
	Quoted          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quoted"`
	DateExpected    DateString      `gorm:"size:10" json:"dateExpected"`
	ExpectedMonth   string          `gorm:"size:16" json:"expectedMonth"`
	TotalCollected  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"totalCollected"`
	Balance         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"balance"`
	Comments        string          `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// StudentDetail is the full aggregate view: profile plus assembled ledger.
type StudentDetail struct {
	Student
	Financials StudentFinancials `json:"financials"`
}

type NewStudent struct {
	ID              string          `json:"id" validate:"required"`
	Name            string          `json:"name" validate:"required"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone"`
	JoinDate        DateString      `json:"joinDate"`
	Batch           string          `json:"batch"`
	Course          string          `json:"course"`
	Attendance      int             `json:"attendance" validate:"gte=0,lte=100"`
	Progress        int             `json:"progress" validate:"gte=0,lte=100"`
	PlacementStatus PlacementStatus `json:"placementStatus"`
	Location        string          `json:"location"`
	LeadSource      LeadSource      `json:"leadSource"`
	Scc             string          `json:"scc"`
	Market          string          `json:"market"`
	Year            int             `json:"year" validate:"gte=0"`
	Month           int             `json:"month" validate:"gte=0,lte=12"`
	Mode            TrainingMode    `json:"mode"`
	Module          string          `json:"module"`
	Status          StudentStatus   `json:"status"`
	Quoted          decimal.Decimal `json:"quoted"`
	DateExpected    DateString      `json:"dateExpected"`
	ExpectedMonth   string          `json:"expectedMonth"`
	Comments        string          `json:"comments"`
}

// Validate enforces field shape before any store mutation.
func (input NewStudent) Validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if input.Status != "" && !input.Status.Valid() {
		return utils.ValidationError("invalid student status %q", input.Status)
	}
	if input.PlacementStatus != "" && !input.PlacementStatus.Valid() {
		return utils.ValidationError("invalid placement status %q", input.PlacementStatus)
	}
	if input.Mode != "" && !input.Mode.Valid() {
		return utils.ValidationError("invalid training mode %q", input.Mode)
	}
	if input.LeadSource != "" && !input.LeadSource.Valid() {
		return utils.ValidationError("invalid lead source %q", input.LeadSource)
	}
	if !input.JoinDate.IsZero() && !input.JoinDate.Valid() {
		return utils.ValidationError("invalid join date %q", input.JoinDate)
	}
	if input.Quoted.IsNegative() {
		return utils.ValidationError("quoted fee cannot be negative")
	}
	return nil
}

func (input NewStudent) Student() Student {
	return Student{
		ID:              input.ID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		JoinDate:        input.JoinDate,
		Batch:           input.Batch,
		Course:          input.Course,
		Attendance:      input.Attendance,
		Progress:        input.Progress,
		PlacementStatus: input.PlacementStatus,
		Location:        input.Location,
		LeadSource:      input.LeadSource,
		Scc:             input.Scc,
		Market:          input.Market,
		Year:            input.Year,
		Month:           input.Month,
		Mode:            input.Mode,
		Module:          input.Module,
		Status:          input.Status,
		Quoted:          input.Quoted,
		DateExpected:    input.DateExpected,
		ExpectedMonth:   input.ExpectedMonth,
		Comments:        input.Comments,
	}
}

// UpdateStudentInput carries a partial profile update; nil fields are left
// unchanged. Financials are never touched through this path.
type UpdateStudentInput struct {
	Name            *string          `json:"name"`
	Email           *string          `json:"email" validate:"omitempty,email"`
	Phone           *string          `json:"phone"`
	JoinDate        *DateString      `json:"joinDate"`
	Batch           *string          `json:"batch"`
	Course          *string          `json:"course"`
	Attendance      *int             `json:"attendance" validate:"omitempty,gte=0,lte=100"`
	Progress        *int             `json:"progress" validate:"omitempty,gte=0,lte=100"`
	PlacementStatus *PlacementStatus `json:"placementStatus"`
	Location        *string          `json:"location"`
	LeadSource      *LeadSource      `json:"leadSource"`
	Scc             *string          `json:"scc"`
	Market          *string          `json:"market"`
	Year            *int             `json:"year"`
	Month           *int             `json:"month" validate:"omitempty,gte=0,lte=12"`
	Mode            *TrainingMode    `json:"mode"`
	Module          *string          `json:"module"`
	Status          *StudentStatus   `json:"status"`
	DateExpected    *DateString      `json:"dateExpected"`
	ExpectedMonth   *string          `json:"expectedMonth"`
	Comments        *string          `json:"comments"`
}

func (input UpdateStudentInput) Validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if input.Status != nil && !input.Status.Valid() {
		return utils.ValidationError("invalid student status %q", *input.Status)
	}
	if input.PlacementStatus != nil && !input.PlacementStatus.Valid() {
		return utils.ValidationError("invalid placement status %q", *input.PlacementStatus)
	}
	if input.Mode != nil && !input.Mode.Valid() {
		return utils.ValidationError("invalid training mode %q", *input.Mode)
	}
	if input.LeadSource != nil && !input.LeadSource.Valid() {
		return utils.ValidationError("invalid lead source %q", *input.LeadSource)
	}
	if input.JoinDate != nil && !input.JoinDate.Valid() {
		return utils.ValidationError("invalid join date %q", *input.JoinDate)
	}
	return nil
}

// ApplyTo merges the non-nil fields into the student record.
func (input UpdateStudentInput) ApplyTo(student *Student) {
	if input.Name != nil {
		student.Name = *input.Name
	}
	if input.Email != nil {
		student.Email = *input.Email
	}
	if input.Phone != nil {
		student.Phone = *input.Phone
	}
	if input.JoinDate != nil {
		student.JoinDate = *input.JoinDate
	}
	if input.Batch != nil {
		student.Batch = *input.Batch
	}
	if input.Course != nil {
		student.Course = *input.Course
	}
	if input.Attendance != nil {
		student.Attendance = *input.Attendance
	}
	if input.Progress != nil {
		student.Progress = *input.Progress
	}
	if input.PlacementStatus != nil {
		student.PlacementStatus = *input.PlacementStatus
	}
	if input.Location != nil {
		student.Location = *input.Location
	}
	if input.LeadSource != nil {
		student.LeadSource = *input.LeadSource
	}
	if input.Scc != nil {
		student.Scc = *input.Scc
	}
	if input.Market != nil {
		student.Market = *input.Market
	}
	if input.Year != nil {
		student.Year = *input.Year
	}
	if input.Month != nil {
		student.Month = *input.Month
	}
	if input.Mode != nil {
		student.Mode = *input.Mode
	}
	if input.Module != nil {
		student.Module = *input.Module
	}
	if input.Status != nil {
		student.Status = *input.Status
	}
	if input.DateExpected != nil {
		student.DateExpected = *input.DateExpected
	}
	if input.ExpectedMonth != nil {
		student.ExpectedMonth = *input.ExpectedMonth
	}
	if input.Comments != nil {
		student.Comments = *input.Comments
	}
}
