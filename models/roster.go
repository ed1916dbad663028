package models

import (
	"time"

	"github.com/mmeducare/edutracker_backend/utils"
)

// Roster records back the presentational pages of the dashboard (trainers,
// batches, job postings, interviews). They carry no ledger rules; plain CRUD.

type Trainer struct {
	ID               string        `gorm:"primaryKey;size:64" json:"id"`
	Name             string        `gorm:"size:255;not null" json:"name"`
	Email            string        `gorm:"size:255" json:"email"`
	Phone            string        `gorm:"size:64" json:"phone"`
	Expertise        []string      `gorm:"serializer:json" json:"expertise"`
	JoinDate         DateString    `gorm:"size:10" json:"joinDate"`
	ActiveBatches    int           `gorm:"default:0" json:"activeBatches"`
	CompletedBatches int           `gorm:"default:0" json:"completedBatches"`
	Rating           float64       `gorm:"default:0" json:"rating"`
	Status           TrainerStatus `gorm:"size:16" json:"status"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t Trainer) Validate() error {
	if t.ID == "" || t.Name == "" {
		return utils.ValidationError("trainer id and name are required")
	}
	if t.Status != "" && !t.Status.Valid() {
		return utils.ValidationError("invalid trainer status %q", t.Status)
	}
	return nil
}

type Batch struct {
	ID          string      `gorm:"primaryKey;size:64" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Course      string      `gorm:"size:255" json:"course"`
	Trainer     string      `gorm:"size:255" json:"trainer"`
	StartDate   DateString  `gorm:"size:10" json:"startDate"`
	EndDate     DateString  `gorm:"size:10" json:"endDate"`
	Time        string      `gorm:"size:64" json:"time"`
	Students    int         `gorm:"default:0" json:"students"`
	MaxCapacity int         `gorm:"default:0" json:"maxCapacity"`
	Progress    int         `gorm:"default:0" json:"progress"`
	Status      BatchStatus `gorm:"size:16" json:"status"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b Batch) Validate() error {
	if b.ID == "" || b.Name == "" {
		return utils.ValidationError("batch id and name are required")
	}
	if b.Status != "" && !b.Status.Valid() {
		return utils.ValidationError("invalid batch status %q", b.Status)
	}
	return nil
}

type JobPosting struct {
	ID          string     `gorm:"primaryKey;size:64" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Company     string     `gorm:"size:255" json:"company"`
	Location    string     `gorm:"size:255" json:"location"`
	JobType     JobType    `gorm:"size:16" json:"jobType"`
	Salary      string     `gorm:"size:64" json:"salary"`
	PostedDate  DateString `gorm:"size:10" json:"postedDate"`
	Applicants  int        `gorm:"default:0" json:"applicants"`
	Status      JobStatus  `gorm:"size:16" json:"status"`
	Description string     `gorm:"type:text" json:"description"`
	Skills      []string   `gorm:"serializer:json" json:"skills"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (j JobPosting) Validate() error {
	if j.ID == "" || j.Title == "" {
		return utils.ValidationError("job id and title are required")
	}
	if j.JobType != "" && !j.JobType.Valid() {
		return utils.ValidationError("invalid job type %q", j.JobType)
	}
	if j.Status != "" && !j.Status.Valid() {
		return utils.ValidationError("invalid job status %q", j.Status)
	}
	return nil
}

type Interview struct {
	ID        string          `gorm:"primaryKey;size:64" json:"id"`
	Student   string          `gorm:"size:255;not null" json:"student"`
	Company   string          `gorm:"size:255" json:"company"`
	JobTitle  string          `gorm:"size:255" json:"jobTitle"`
	Date      DateString      `gorm:"size:10" json:"date"`
	Time      string          `gorm:"size:32" json:"time"`
	Type      InterviewType   `gorm:"size:16" json:"type"`
	Location  string          `gorm:"size:255" json:"location"`
	Status    InterviewStatus `gorm:"size:16" json:"status"`
	Feedback  string          `gorm:"type:text" json:"feedback,omitempty"`
	Result    InterviewResult `gorm:"size:16" json:"result,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (i Interview) Validate() error {
	if i.ID == "" || i.Student == "" {
		return utils.ValidationError("interview id and student are required")
	}
	if i.Type != "" && !i.Type.Valid() {
		return utils.ValidationError("invalid interview type %q", i.Type)
	}
	if i.Status != "" && !i.Status.Valid() {
		return utils.ValidationError("invalid interview status %q", i.Status)
	}
	if i.Result != "" && !i.Result.Valid() {
		return utils.ValidationError("invalid interview result %q", i.Result)
	}
	return nil
}
