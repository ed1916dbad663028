package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusOverdue       PaymentStatus = "overdue"
	PaymentStatusPartiallyPaid PaymentStatus = "partially-paid"
)

// overdue and partially-paid are display states; no operation transitions a
// schedule into them automatically.
func (t PaymentStatus) Valid() bool {
	switch t {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusPartiallyPaid:
		return true
	}
	return false
}

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusCompleted StudentStatus = "completed"
	StudentStatusDropped   StudentStatus = "dropped"
	StudentStatusOnHold    StudentStatus = "on-hold"
)

func (t StudentStatus) Valid() bool {
	switch t {
	case StudentStatusActive, StudentStatusCompleted, StudentStatusDropped, StudentStatusOnHold:
		return true
	}
	return false
}

type PlacementStatus string

const (
	PlacementStatusPlaced     PlacementStatus = "placed"
	PlacementStatusSearching  PlacementStatus = "searching"
	PlacementStatusNotStarted PlacementStatus = "not-started"
	PlacementStatusOptedOut   PlacementStatus = "opted-out"
)

func (t PlacementStatus) Valid() bool {
	switch t {
	case PlacementStatusPlaced, PlacementStatusSearching, PlacementStatusNotStarted, PlacementStatusOptedOut:
		return true
	}
	return false
}

type TrainingMode string

const (
	TrainingModeOnline  TrainingMode = "Online"
	TrainingModeOffline TrainingMode = "Offline"
	TrainingModeHybrid  TrainingMode = "Hybrid"
)

func (t TrainingMode) Valid() bool {
	switch t {
	case TrainingModeOnline, TrainingModeOffline, TrainingModeHybrid:
		return true
	}
	return false
}

type LeadSource string

const (
	LeadSourceReferral    LeadSource = "Referral"
	LeadSourceWebsite     LeadSource = "Website"
	LeadSourceSocialMedia LeadSource = "Social Media"
	LeadSourcePartner     LeadSource = "Partner"
	LeadSourceEvent       LeadSource = "Event"
	LeadSourceDirect      LeadSource = "Direct"
	LeadSourceOther       LeadSource = "Other"
)

func (t LeadSource) Valid() bool {
	leadSources := map[LeadSource]bool{
		LeadSourceReferral:    true,
		LeadSourceWebsite:     true,
		LeadSourceSocialMedia: true,
		LeadSourcePartner:     true,
		LeadSourceEvent:       true,
		LeadSourceDirect:      true,
		LeadSourceOther:       true,
	}
	return leadSources[t]
}

type TrainerStatus string

const (
	TrainerStatusActive   TrainerStatus = "active"
	TrainerStatusOnLeave  TrainerStatus = "on-leave"
	TrainerStatusInactive TrainerStatus = "inactive"
)

func (t TrainerStatus) Valid() bool {
	switch t {
	case TrainerStatusActive, TrainerStatusOnLeave, TrainerStatusInactive:
		return true
	}
	return false
}

type BatchStatus string

const (
	BatchStatusActive    BatchStatus = "active"
	BatchStatusUpcoming  BatchStatus = "upcoming"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusCancelled BatchStatus = "cancelled"
)

func (t BatchStatus) Valid() bool {
	switch t {
	case BatchStatusActive, BatchStatusUpcoming, BatchStatusCompleted, BatchStatusCancelled:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusFilled JobStatus = "filled"
	JobStatusClosed JobStatus = "closed"
)

func (t JobStatus) Valid() bool {
	switch t {
	case JobStatusOpen, JobStatusFilled, JobStatusClosed:
		return true
	}
	return false
}

type InterviewType string

const (
	InterviewTypeInPerson InterviewType = "in-person"
	InterviewTypeRemote   InterviewType = "remote"
	InterviewTypePhone    InterviewType = "phone"
)

func (t InterviewType) Valid() bool {
	switch t {
	case InterviewTypeInPerson, InterviewTypeRemote, InterviewTypePhone:
		return true
	}
	return false
}

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
	InterviewStatusNoShow    InterviewStatus = "no-show"
)

func (t InterviewStatus) Valid() bool {
	switch t {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled, InterviewStatusNoShow:
		return true
	}
	return false
}

type InterviewResult string

const (
	InterviewResultSelected InterviewResult = "selected"
	InterviewResultRejected InterviewResult = "rejected"
	InterviewResultPending  InterviewResult = "pending"
)

func (t InterviewResult) Valid() bool {
	switch t {
	case InterviewResultSelected, InterviewResultRejected, InterviewResultPending:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// DateString is a calendar date stored as "2006-01-02". Lexicographic order
// equals chronological order, so it can be compared and sorted as a string.
type DateString string

func DateStringOf(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

func (d DateString) Time() (time.Time, error) {
	return time.Parse(dateLayout, string(d))
}

func (d DateString) Valid() bool {
	_, err := d.Time()
	return err == nil
}

func (d DateString) IsZero() bool {
	return d == ""
}

func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// Value implements the driver.Valuer interface
func (d DateString) Value() (driver.Value, error) {
	return string(d), nil
}

// Scan implements the sql.Scanner interface
func (d *DateString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case string:
		*d = DateString(v)
	case []byte:
		*d = DateString(v)
	case time.Time:
		*d = DateStringOf(v)
	default:
		return fmt.Errorf("cannot convert %T to DateString", value)
	}
	return nil
}
