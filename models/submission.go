package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// SubmissionStatus is the two-state submission lifecycle. The legacy schema
// stored a mix of Portuguese and English tokens under inconsistent casing
// ("respondida", "submetido", "enviado", "SUBMITTED", ...); those are
// translated once, here, when rows are scanned. Business logic only ever sees
// PENDING or SUBMITTED.
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "PENDING"
	StatusSubmitted SubmissionStatus = "SUBMITTED"
)

// NormalizeSubmissionStatus maps any stored status token to the canonical value.
func NormalizeSubmissionStatus(raw string) SubmissionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "submitted", "respondida", "submetido", "enviado":
		return StatusSubmitted
	default:
		return StatusPending
	}
}

func (s *SubmissionStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = StatusPending
	case []byte:
		*s = NormalizeSubmissionStatus(string(v))
	case string:
		*s = NormalizeSubmissionStatus(v)
	default:
		return fmt.Errorf("unsupported submission status type %T", value)
	}
	return nil
}

func (s SubmissionStatus) Value() (driver.Value, error) {
	if s == "" {
		return string(StatusPending), nil
	}
	return string(s), nil
}

// TaskSubmission holds a student's attempt at a task. The composite unique
// index backs the at-most-one-row-per-(task, student) invariant so concurrent
// submits cannot create duplicates.
type TaskSubmission struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	TaskID      uint             `gorm:"not null;uniqueIndex:idx_task_student" json:"task_id"`
	StudentID   uint             `gorm:"not null;uniqueIndex:idx_task_student" json:"student_id"`
	Points      int              `gorm:"not null;default:0" json:"points"`
	Status      SubmissionStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	SubmittedAt *time.Time       `json:"submitted_at"`
	Link        *string          `gorm:"size:500" json:"link"`

	Task    *Task    `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (TaskSubmission) TableName() string {
	return "task_submissions"
}
