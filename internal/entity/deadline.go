package entity

import (
	"time"
)

const (
	DeadlineTypeDeadline = "deadline"
	DeadlineTypeMeeting  = "meeting"
	DeadlineTypeExam     = "exam"
	DeadlineTypeEvent    = "event"

	DeadlineUpcoming  = "upcoming"
	DeadlineOverdue   = "overdue"
	DeadlineCompleted = "completed"
)

// DeadlineDate is kept as the raw string the client sent (datetime-local
// values have no zone); ISO-ish strings still sort chronologically.
type Deadline struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	DeadlineDate string     `gorm:"size:40;not null" json:"deadlineDate"`
	Type         string     `gorm:"size:20;not null" json:"type"`
	Status       string     `gorm:"size:20;default:upcoming" json:"status"`
	Priority     string     `gorm:"size:20;default:normal" json:"priority"`
	AssignedTo   string     `gorm:"size:100" json:"assignedTo"`
	CreatedBy    string     `gorm:"size:50" json:"createdBy"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}
