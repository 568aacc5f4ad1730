package entity

import (
	"time"
)

const (
	AssignmentPending = "pending"
	AssignmentGraded  = "graded"
)

// Assignment status moves pending -> graded, one way only.
type Assignment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"size:255;not null" json:"title"`
	Student    string     `gorm:"size:100;not null" json:"student"`
	Email      string     `gorm:"size:100" json:"email"`
	FileName   string     `gorm:"size:255;not null" json:"fileName"`
	FilePath   string     `gorm:"size:512;not null" json:"filePath"`
	FileSize   int64      `json:"fileSize"`
	Note       string     `gorm:"type:text" json:"note"`
	Status     string     `gorm:"size:20;default:pending" json:"status"`
	Grade      *float64   `json:"grade"`
	Feedback   *string    `gorm:"type:text" json:"feedback,omitempty"`
	SubmitDate time.Time  `gorm:"autoCreateTime" json:"submitDate"`
	GradedDate *time.Time `json:"gradedDate,omitempty"`
	GradedBy   *string    `gorm:"size:50" json:"gradedBy,omitempty"`
}
