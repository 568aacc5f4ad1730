package entity

import (
	"time"
)

type Todo struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Text        string     `gorm:"type:text;not null" json:"text"`
	IsCompleted bool       `gorm:"default:false" json:"isCompleted"`
	Priority    string     `gorm:"size:20;default:normal" json:"priority"`
	DueDate     *string    `gorm:"size:40" json:"dueDate,omitempty"`
	CreatedBy   string     `gorm:"size:50" json:"createdBy"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
