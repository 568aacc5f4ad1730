package entity

import (
	"time"
)

type Link struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	URL         string     `gorm:"type:text;not null" json:"url"`
	Category    string     `gorm:"size:100" json:"category"`
	Description string     `gorm:"type:text" json:"description"`
	Favicon     *string    `gorm:"type:text" json:"favicon,omitempty"`
	ClickCount  int        `gorm:"default:0" json:"clickCount"`
	CreatedBy   string     `gorm:"size:50" json:"createdBy"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	LastClicked *time.Time `json:"lastClicked,omitempty"`
}
