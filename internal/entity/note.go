package entity

import (
	"time"
)

type Note struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	Color      string    `gorm:"size:20;default:yellow" json:"color"`
	IsPinned   bool      `gorm:"default:false" json:"isPinned"`
	IsArchived bool      `gorm:"default:false" json:"isArchived"`
	CreatedBy  string    `gorm:"size:50" json:"createdBy"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
