package entity

import (
	"time"
)

type Image struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Category    string    `gorm:"size:100" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	FileName    string    `gorm:"size:255;not null" json:"fileName"`
	FilePath    string    `gorm:"size:512;not null" json:"filePath"`
	FileSize    int64     `json:"fileSize"`
	Width       *int      `json:"width,omitempty"`
	Height      *int      `json:"height,omitempty"`
	ViewCount   int       `gorm:"default:0" json:"viewCount"`
	UploadedBy  string    `gorm:"size:50" json:"uploadedBy"`
	UploadDate  time.Time `gorm:"autoCreateTime" json:"uploadDate"`
}
