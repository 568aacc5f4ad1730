package entity

import (
	"time"
)

// Document is file-backed: the row owns one uploaded file on disk. FileName is
// the original client name, FilePath the generated on-disk location.
type Document struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Category      string    `gorm:"size:100" json:"category"`
	Description   string    `gorm:"type:text" json:"description"`
	FileName      string    `gorm:"size:255;not null" json:"fileName"`
	FilePath      string    `gorm:"size:512;not null" json:"filePath"`
	FileSize      int64     `json:"fileSize"`
	UploadedBy    string    `gorm:"size:50" json:"uploadedBy"`
	Tags          string    `gorm:"type:text" json:"tags"`
	DownloadCount int       `gorm:"default:0" json:"downloadCount"`
	UploadDate    time.Time `gorm:"autoCreateTime" json:"uploadDate"`
	LastModified  time.Time `gorm:"autoUpdateTime" json:"lastModified"`
}
