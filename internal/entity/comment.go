package entity

import (
	"time"
)

// Comment references its target by (EntityType, EntityID) convention, no
// enforced foreign key.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EntityType string    `gorm:"size:30;not null" json:"entityType"`
	EntityID   uint      `gorm:"not null" json:"entityId"`
	UserName   string    `gorm:"size:50;not null" json:"userName"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
