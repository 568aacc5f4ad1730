package entity

import (
	"time"
)

// ActivityLog rows are append-only. Nothing in the system reads them back for
// business decisions; they exist for the audit trail and the live feed.
type ActivityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Action      string    `gorm:"size:30;not null" json:"action"`
	EntityType  string    `gorm:"size:30;not null" json:"entityType"`
	EntityID    uint      `json:"entityId"`
	EntityTitle string    `gorm:"size:255" json:"entityTitle"`
	UserName    string    `gorm:"size:50" json:"userName"`
	Details     string    `gorm:"type:text" json:"details"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
