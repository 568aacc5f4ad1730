package repository

import (
	"context"

	"eduhub.vn/studyportal/internal/entity"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry *entity.ActivityLog) error
	FindRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, entry *entity.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	var entries []*entity.ActivityLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
