package repository

import (
	"context"

	"eduhub.vn/studyportal/internal/entity"
	"gorm.io/gorm"
)

type StatRepository interface {
	CountDocuments(ctx context.Context) (int64, error)
	CountAssignments(ctx context.Context) (int64, error)
	CountPendingAssignments(ctx context.Context) (int64, error)
	AverageGrade(ctx context.Context) (*float64, error)
}

type statRepository struct {
	db *gorm.DB
}

func NewStatRepository(db *gorm.DB) StatRepository {
	return &statRepository{db: db}
}

func (r *statRepository) CountDocuments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Document{}).Count(&count).Error
	return count, err
}

func (r *statRepository) CountAssignments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Assignment{}).Count(&count).Error
	return count, err
}

func (r *statRepository) CountPendingAssignments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Assignment{}).
		Where("status = ?", entity.AssignmentPending).
		Count(&count).Error
	return count, err
}

func (r *statRepository) AverageGrade(ctx context.Context) (*float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&entity.Assignment{}).
		Where("grade IS NOT NULL").
		Select("AVG(grade)").
		Scan(&avg).Error
	return avg, err
}
