package repository

import (
	"context"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/modules/deadline/dto"
	"gorm.io/gorm"
)

type DeadlineRepository interface {
	Create(ctx context.Context, deadline *entity.Deadline) error
	FindAll(ctx context.Context, filter dto.DeadlineFilter) ([]*entity.Deadline, error)
	FindByID(ctx context.Context, id uint) (*entity.Deadline, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type deadlineRepository struct {
	db *gorm.DB
}

func NewDeadlineRepository(db *gorm.DB) DeadlineRepository {
	return &deadlineRepository{db: db}
}

func (r *deadlineRepository) Create(ctx context.Context, deadline *entity.Deadline) error {
	return r.db.WithContext(ctx).Create(deadline).Error
}

func (r *deadlineRepository) FindAll(ctx context.Context, filter dto.DeadlineFilter) ([]*entity.Deadline, error) {
	var deadlines []*entity.Deadline
	query := r.db.WithContext(ctx)

	if filter.Type != "" && filter.Type != "all" {
		query = query.Where("type = ?", filter.Type)
	}

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}

	// soonest due date first
	if err := query.Order("deadline_date ASC").Find(&deadlines).Error; err != nil {
		return nil, err
	}
	return deadlines, nil
}

func (r *deadlineRepository) FindByID(ctx context.Context, id uint) (*entity.Deadline, error) {
	var deadline entity.Deadline
	if err := r.db.WithContext(ctx).First(&deadline, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &deadline, nil
}

func (r *deadlineRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entity.Deadline{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *deadlineRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Deadline{}, "id = ?", id).Error
}
