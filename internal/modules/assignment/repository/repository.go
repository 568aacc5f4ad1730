package repository

import (
	"context"
	"strings"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/modules/assignment/dto"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.Assignment) error
	FindAll(ctx context.Context, filter dto.AssignmentFilter) ([]*entity.Assignment, error)
	FindByID(ctx context.Context, id uint) (*entity.Assignment, error)
	Save(ctx context.Context, assignment *entity.Assignment) error
	Delete(ctx context.Context, id uint) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *entity.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) FindAll(ctx context.Context, filter dto.AssignmentFilter) ([]*entity.Assignment, error) {
	var assignments []*entity.Assignment
	query := r.db.WithContext(ctx)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(student) LIKE ? OR LOWER(title) LIKE ?", pattern, pattern)
	}

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Order("submit_date DESC, id DESC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) FindByID(ctx context.Context, id uint) (*entity.Assignment, error) {
	var assignment entity.Assignment
	if err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) Save(ctx context.Context, assignment *entity.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Assignment{}, "id = ?", id).Error
}
