package repository

import (
	"context"

	"eduhub.vn/studyportal/internal/entity"
	"gorm.io/gorm"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *entity.Todo) error
	FindAll(ctx context.Context) ([]*entity.Todo, error)
	FindByID(ctx context.Context, id uint) (*entity.Todo, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type todoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) FindAll(ctx context.Context) ([]*entity.Todo, error) {
	var todos []*entity.Todo
	// open items first, newest first within each group
	err := r.db.WithContext(ctx).
		Order("is_completed ASC, created_at DESC, id DESC").
		Find(&todos).Error
	return todos, err
}

func (r *todoRepository) FindByID(ctx context.Context, id uint) (*entity.Todo, error) {
	var todo entity.Todo
	if err := r.db.WithContext(ctx).First(&todo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entity.Todo{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *todoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Todo{}, "id = ?", id).Error
}
