package repository

import (
	"context"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/modules/note/dto"
	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	FindAll(ctx context.Context, filter dto.NoteFilter) ([]*entity.Note, error)
	FindByID(ctx context.Context, id uint) (*entity.Note, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) FindAll(ctx context.Context, filter dto.NoteFilter) ([]*entity.Note, error) {
	var notes []*entity.Note
	query := r.db.WithContext(ctx)

	switch filter.Filter {
	case "pinned":
		query = query.Where("is_pinned = ? AND is_archived = ?", true, false)
	case "archived":
		query = query.Where("is_archived = ?", true)
	default:
		query = query.Where("is_archived = ?", false)
	}

	if err := query.Order("is_pinned DESC, updated_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) FindByID(ctx context.Context, id uint) (*entity.Note, error) {
	var note entity.Note
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entity.Note{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *noteRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Note{}, "id = ?", id).Error
}
