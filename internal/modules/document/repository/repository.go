package repository

import (
	"context"
	"strings"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/modules/document/dto"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	FindAll(ctx context.Context, filter dto.DocumentFilter) ([]*entity.Document, error)
	FindByID(ctx context.Context, id uint) (*entity.Document, error)
	UpdateTags(ctx context.Context, id uint, tags string) error
	IncrementDownloadCount(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) FindAll(ctx context.Context, filter dto.DocumentFilter) ([]*entity.Document, error) {
	var docs []*entity.Document
	query := r.db.WithContext(ctx)

	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	switch filter.Sort {
	case "oldest":
		query = query.Order("upload_date ASC")
	case "title":
		query = query.Order("LOWER(title) ASC")
	case "size":
		query = query.Order("file_size DESC")
	default:
		query = query.Order("upload_date DESC, id DESC")
	}

	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) FindByID(ctx context.Context, id uint) (*entity.Document, error) {
	var doc entity.Document
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) UpdateTags(ctx context.Context, id uint, tags string) error {
	return r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("id = ?", id).
		Update("tags", tags).Error
}

func (r *documentRepository) IncrementDownloadCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

func (r *documentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Document{}, "id = ?", id).Error
}
