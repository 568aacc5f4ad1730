package repository

import (
	"context"
	"strings"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/modules/image/dto"
	"gorm.io/gorm"
)

type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	FindAll(ctx context.Context, filter dto.ImageFilter) ([]*entity.Image, error)
	FindByID(ctx context.Context, id uint) (*entity.Image, error)
	AddViews(ctx context.Context, id uint, views int) error
	Delete(ctx context.Context, id uint) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) FindAll(ctx context.Context, filter dto.ImageFilter) ([]*entity.Image, error) {
	var images []*entity.Image
	query := r.db.WithContext(ctx)

	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	if err := query.Order("upload_date DESC, id DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) FindByID(ctx context.Context, id uint) (*entity.Image, error) {
	var image entity.Image
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) AddViews(ctx context.Context, id uint, views int) error {
	return r.db.WithContext(ctx).Model(&entity.Image{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", views)).Error
}

func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Image{}, "id = ?", id).Error
}
