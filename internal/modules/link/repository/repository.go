package repository

import (
	"context"
	"strings"
	"time"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/modules/link/dto"
	"gorm.io/gorm"
)

type LinkRepository interface {
	Create(ctx context.Context, link *entity.Link) error
	FindAll(ctx context.Context, filter dto.LinkFilter) ([]*entity.Link, error)
	FindByID(ctx context.Context, id uint) (*entity.Link, error)
	AddClicks(ctx context.Context, id uint, clicks int, clickedAt time.Time) error
	Delete(ctx context.Context, id uint) error
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) Create(ctx context.Context, link *entity.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *linkRepository) FindAll(ctx context.Context, filter dto.LinkFilter) ([]*entity.Link, error) {
	var links []*entity.Link
	query := r.db.WithContext(ctx)

	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(url) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := query.Order("created_at DESC, id DESC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *linkRepository) FindByID(ctx context.Context, id uint) (*entity.Link, error) {
	var link entity.Link
	if err := r.db.WithContext(ctx).First(&link, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepository) AddClicks(ctx context.Context, id uint, clicks int, clickedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.Link{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"click_count":  gorm.Expr("click_count + ?", clicks),
			"last_clicked": clickedAt,
		}).Error
}

func (r *linkRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Link{}, "id = ?", id).Error
}
