package link

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eduhub.vn/studyportal/internal/entity"
	activity "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/link/dto"
	"eduhub.vn/studyportal/internal/modules/link/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"gorm.io/gorm"
)

type LinkService interface {
	List(ctx context.Context, filter dto.LinkFilter) ([]*entity.Link, error)
	Create(ctx context.Context, createdBy string, req dto.CreateLinkRequest) (uint, error)
	Delete(ctx context.Context, id uint) error
}

type linkService struct {
	repo     repository.LinkRepository
	activity activity.ActivityService
}

func NewLinkService(repo repository.LinkRepository, activitySvc activity.ActivityService) LinkService {
	return &linkService{
		repo:     repo,
		activity: activitySvc,
	}
}

func (s *linkService) List(ctx context.Context, filter dto.LinkFilter) ([]*entity.Link, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *linkService) Create(ctx context.Context, createdBy string, req dto.CreateLinkRequest) (uint, error) {
	link := &entity.Link{
		Title:       req.Title,
		URL:         req.URL,
		Category:    req.Category,
		Description: req.Description,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Create(ctx, link); err != nil {
		return 0, err
	}

	s.activity.Record("create", "link", link.ID, link.Title,
		strings.TrimSpace("Added link "+req.Category), createdBy)

	return link.ID, nil
}

func (s *linkService) Delete(ctx context.Context, id uint) error {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: link %d", apperror.ErrNotFound, id)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("delete", "link", id, link.Title, "Deleted link", "")

	return nil
}
