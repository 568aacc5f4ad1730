package deadline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduhub.vn/studyportal/internal/entity"
	activity "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/deadline/dto"
	"eduhub.vn/studyportal/internal/modules/deadline/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"gorm.io/gorm"
)

type DeadlineService interface {
	List(ctx context.Context, filter dto.DeadlineFilter) ([]*entity.Deadline, error)
	Create(ctx context.Context, createdBy string, req dto.CreateDeadlineRequest) (uint, error)
	UpdateStatus(ctx context.Context, id uint, req dto.UpdateDeadlineStatusRequest) error
	Delete(ctx context.Context, id uint) error
}

type deadlineService struct {
	repo     repository.DeadlineRepository
	activity activity.ActivityService
}

func NewDeadlineService(repo repository.DeadlineRepository, activitySvc activity.ActivityService) DeadlineService {
	return &deadlineService{
		repo:     repo,
		activity: activitySvc,
	}
}

func (s *deadlineService) List(ctx context.Context, filter dto.DeadlineFilter) ([]*entity.Deadline, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *deadlineService) Create(ctx context.Context, createdBy string, req dto.CreateDeadlineRequest) (uint, error) {
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	deadline := &entity.Deadline{
		Title:        req.Title,
		Description:  req.Description,
		DeadlineDate: req.DeadlineDate,
		Type:         req.Type,
		Status:       entity.DeadlineUpcoming,
		Priority:     priority,
		AssignedTo:   req.AssignedTo,
		CreatedBy:    createdBy,
	}

	if err := s.repo.Create(ctx, deadline); err != nil {
		return 0, err
	}

	s.activity.Record("create", "deadline", deadline.ID, deadline.Title,
		fmt.Sprintf("New %s created", req.Type), createdBy)

	return deadline.ID, nil
}

func (s *deadlineService) UpdateStatus(ctx context.Context, id uint, req dto.UpdateDeadlineStatusRequest) error {
	deadline, err := s.findOr404(ctx, id)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{"status": req.Status}
	if req.Status == entity.DeadlineCompleted {
		fields["completed_at"] = time.Now()
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}

	s.activity.Record("update", "deadline", id, deadline.Title, "Status changed to "+req.Status, "")

	return nil
}

func (s *deadlineService) Delete(ctx context.Context, id uint) error {
	deadline, err := s.findOr404(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("delete", "deadline", id, deadline.Title, "Deleted deadline", "")

	return nil
}

func (s *deadlineService) findOr404(ctx context.Context, id uint) (*entity.Deadline, error) {
	deadline, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: deadline %d", apperror.ErrNotFound, id)
		}
		return nil, err
	}
	return deadline, nil
}
