package todo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduhub.vn/studyportal/internal/entity"
	activity "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/todo/dto"
	"eduhub.vn/studyportal/internal/modules/todo/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"gorm.io/gorm"
)

type TodoService interface {
	List(ctx context.Context) ([]*entity.Todo, error)
	Create(ctx context.Context, createdBy string, req dto.CreateTodoRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateTodoRequest) error
	Delete(ctx context.Context, id uint) error
}

type todoService struct {
	repo     repository.TodoRepository
	activity activity.ActivityService
}

func NewTodoService(repo repository.TodoRepository, activitySvc activity.ActivityService) TodoService {
	return &todoService{
		repo:     repo,
		activity: activitySvc,
	}
}

func (s *todoService) List(ctx context.Context) ([]*entity.Todo, error) {
	return s.repo.FindAll(ctx)
}

func (s *todoService) Create(ctx context.Context, createdBy string, req dto.CreateTodoRequest) (uint, error) {
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	todo := &entity.Todo{
		Text:      req.Text,
		Priority:  priority,
		DueDate:   req.DueDate,
		CreatedBy: createdBy,
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return 0, err
	}

	s.activity.Record("create", "todo", todo.ID, todo.Text, "New todo added", createdBy)

	return todo.ID, nil
}

func (s *todoService) Update(ctx context.Context, id uint, req dto.UpdateTodoRequest) error {
	if _, err := s.findOr404(ctx, id); err != nil {
		return err
	}

	fields := map[string]interface{}{
		"is_completed": *req.IsCompleted,
	}
	if *req.IsCompleted {
		fields["completed_at"] = time.Now()
	} else {
		fields["completed_at"] = nil
	}

	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *todoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.findOr404(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *todoService) findOr404(ctx context.Context, id uint) (*entity.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: todo %d", apperror.ErrNotFound, id)
		}
		return nil, err
	}
	return todo, nil
}
