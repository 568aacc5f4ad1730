package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduhub.vn/studyportal/internal/entity"
	activity "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/note/dto"
	"eduhub.vn/studyportal/internal/modules/note/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"gorm.io/gorm"
)

type NoteService interface {
	List(ctx context.Context, filter dto.NoteFilter) ([]*entity.Note, error)
	Create(ctx context.Context, createdBy string, req dto.CreateNoteRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateNoteRequest) error
	Delete(ctx context.Context, id uint) error
}

type noteService struct {
	repo     repository.NoteRepository
	activity activity.ActivityService
}

func NewNoteService(repo repository.NoteRepository, activitySvc activity.ActivityService) NoteService {
	return &noteService{
		repo:     repo,
		activity: activitySvc,
	}
}

func (s *noteService) List(ctx context.Context, filter dto.NoteFilter) ([]*entity.Note, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *noteService) Create(ctx context.Context, createdBy string, req dto.CreateNoteRequest) (uint, error) {
	color := req.Color
	if color == "" {
		color = "yellow"
	}

	note := &entity.Note{
		Title:     req.Title,
		Content:   req.Content,
		Color:     color,
		CreatedBy: createdBy,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return 0, err
	}

	s.activity.Record("create", "note", note.ID, note.Title, "New note created", createdBy)

	return note.ID, nil
}

func (s *noteService) Update(ctx context.Context, id uint, req dto.UpdateNoteRequest) error {
	if _, err := s.findOr404(ctx, id); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.IsPinned != nil {
		fields["is_pinned"] = *req.IsPinned
	}
	if req.IsArchived != nil {
		fields["is_archived"] = *req.IsArchived
	}

	// every patch touches updatedAt, even an empty one
	fields["updated_at"] = time.Now()

	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *noteService) Delete(ctx context.Context, id uint) error {
	note, err := s.findOr404(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("delete", "note", id, note.Title, "Deleted note", "")

	return nil
}

func (s *noteService) findOr404(ctx context.Context, id uint) (*entity.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: note %d", apperror.ErrNotFound, id)
		}
		return nil, err
	}
	return note, nil
}
