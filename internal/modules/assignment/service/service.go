package assignment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"eduhub.vn/studyportal/internal/entity"
	activity "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/assignment/dto"
	"eduhub.vn/studyportal/internal/modules/assignment/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"eduhub.vn/studyportal/pkg/storage"
	"gorm.io/gorm"
)

type AssignmentService interface {
	List(ctx context.Context, filter dto.AssignmentFilter) ([]*entity.Assignment, error)
	Submit(ctx context.Context, req dto.SubmitAssignmentRequest, file *multipart.FileHeader) (*entity.Assignment, error)
	Grade(ctx context.Context, id uint, req dto.GradeRequest) error
	Delete(ctx context.Context, id uint) error
	FileForDownload(ctx context.Context, id uint) (*entity.Assignment, error)
}

type assignmentService struct {
	repo        repository.AssignmentRepository
	fileStorage storage.FileStorage
	activity    activity.ActivityService
}

func NewAssignmentService(repo repository.AssignmentRepository, fileStorage storage.FileStorage, activitySvc activity.ActivityService) AssignmentService {
	return &assignmentService{
		repo:        repo,
		fileStorage: fileStorage,
		activity:    activitySvc,
	}
}

func (s *assignmentService) List(ctx context.Context, filter dto.AssignmentFilter) ([]*entity.Assignment, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *assignmentService) Submit(ctx context.Context, req dto.SubmitAssignmentRequest, file *multipart.FileHeader) (*entity.Assignment, error) {
	if file.Size > storage.MaxUploadSize {
		return nil, apperror.ErrPayloadTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	saved, err := s.fileStorage.Save(storage.CategoryAssignments, file.Filename, f)
	if err != nil {
		return nil, err
	}

	assignment := &entity.Assignment{
		Title:    req.Title,
		Student:  req.Student,
		Email:    req.Email,
		Note:     req.Note,
		FileName: file.Filename,
		FilePath: saved.Path,
		FileSize: saved.Size,
		Status:   entity.AssignmentPending,
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		_ = s.fileStorage.Delete(saved.Path)
		return nil, err
	}

	s.activity.Record("submit", "assignment", assignment.ID, assignment.Title,
		fmt.Sprintf("%s submitted an assignment", req.Student), req.Student)

	return assignment, nil
}

func (s *assignmentService) Grade(ctx context.Context, id uint, req dto.GradeRequest) error {
	if req.Grade == nil || *req.Grade < 0 || *req.Grade > 10 {
		return fmt.Errorf("%w: grade must be between 0 and 10", apperror.ErrInvalidInput)
	}

	assignment, err := s.findOr404(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	assignment.Grade = req.Grade
	assignment.Status = entity.AssignmentGraded
	assignment.GradedDate = &now
	if req.Feedback != "" {
		assignment.Feedback = &req.Feedback
	}
	if req.GradedBy != "" {
		assignment.GradedBy = &req.GradedBy
	}

	if err := s.repo.Save(ctx, assignment); err != nil {
		return err
	}

	s.activity.Record("grade", "assignment", id, assignment.Title,
		fmt.Sprintf("Graded %g/10 for %s", *req.Grade, assignment.Student), req.GradedBy)

	return nil
}

func (s *assignmentService) Delete(ctx context.Context, id uint) error {
	assignment, err := s.findOr404(ctx, id)
	if err != nil {
		return err
	}

	if err := s.fileStorage.Delete(assignment.FilePath); err != nil {
		log.Printf("failed to remove assignment file %s: %v", assignment.FilePath, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("delete", "assignment", id, assignment.Title, "Deleted assignment", "")

	return nil
}

func (s *assignmentService) FileForDownload(ctx context.Context, id uint) (*entity.Assignment, error) {
	return s.findOr404(ctx, id)
}

func (s *assignmentService) findOr404(ctx context.Context, id uint) (*entity.Assignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assignment %d", apperror.ErrNotFound, id)
		}
		return nil, err
	}
	return assignment, nil
}
