package image

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"eduhub.vn/studyportal/internal/entity"
	activity "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/image/dto"
	"eduhub.vn/studyportal/internal/modules/image/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"eduhub.vn/studyportal/pkg/storage"
	"gorm.io/gorm"
)

type ImageService interface {
	List(ctx context.Context, filter dto.ImageFilter) ([]*entity.Image, error)
	Upload(ctx context.Context, uploadedBy string, req dto.UploadImageRequest, file *multipart.FileHeader) (*entity.Image, error)
	Delete(ctx context.Context, id uint) error
	FileForDownload(ctx context.Context, id uint) (*entity.Image, error)
}

type imageService struct {
	repo        repository.ImageRepository
	fileStorage storage.FileStorage
	activity    activity.ActivityService
}

func NewImageService(repo repository.ImageRepository, fileStorage storage.FileStorage, activitySvc activity.ActivityService) ImageService {
	return &imageService{
		repo:        repo,
		fileStorage: fileStorage,
		activity:    activitySvc,
	}
}

func (s *imageService) List(ctx context.Context, filter dto.ImageFilter) ([]*entity.Image, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *imageService) Upload(ctx context.Context, uploadedBy string, req dto.UploadImageRequest, file *multipart.FileHeader) (*entity.Image, error) {
	if file.Size > storage.MaxUploadSize {
		return nil, apperror.ErrPayloadTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	saved, err := s.fileStorage.Save(storage.CategoryImages, file.Filename, f)
	if err != nil {
		return nil, err
	}

	image := &entity.Image{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		FileName:    file.Filename,
		FilePath:    saved.Path,
		FileSize:    saved.Size,
		Width:       req.Width,
		Height:      req.Height,
		UploadedBy:  uploadedBy,
	}

	if err := s.repo.Create(ctx, image); err != nil {
		_ = s.fileStorage.Delete(saved.Path)
		return nil, err
	}

	s.activity.Record("upload", "image", image.ID, image.Title,
		strings.TrimSpace("Uploaded image "+req.Category), uploadedBy)

	return image, nil
}

func (s *imageService) Delete(ctx context.Context, id uint) error {
	image, err := s.findOr404(ctx, id)
	if err != nil {
		return err
	}

	if err := s.fileStorage.Delete(image.FilePath); err != nil {
		log.Printf("failed to remove image file %s: %v", image.FilePath, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("delete", "image", id, image.Title, "Deleted image", "")

	return nil
}

func (s *imageService) FileForDownload(ctx context.Context, id uint) (*entity.Image, error) {
	return s.findOr404(ctx, id)
}

func (s *imageService) findOr404(ctx context.Context, id uint) (*entity.Image, error) {
	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: image %d", apperror.ErrNotFound, id)
		}
		return nil, err
	}
	return image, nil
}
