package document

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"eduhub.vn/studyportal/internal/entity"
	activity "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/document/dto"
	"eduhub.vn/studyportal/internal/modules/document/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"eduhub.vn/studyportal/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentService interface {
	List(ctx context.Context, filter dto.DocumentFilter) ([]*entity.Document, error)
	Upload(ctx context.Context, uploadedBy string, req dto.UploadDocumentRequest, file *multipart.FileHeader) (*entity.Document, error)
	ImportFromURL(ctx context.Context, req dto.ImportFromURLRequest) (uint, error)
	Preview(ctx context.Context, id uint) (*dto.PreviewResponse, error)
	AddTag(ctx context.Context, id uint, tag string) error
	Share(ctx context.Context, id uint, email string) error
	Delete(ctx context.Context, id uint) error
	FileForDownload(ctx context.Context, id uint) (*entity.Document, error)
}

type documentService struct {
	repo        repository.DocumentRepository
	fileStorage storage.FileStorage
	activity    activity.ActivityService
	httpClient  *http.Client
}

func NewDocumentService(repo repository.DocumentRepository, fileStorage storage.FileStorage, activitySvc activity.ActivityService) DocumentService {
	return &documentService{
		repo:        repo,
		fileStorage: fileStorage,
		activity:    activitySvc,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *documentService) List(ctx context.Context, filter dto.DocumentFilter) ([]*entity.Document, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *documentService) Upload(ctx context.Context, uploadedBy string, req dto.UploadDocumentRequest, file *multipart.FileHeader) (*entity.Document, error) {
	if file.Size > storage.MaxUploadSize {
		return nil, apperror.ErrPayloadTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	saved, err := s.fileStorage.Save(storage.CategoryDocuments, file.Filename, f)
	if err != nil {
		return nil, err
	}

	doc := &entity.Document{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		FileName:    file.Filename,
		FilePath:    saved.Path,
		FileSize:    saved.Size,
		UploadedBy:  uploadedBy,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		// keep disk and DB in step when the insert fails
		_ = s.fileStorage.Delete(saved.Path)
		return nil, err
	}

	s.activity.Record("upload", "document", doc.ID, doc.Title,
		strings.TrimSpace("Uploaded document "+req.Category), uploadedBy)

	return doc, nil
}

func (s *documentService) ImportFromURL(ctx context.Context, req dto.ImportFromURLRequest) (uint, error) {
	parsed, err := url.Parse(req.URL)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, req.URL)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperror.ErrUpstreamFetch, err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperror.ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return 0, fmt.Errorf("%w: remote returned %s", apperror.ErrUpstreamFetch, resp.Status)
	}

	fileName := path.Base(parsed.Path)
	if fileName == "" || fileName == "/" || fileName == "." {
		fileName = "download-" + uuid.New().String()[:8]
	}

	saved, err := s.fileStorage.Save(storage.CategoryDocuments, fileName, resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperror.ErrUpstreamFetch, err)
	}

	doc := &entity.Document{
		Title:    req.Title,
		Category: req.Category,
		FileName: fileName,
		FilePath: saved.Path,
		FileSize: saved.Size,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		_ = s.fileStorage.Delete(saved.Path)
		return 0, err
	}

	s.activity.Record("upload", "document", doc.ID, doc.Title, "Imported from URL", "")

	return doc.ID, nil
}

func (s *documentService) Preview(ctx context.Context, id uint) (*dto.PreviewResponse, error) {
	doc, err := s.findOr404(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.PreviewResponse{Document: doc}

	// Only plain-text formats are inlined; everything else previews client-side.
	ext := strings.ToLower(filepath.Ext(doc.FileName))
	if ext == ".txt" || ext == ".md" {
		if raw, err := os.ReadFile(doc.FilePath); err == nil {
			content := string(raw)
			resp.Content = &content
		}
	}

	return resp, nil
}

func (s *documentService) AddTag(ctx context.Context, id uint, tag string) error {
	doc, err := s.findOr404(ctx, id)
	if err != nil {
		return err
	}

	var tags []string
	if doc.Tags != "" {
		tags = strings.Split(doc.Tags, ",")
	}
	for _, existing := range tags {
		if existing == tag {
			return nil
		}
	}
	tags = append(tags, tag)

	return s.repo.UpdateTags(ctx, id, strings.Join(tags, ","))
}

func (s *documentService) Share(ctx context.Context, id uint, email string) error {
	doc, err := s.findOr404(ctx, id)
	if err != nil {
		return err
	}

	// TODO: actually send mail once an SMTP account exists for the portal.
	s.activity.Record("share", "document", doc.ID, doc.Title, "Shared with "+email, "")

	return nil
}

func (s *documentService) Delete(ctx context.Context, id uint) error {
	doc, err := s.findOr404(ctx, id)
	if err != nil {
		return err
	}

	// File first, then row. A missing file must not block the row deletion.
	if err := s.fileStorage.Delete(doc.FilePath); err != nil {
		log.Printf("failed to remove document file %s: %v", doc.FilePath, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("delete", "document", id, doc.Title, "Deleted document", "")

	return nil
}

func (s *documentService) FileForDownload(ctx context.Context, id uint) (*entity.Document, error) {
	doc, err := s.findOr404(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementDownloadCount(ctx, id); err != nil {
		log.Printf("failed to bump download count for document %d: %v", id, err)
	}

	return doc, nil
}

func (s *documentService) findOr404(ctx context.Context, id uint) (*entity.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: document %d", apperror.ErrNotFound, id)
		}
		return nil, err
	}
	return doc, nil
}
