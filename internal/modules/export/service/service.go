package export

import (
	"context"
	"time"

	"eduhub.vn/studyportal/internal/entity"
	"gorm.io/gorm"
)

// Backup is the full-portal JSON snapshot. User accounts are excluded
// on purpose: the backup is meant to be shareable between classmates.
type Backup struct {
	Documents   []*entity.Document    `json:"documents"`
	Assignments []*entity.Assignment  `json:"assignments"`
	Deadlines   []*entity.Deadline    `json:"deadlines"`
	Images      []*entity.Image       `json:"images"`
	Links       []*entity.Link        `json:"links"`
	Notes       []*entity.Note        `json:"notes"`
	Todos       []*entity.Todo        `json:"todos"`
	Activities  []*entity.ActivityLog `json:"activity_logs"`
	ExportDate  time.Time             `json:"exportDate"`
	Version     string                `json:"version"`
}

type ExportService interface {
	BuildBackup(ctx context.Context) (*Backup, error)
}

type exportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) ExportService {
	return &exportService{db: db}
}

func (s *exportService) BuildBackup(ctx context.Context) (*Backup, error) {
	backup := &Backup{
		Documents:   []*entity.Document{},
		Assignments: []*entity.Assignment{},
		Deadlines:   []*entity.Deadline{},
		Images:      []*entity.Image{},
		Links:       []*entity.Link{},
		Notes:       []*entity.Note{},
		Todos:       []*entity.Todo{},
		Activities:  []*entity.ActivityLog{},
		ExportDate:  time.Now(),
		Version:     "1.0",
	}

	db := s.db.WithContext(ctx)
	for _, dest := range []interface{}{
		&backup.Documents,
		&backup.Assignments,
		&backup.Deadlines,
		&backup.Images,
		&backup.Links,
		&backup.Notes,
		&backup.Todos,
		&backup.Activities,
	} {
		if err := db.Find(dest).Error; err != nil {
			return nil, err
		}
	}

	return backup, nil
}
