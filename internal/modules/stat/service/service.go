package stat

import (
	"context"
	"fmt"

	"eduhub.vn/studyportal/internal/modules/stat/repository"
)

type Stats struct {
	TotalDocuments     int64  `json:"totalDocuments"`
	TotalAssignments   int64  `json:"totalAssignments"`
	PendingAssignments int64  `json:"pendingAssignments"`
	AverageGrade       string `json:"averageGrade"`
}

type StatService interface {
	Overview(ctx context.Context) (*Stats, error)
}

type statService struct {
	repo repository.StatRepository
}

func NewStatService(repo repository.StatRepository) StatService {
	return &statService{repo: repo}
}

func (s *statService) Overview(ctx context.Context) (*Stats, error) {
	stats := &Stats{AverageGrade: "0"}

	var err error
	if stats.TotalDocuments, err = s.repo.CountDocuments(ctx); err != nil {
		return nil, err
	}
	if stats.TotalAssignments, err = s.repo.CountAssignments(ctx); err != nil {
		return nil, err
	}
	if stats.PendingAssignments, err = s.repo.CountPendingAssignments(ctx); err != nil {
		return nil, err
	}

	avg, err := s.repo.AverageGrade(ctx)
	if err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AverageGrade = fmt.Sprintf("%.2f", *avg)
	}

	return stats, nil
}
