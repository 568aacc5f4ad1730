package comment

import (
	"context"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/modules/comment/dto"
	"eduhub.vn/studyportal/internal/modules/comment/repository"
)

type CommentService interface {
	ListForEntity(ctx context.Context, entityType string, entityID uint) ([]*entity.Comment, error)
	Create(ctx context.Context, req dto.CreateCommentRequest) (uint, error)
}

type commentService struct {
	repo repository.CommentRepository
}

func NewCommentService(repo repository.CommentRepository) CommentService {
	return &commentService{repo: repo}
}

func (s *commentService) ListForEntity(ctx context.Context, entityType string, entityID uint) ([]*entity.Comment, error) {
	return s.repo.FindByEntity(ctx, entityType, entityID)
}

func (s *commentService) Create(ctx context.Context, req dto.CreateCommentRequest) (uint, error) {
	comment := &entity.Comment{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		UserName:   req.UserName,
		Content:    req.Content,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}
