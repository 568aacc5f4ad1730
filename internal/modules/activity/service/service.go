package activity

import (
	"context"
	"log"
	"sync"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/modules/activity/repository"
)

// ActivityService is the audit trail. Record is fire-and-forget: a failed
// write is printed to the server log and never fails the calling mutation.
type ActivityService interface {
	Record(action, entityType string, entityID uint, entityTitle, details, userName string)
	Recent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
	// Subscribe returns a channel that receives every recorded entry until
	// cancel is called. Slow consumers miss entries rather than block Record.
	Subscribe() (<-chan *entity.ActivityLog, func())
}

type activityService struct {
	repo repository.ActivityRepository

	mu   sync.Mutex
	subs map[chan *entity.ActivityLog]struct{}
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{
		repo: repo,
		subs: make(map[chan *entity.ActivityLog]struct{}),
	}
}

func (s *activityService) Record(action, entityType string, entityID uint, entityTitle, details, userName string) {
	entry := &entity.ActivityLog{
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		EntityTitle: entityTitle,
		Details:     details,
		UserName:    userName,
	}

	go func() {
		if err := s.repo.Create(context.Background(), entry); err != nil {
			log.Printf("Error logging activity: %v", err)
			return
		}
		s.broadcast(entry)
	}()
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindRecent(ctx, limit)
}

func (s *activityService) Subscribe() (<-chan *entity.ActivityLog, func()) {
	ch := make(chan *entity.ActivityLog, 16)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.mu.Unlock()
	}

	return ch, cancel
}

func (s *activityService) broadcast(entry *entity.ActivityLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.subs {
		select {
		case ch <- entry:
		default:
			// subscriber is not keeping up, drop the entry
		}
	}
}
