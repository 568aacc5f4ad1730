package view

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	imageRepo "eduhub.vn/studyportal/internal/modules/image/repository"
	linkRepo "eduhub.vn/studyportal/internal/modules/link/repository"
	"github.com/redis/go-redis/v9"
)

// CounterService bumps the image view and link click counters. With Redis
// configured the increments are buffered and flushed to the database by a
// background worker; without it every hit writes straight through.
type CounterService interface {
	IncrementImageView(ctx context.Context, imageID uint) error
	IncrementLinkClick(ctx context.Context, linkID uint) error
	StartSyncWorker(ctx context.Context)
}

type counterService struct {
	redisClient *redis.Client
	images      imageRepo.ImageRepository
	links       linkRepo.LinkRepository
}

func NewCounterService(redisClient *redis.Client, images imageRepo.ImageRepository, links linkRepo.LinkRepository) CounterService {
	return &counterService{
		redisClient: redisClient,
		images:      images,
		links:       links,
	}
}

func (s *counterService) IncrementImageView(ctx context.Context, imageID uint) error {
	if s.redisClient == nil {
		return s.images.AddViews(ctx, imageID, 1)
	}
	return s.buffer(ctx, "image:views:%d", "pending:image_views", imageID)
}

func (s *counterService) IncrementLinkClick(ctx context.Context, linkID uint) error {
	if s.redisClient == nil {
		return s.links.AddClicks(ctx, linkID, 1, time.Now())
	}
	return s.buffer(ctx, "link:clicks:%d", "pending:link_clicks", linkID)
}

func (s *counterService) buffer(ctx context.Context, keyFormat, pendingKey string, id uint) error {
	key := fmt.Sprintf(keyFormat, id)

	if _, err := s.redisClient.Incr(ctx, key).Result(); err != nil {
		return fmt.Errorf("failed to increment counter: %w", err)
	}

	if _, err := s.redisClient.SAdd(ctx, pendingKey, strconv.FormatUint(uint64(id), 10)).Result(); err != nil {
		return fmt.Errorf("failed to add to pending set: %w", err)
	}

	return nil
}

// StartSyncWorker flushes buffered counters to the database every 30 seconds.
// Only started when a Redis client exists.
func (s *counterService) StartSyncWorker(ctx context.Context) {
	if s.redisClient == nil {
		return
	}

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.flush(ctx, "image:views:%d", "pending:image_views", func(id uint, n int) error {
				return s.images.AddViews(ctx, id, n)
			})
			s.flush(ctx, "link:clicks:%d", "pending:link_clicks", func(id uint, n int) error {
				return s.links.AddClicks(ctx, id, n, time.Now())
			})
		}
	}
}

func (s *counterService) flush(ctx context.Context, keyFormat, pendingKey string, apply func(id uint, n int) error) {
	ids, err := s.redisClient.SMembers(ctx, pendingKey).Result()
	if err != nil {
		log.Printf("Error reading pending counter set %s: %v", pendingKey, err)
		return
	}

	for _, raw := range ids {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			continue
		}

		key := fmt.Sprintf(keyFormat, id)
		count, err := s.redisClient.Get(ctx, key).Result()
		if err != nil && err != redis.Nil {
			log.Printf("Error reading counter %s: %v", key, err)
			continue
		}

		n, _ := strconv.Atoi(count)
		if n <= 0 {
			continue
		}

		if err := apply(uint(id), n); err != nil {
			// leave the Redis counter in place, next run picks it up again
			log.Printf("Failed to flush counter %s: %v", key, err)
			continue
		}

		if _, err := s.redisClient.Del(ctx, key).Result(); err != nil {
			log.Printf("Failed to reset counter %s: %v", key, err)
		}
	}

	if _, err := s.redisClient.Del(ctx, pendingKey).Result(); err != nil {
		log.Printf("Failed to clear pending set %s: %v", pendingKey, err)
	}
}
