package view

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"eduhub.vn/studyportal/internal/entity"
	imageRepo "eduhub.vn/studyportal/internal/modules/image/repository"
	linkRepo "eduhub.vn/studyportal/internal/modules/link/repository"
	"eduhub.vn/studyportal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCounters(t *testing.T) (CounterService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, entity.Migrate(db))

	// no Redis configured: increments write straight through
	svc := NewCounterService(nil, imageRepo.NewImageRepository(db), linkRepo.NewLinkRepository(db))
	return svc, db
}

func TestDirectImageViewIncrement(t *testing.T) {
	svc, db := setupCounters(t)

	img := &entity.Image{Title: "diagram", FileName: "d.png", FilePath: "d.png"}
	require.NoError(t, db.Create(img).Error)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.IncrementImageView(context.Background(), img.ID))
	}

	var got entity.Image
	require.NoError(t, db.First(&got, img.ID).Error)
	assert.Equal(t, 3, got.ViewCount)
}

func TestDirectLinkClickIncrement(t *testing.T) {
	svc, db := setupCounters(t)

	link := &entity.Link{Title: "portal", URL: "https://example.com"}
	require.NoError(t, db.Create(link).Error)

	require.NoError(t, svc.IncrementLinkClick(context.Background(), link.ID))

	var got entity.Link
	require.NoError(t, db.First(&got, link.ID).Error)
	assert.Equal(t, 1, got.ClickCount)
	assert.NotNil(t, got.LastClicked)
}
