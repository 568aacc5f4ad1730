package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByEntity(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, entity.Migrate(db))

	repo := NewCommentRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	comments := []*entity.Comment{
		{EntityType: "document", EntityID: 1, UserName: "alice", Content: "first", CreatedAt: base},
		{EntityType: "document", EntityID: 1, UserName: "bob", Content: "second", CreatedAt: base.Add(time.Minute)},
		{EntityType: "document", EntityID: 2, UserName: "carol", Content: "other doc"},
		{EntityType: "note", EntityID: 1, UserName: "dave", Content: "other type"},
	}
	for _, c := range comments {
		require.NoError(t, repo.Create(ctx, c))
	}

	got, err := repo.FindByEntity(ctx, "document", 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// newest first
	assert.Equal(t, "second", got[0].Content)
	assert.Equal(t, "first", got[1].Content)

	none, err := repo.FindByEntity(ctx, "image", 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}
