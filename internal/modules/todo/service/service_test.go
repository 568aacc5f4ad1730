package todo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"eduhub.vn/studyportal/internal/entity"
	activityRepo "eduhub.vn/studyportal/internal/modules/activity/repository"
	activityService "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/todo/dto"
	"eduhub.vn/studyportal/internal/modules/todo/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"eduhub.vn/studyportal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (TodoService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, entity.Migrate(db))

	activitySvc := activityService.NewActivityService(activityRepo.NewActivityRepository(db))
	return NewTodoService(repository.NewTodoRepository(db), activitySvc), db
}

func boolPtr(b bool) *bool { return &b }

func TestCreateDefaultsPriority(t *testing.T) {
	svc, db := setupService(t)

	id, err := svc.Create(context.Background(), "alice", dto.CreateTodoRequest{Text: "buy paper"})
	require.NoError(t, err)

	var todo entity.Todo
	require.NoError(t, db.First(&todo, id).Error)
	assert.Equal(t, "normal", todo.Priority)
	assert.Equal(t, "alice", todo.CreatedBy)
	assert.False(t, todo.IsCompleted)
	assert.Nil(t, todo.CompletedAt)
}

func TestToggleCompletion(t *testing.T) {
	svc, db := setupService(t)

	id, err := svc.Create(context.Background(), "", dto.CreateTodoRequest{Text: "revise chapter 3"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(context.Background(), id, dto.UpdateTodoRequest{IsCompleted: boolPtr(true)}))

	var todo entity.Todo
	require.NoError(t, db.First(&todo, id).Error)
	assert.True(t, todo.IsCompleted)
	assert.NotNil(t, todo.CompletedAt)

	// un-completing clears the timestamp again
	require.NoError(t, svc.Update(context.Background(), id, dto.UpdateTodoRequest{IsCompleted: boolPtr(false)}))
	// gorm does not reset pointer fields when scanning NULL into a reused
	// destination struct, so read into a fresh one
	var reloaded entity.Todo
	require.NoError(t, db.First(&reloaded, id).Error)
	assert.False(t, reloaded.IsCompleted)
	assert.Nil(t, reloaded.CompletedAt)
}

func TestListPutsOpenItemsFirst(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "", dto.CreateTodoRequest{Text: "done already"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "", dto.CreateTodoRequest{Text: "still open"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, first, dto.UpdateTodoRequest{IsCompleted: boolPtr(true)}))

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "still open", todos[0].Text)
	assert.Equal(t, "done already", todos[1].Text)
}

func TestUpdateUnknownTodo(t *testing.T) {
	svc, _ := setupService(t)
	err := svc.Update(context.Background(), 404, dto.UpdateTodoRequest{IsCompleted: boolPtr(true)})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteTodo(t *testing.T) {
	svc, db := setupService(t)

	id, err := svc.Create(context.Background(), "", dto.CreateTodoRequest{Text: "temp"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), id))

	var count int64
	require.NoError(t, db.Model(&entity.Todo{}).Count(&count).Error)
	assert.Zero(t, count)
}
