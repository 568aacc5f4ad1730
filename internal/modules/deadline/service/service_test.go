package deadline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"eduhub.vn/studyportal/internal/entity"
	activityRepo "eduhub.vn/studyportal/internal/modules/activity/repository"
	activityService "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/deadline/dto"
	"eduhub.vn/studyportal/internal/modules/deadline/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"eduhub.vn/studyportal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (DeadlineService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, entity.Migrate(db))

	activitySvc := activityService.NewActivityService(activityRepo.NewActivityRepository(db))
	return NewDeadlineService(repository.NewDeadlineRepository(db), activitySvc), db
}

func TestCreateDefaults(t *testing.T) {
	svc, db := setupService(t)

	id, err := svc.Create(context.Background(), "alice", dto.CreateDeadlineRequest{
		Title:        "Final exam",
		DeadlineDate: "2026-09-15T09:00",
		Type:         entity.DeadlineTypeExam,
	})
	require.NoError(t, err)

	var d entity.Deadline
	require.NoError(t, db.First(&d, id).Error)
	assert.Equal(t, entity.DeadlineUpcoming, d.Status)
	assert.Equal(t, "normal", d.Priority)
	assert.Equal(t, "alice", d.CreatedBy)
	assert.Equal(t, "2026-09-15T09:00", d.DeadlineDate)
}

func TestCompleteStampsTimestamp(t *testing.T) {
	svc, db := setupService(t)

	id, err := svc.Create(context.Background(), "", dto.CreateDeadlineRequest{
		Title:        "Hand in essay",
		DeadlineDate: "2026-09-01T23:59",
		Type:         entity.DeadlineTypeDeadline,
	})
	require.NoError(t, err)

	err = svc.UpdateStatus(context.Background(), id, dto.UpdateDeadlineStatusRequest{Status: entity.DeadlineCompleted})
	require.NoError(t, err)

	var d entity.Deadline
	require.NoError(t, db.First(&d, id).Error)
	assert.Equal(t, entity.DeadlineCompleted, d.Status)
	assert.NotNil(t, d.CompletedAt)
}

func TestListOrderedByDate(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", dto.CreateDeadlineRequest{
		Title: "later", DeadlineDate: "2026-10-01T10:00", Type: entity.DeadlineTypeMeeting,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "", dto.CreateDeadlineRequest{
		Title: "sooner", DeadlineDate: "2026-09-01T10:00", Type: entity.DeadlineTypeMeeting,
	})
	require.NoError(t, err)

	deadlines, err := svc.List(ctx, dto.DeadlineFilter{})
	require.NoError(t, err)
	require.Len(t, deadlines, 2)
	assert.Equal(t, "sooner", deadlines[0].Title)

	byType, err := svc.List(ctx, dto.DeadlineFilter{Type: entity.DeadlineTypeExam})
	require.NoError(t, err)
	assert.Empty(t, byType)
}

func TestUpdateUnknownDeadline(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.UpdateStatus(context.Background(), 404, dto.UpdateDeadlineStatusRequest{Status: entity.DeadlineOverdue})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
