package assignment

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"eduhub.vn/studyportal/internal/entity"
	activityRepo "eduhub.vn/studyportal/internal/modules/activity/repository"
	activityService "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/assignment/dto"
	"eduhub.vn/studyportal/internal/modules/assignment/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"eduhub.vn/studyportal/pkg/database"
	"eduhub.vn/studyportal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (AssignmentService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, entity.Migrate(db))

	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	activitySvc := activityService.NewActivityService(activityRepo.NewActivityRepository(db))
	svc := NewAssignmentService(repository.NewAssignmentRepository(db), fileStorage, activitySvc)
	return svc, db
}

func seedAssignment(t *testing.T, db *gorm.DB, title, student string) uint {
	t.Helper()
	a := &entity.Assignment{
		Title:   title,
		Student: student,
		Email:   strings.ToLower(student) + "@example.com",
		Status:  entity.AssignmentPending,
	}
	require.NoError(t, db.Create(a).Error)
	return a.ID
}

func gradePtr(g float64) *float64 { return &g }

func TestGradeRejectsOutOfRange(t *testing.T) {
	svc, db := setupService(t)
	id := seedAssignment(t, db, "Essay", "Anna")

	for _, grade := range []float64{-1, 10.5} {
		err := svc.Grade(context.Background(), id, dto.GradeRequest{Grade: gradePtr(grade)})
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	}

	// nothing changed
	var a entity.Assignment
	require.NoError(t, db.First(&a, id).Error)
	assert.Equal(t, entity.AssignmentPending, a.Status)
	assert.Nil(t, a.Grade)
}

func TestGradeMarksGraded(t *testing.T) {
	svc, db := setupService(t)
	id := seedAssignment(t, db, "Lab Report", "Ben")

	err := svc.Grade(context.Background(), id, dto.GradeRequest{
		Grade:    gradePtr(8.5),
		Feedback: "Good work",
		GradedBy: "admin",
	})
	require.NoError(t, err)

	var a entity.Assignment
	require.NoError(t, db.First(&a, id).Error)
	assert.Equal(t, entity.AssignmentGraded, a.Status)
	require.NotNil(t, a.Grade)
	assert.Equal(t, 8.5, *a.Grade)
	require.NotNil(t, a.Feedback)
	assert.Equal(t, "Good work", *a.Feedback)
	assert.NotNil(t, a.GradedDate)
}

func TestGradeUnknownAssignment(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.Grade(context.Background(), 404, dto.GradeRequest{Grade: gradePtr(7)})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListFilters(t *testing.T) {
	svc, db := setupService(t)
	seedAssignment(t, db, "Essay", "Anna")
	gradedID := seedAssignment(t, db, "Lab Report", "Ben")
	require.NoError(t, svc.Grade(context.Background(), gradedID, dto.GradeRequest{Grade: gradePtr(9)}))

	all, err := svc.List(context.Background(), dto.AssignmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.List(context.Background(), dto.AssignmentFilter{Status: entity.AssignmentPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Essay", pending[0].Title)

	// search matches student name, case-insensitively
	byStudent, err := svc.List(context.Background(), dto.AssignmentFilter{Search: "ben"})
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	assert.Equal(t, "Lab Report", byStudent[0].Title)
}

func TestDeleteUnknownAssignment(t *testing.T) {
	svc, _ := setupService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), 404), apperror.ErrNotFound)
}
