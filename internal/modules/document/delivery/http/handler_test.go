package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/middleware"
	activityRepo "eduhub.vn/studyportal/internal/modules/activity/repository"
	activityService "eduhub.vn/studyportal/internal/modules/activity/service"
	documentRepo "eduhub.vn/studyportal/internal/modules/document/repository"
	documentService "eduhub.vn/studyportal/internal/modules/document/service"
	userRepo "eduhub.vn/studyportal/internal/modules/user/repository"
	"eduhub.vn/studyportal/pkg/database"
	"eduhub.vn/studyportal/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func setupDocumentRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, entity.Migrate(db))

	token := testToken
	require.NoError(t, db.Create(&entity.User{
		Username: "uploader",
		Email:    "uploader@example.com",
		Password: "irrelevant",
		FullName: "Uploader",
		Token:    &token,
	}).Error)

	uploadDir := t.TempDir()
	fileStorage, err := storage.NewLocalStorage(uploadDir)
	require.NoError(t, err)

	activitySvc := activityService.NewActivityService(activityRepo.NewActivityRepository(db))
	svc := documentService.NewDocumentService(documentRepo.NewDocumentRepository(db), fileStorage, activitySvc)
	handler := NewDocumentHandler(svc)
	authMiddleware := middleware.NewAuthMiddleware(userRepo.NewUserRepository(db))

	router := gin.New()
	documents := router.Group("/api/documents")
	documents.GET("", handler.GetDocuments)
	documents.POST("", authMiddleware.RequireAuth(), handler.UploadDocument)
	documents.GET("/:id/preview", handler.PreviewDocument)
	documents.GET("/:id/download", handler.DownloadDocument)
	documents.POST("/:id/tags", handler.AddTag)
	documents.DELETE("/:id", handler.DeleteDocument)

	return router, db, uploadDir
}

func uploadDocument(t *testing.T, router *gin.Engine, title, fileName, content string) uint {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("title", title))
	require.NoError(t, writer.WriteField("category", "math"))
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.ID)
	return resp.ID
}

func listDocuments(t *testing.T, router *gin.Engine, query string) []entity.Document {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/documents"+query, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []entity.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	return docs
}

func TestUploadRequiresToken(t *testing.T) {
	router, _, _ := setupDocumentRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/documents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadAndList(t *testing.T) {
	router, _, uploadDir := setupDocumentRouter(t)

	uploadDocument(t, router, "Algebra Notes", "algebra.txt", "x + y = z")
	uploadDocument(t, router, "Calculus Summary", "calculus.txt", "d/dx")

	docs := listDocuments(t, router, "")
	require.Len(t, docs, 2)
	assert.Equal(t, "uploader", docs[0].UploadedBy)
	assert.Zero(t, docs[0].DownloadCount)

	// stored under <root>/documents with a generated prefix
	entries, err := os.ReadDir(filepath.Join(uploadDir, "documents"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// case-insensitive substring search
	docs = listDocuments(t, router, "?search=ALGEBRA")
	require.Len(t, docs, 1)
	assert.Equal(t, "Algebra Notes", docs[0].Title)

	// title sort is alphabetical
	docs = listDocuments(t, router, "?sort=title")
	require.Len(t, docs, 2)
	assert.Equal(t, "Algebra Notes", docs[0].Title)

	// unknown category matches nothing, "all" matches everything
	assert.Empty(t, listDocuments(t, router, "?category=physics"))
	assert.Len(t, listDocuments(t, router, "?category=all"), 2)
}

func TestPreviewInlinesPlainText(t *testing.T) {
	router, _, _ := setupDocumentRouter(t)
	id := uploadDocument(t, router, "Readme", "readme.txt", "hello preview")

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/documents/%d/preview", id), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var preview struct {
		Title   string  `json:"title"`
		Content *string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
	require.NotNil(t, preview.Content)
	assert.Equal(t, "hello preview", *preview.Content)
}

func TestDownloadBumpsCounter(t *testing.T) {
	router, _, _ := setupDocumentRouter(t)
	id := uploadDocument(t, router, "Counted", "counted.txt", "body")

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/documents/%d/download", id), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "counted.txt")

	docs := listDocuments(t, router, "")
	require.Len(t, docs, 1)
	assert.Equal(t, 1, docs[0].DownloadCount)
}

func TestAddTagDeduplicates(t *testing.T) {
	router, _, _ := setupDocumentRouter(t)
	id := uploadDocument(t, router, "Tagged", "tagged.txt", "body")

	addTag := func(tag string) {
		body, _ := json.Marshal(gin.H{"tag": tag})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/documents/%d/tags", id), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	addTag("exam")
	addTag("exam")
	addTag("semester1")

	docs := listDocuments(t, router, "")
	require.Len(t, docs, 1)
	assert.Equal(t, "exam,semester1", docs[0].Tags)
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	router, db, uploadDir := setupDocumentRouter(t)
	id := uploadDocument(t, router, "Doomed", "doomed.txt", "bye")

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/documents/%d", id), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, db.Model(&entity.Document{}).Count(&count).Error)
	assert.Zero(t, count)

	entries, err := os.ReadDir(filepath.Join(uploadDir, "documents"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	router, db, _ := setupDocumentRouter(t)
	id := uploadDocument(t, router, "Gone", "gone.txt", "bye")

	var doc entity.Document
	require.NoError(t, db.First(&doc, id).Error)
	require.NoError(t, os.Remove(doc.FilePath))

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/documents/%d", id), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUnknownDocument(t *testing.T) {
	router, _, _ := setupDocumentRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/documents/9999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
