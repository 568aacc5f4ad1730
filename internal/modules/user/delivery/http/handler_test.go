package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/internal/middleware"
	activityRepo "eduhub.vn/studyportal/internal/modules/activity/repository"
	activityService "eduhub.vn/studyportal/internal/modules/activity/service"
	userRepo "eduhub.vn/studyportal/internal/modules/user/repository"
	userService "eduhub.vn/studyportal/internal/modules/user/service"
	"eduhub.vn/studyportal/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, entity.Migrate(db))

	repo := userRepo.NewUserRepository(db)
	activitySvc := activityService.NewActivityService(activityRepo.NewActivityRepository(db))
	handler := NewAuthHandler(userService.NewAuthService(repo, activitySvc))
	authMiddleware := middleware.NewAuthMiddleware(repo)

	router := gin.New()
	auth := router.Group("/api/auth")
	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)

	authed := auth.Group("")
	authed.Use(authMiddleware.RequireAuth())
	authed.GET("/verify", handler.Verify)
	authed.POST("/logout", handler.Logout)
	authed.GET("/profile", handler.GetProfile)
	authed.PATCH("/profile", handler.UpdateProfile)
	authed.POST("/change-password", handler.ChangePassword)

	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, router *gin.Engine, username string) {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"fullName": "Test User",
		"email":    username + "@example.com",
		"username": username,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterValidation(t *testing.T) {
	router := setupAuthRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"fullName": "Short Password",
		"email":    "short@example.com",
		"username": "shorty",
		"password": "12345",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	register(t, router, "alice")

	// same username again
	rec = doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"fullName": "Alice Again",
		"email":    "alice2@example.com",
		"username": "alice",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginAndVerify(t *testing.T) {
	router := setupAuthRouter(t)
	register(t, router, "bob")

	rec := doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "bob",
		"password": "wrongpass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, router, "bob", "secret123")

	rec = doJSON(router, http.MethodGet, "/api/auth/verify", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var verify struct {
		Valid bool `json:"valid"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verify))
	assert.True(t, verify.Valid)
	assert.Equal(t, "bob", verify.User.Username)

	// email works in place of the username
	emailToken := login(t, router, "bob@example.com", "secret123")
	assert.NotEmpty(t, emailToken)
}

func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	router := setupAuthRouter(t)
	register(t, router, "carol")

	first := login(t, router, "carol", "secret123")
	second := login(t, router, "carol", "secret123")
	require.NotEqual(t, first, second)

	rec := doJSON(router, http.MethodGet, "/api/auth/verify", nil, first)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/auth/verify", nil, second)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout(t *testing.T) {
	router := setupAuthRouter(t)
	register(t, router, "dave")
	token := login(t, router, "dave", "secret123")

	rec := doJSON(router, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/auth/verify", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword(t *testing.T) {
	router := setupAuthRouter(t)
	register(t, router, "erin")
	token := login(t, router, "erin", "secret123")

	rec := doJSON(router, http.MethodPost, "/api/auth/change-password", gin.H{
		"oldPassword": "nope",
		"newPassword": "evenmoresecret",
	}, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/auth/change-password", gin.H{
		"oldPassword": "secret123",
		"newPassword": "evenmoresecret",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "erin",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login(t, router, "erin", "evenmoresecret")
}

func TestUpdateProfile(t *testing.T) {
	router := setupAuthRouter(t)
	register(t, router, "frank")
	token := login(t, router, "frank", "secret123")

	rec := doJSON(router, http.MethodPatch, "/api/auth/profile", gin.H{}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodPatch, "/api/auth/profile", gin.H{
		"fullName": "Frank Ocean",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		FullName string `json:"fullName"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Frank Ocean", profile.FullName)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := setupAuthRouter(t)

	for _, path := range []string{"/api/auth/verify", "/api/auth/profile"} {
		rec := doJSON(router, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}
