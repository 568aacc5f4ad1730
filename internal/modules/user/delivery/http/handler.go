package handler

import (
	"net/http"

	"eduhub.vn/studyportal/internal/modules/user/dto"
	user "eduhub.vn/studyportal/internal/modules/user/service"
	"eduhub.vn/studyportal/pkg/response"
	"eduhub.vn/studyportal/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service user.AuthService
}

func NewAuthHandler(service user.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, id, "Registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Verify only runs behind the auth middleware, so reaching it means the token
// resolved to a user.
func (h *AuthHandler) Verify(c *gin.Context) {
	currentUser, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  dto.NewUserInfo(currentUser),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	currentUser, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Logout(c.Request.Context(), currentUser); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Logout successful")
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	currentUser, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        currentUser.ID,
		"username":  currentUser.Username,
		"email":     currentUser.Email,
		"fullName":  currentUser.FullName,
		"role":      currentUser.Role,
		"avatar":    currentUser.Avatar,
		"createdAt": currentUser.CreatedAt,
		"lastLogin": currentUser.LastLogin,
	})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	currentUser, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), currentUser, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Profile updated successfully")
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	currentUser, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), currentUser, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Password changed successfully")
}
