package response

import (
	"log"
	"net/http"

	"eduhub.vn/studyportal/internal/entity"
	"eduhub.vn/studyportal/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// CurrentUser retrieves the authenticated user placed in the context by the
// auth middleware.
func CurrentUser(c *gin.Context) (*entity.User, error) {
	value, exists := c.Get("user")
	if !exists {
		return nil, apperror.ErrUnauthorized
	}

	user, ok := value.(*entity.User)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	return user, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// Created reports a successful insert the way the API always does: the new
// row id plus a human-readable message.
func Created(c *gin.Context, id uint, message string) {
	c.JSON(http.StatusOK, gin.H{"id": id, "message": message})
}

// Message reports a successful mutation without returning the row.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
