package handler

import (
	"net/http"
	"strconv"

	"eduhub.vn/studyportal/internal/modules/deadline/dto"
	deadline "eduhub.vn/studyportal/internal/modules/deadline/service"
	"eduhub.vn/studyportal/pkg/response"
	"eduhub.vn/studyportal/pkg/validator"
	"github.com/gin-gonic/gin"
)

type DeadlineHandler struct {
	service deadline.DeadlineService
}

func NewDeadlineHandler(service deadline.DeadlineService) *DeadlineHandler {
	return &DeadlineHandler{service: service}
}

func (h *DeadlineHandler) GetDeadlines(c *gin.Context) {
	var filter dto.DeadlineFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	deadlines, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, deadlines)
}

func (h *DeadlineHandler) CreateDeadline(c *gin.Context) {
	var req dto.CreateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	// createdBy is best-effort: the route is public, a logged-in caller gets
	// attributed when the middleware ran upstream.
	createdBy := ""
	if currentUser, err := response.CurrentUser(c); err == nil {
		createdBy = currentUser.Username
	}

	id, err := h.service.Create(c.Request.Context(), createdBy, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, id, "Deadline created successfully")
}

func (h *DeadlineHandler) UpdateDeadlineStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateDeadlineStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Deadline updated successfully")
}

func (h *DeadlineHandler) DeleteDeadline(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Deadline deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
