package handler

import (
	"net/http"
	"strconv"

	"eduhub.vn/studyportal/internal/modules/assignment/dto"
	assignment "eduhub.vn/studyportal/internal/modules/assignment/service"
	"eduhub.vn/studyportal/pkg/response"
	"eduhub.vn/studyportal/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	service assignment.AssignmentService
}

func NewAssignmentHandler(service assignment.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

func (h *AssignmentHandler) GetAssignments(c *gin.Context) {
	var filter dto.AssignmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	assignments, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentHandler) SubmitAssignment(c *gin.Context) {
	var req dto.SubmitAssignmentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	a, err := h.service.Submit(c.Request.Context(), req, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       a.ID,
		"message":  "Assignment submitted successfully",
		"fileName": a.FileName,
	})
}

func (h *AssignmentHandler) GradeAssignment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Grade(c.Request.Context(), id, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Assignment graded successfully")
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Assignment deleted successfully")
}

func (h *AssignmentHandler) DownloadAssignment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.FileForDownload(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.FileAttachment(a.FilePath, a.FileName)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
