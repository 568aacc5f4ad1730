package handler

import (
	"net/http"
	"strconv"

	"eduhub.vn/studyportal/internal/modules/comment/dto"
	comment "eduhub.vn/studyportal/internal/modules/comment/service"
	"eduhub.vn/studyportal/pkg/response"
	"eduhub.vn/studyportal/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service comment.CommentService
}

func NewCommentHandler(service comment.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	entityID, err := strconv.ParseUint(c.Param("entityId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entity id"})
		return
	}

	comments, err := h.service.ListForEntity(c.Request.Context(), c.Param("entityType"), uint(entityID))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, id, "Comment added successfully")
}
