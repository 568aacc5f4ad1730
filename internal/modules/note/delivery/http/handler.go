package handler

import (
	"net/http"
	"strconv"

	"eduhub.vn/studyportal/internal/modules/note/dto"
	note "eduhub.vn/studyportal/internal/modules/note/service"
	"eduhub.vn/studyportal/pkg/response"
	"eduhub.vn/studyportal/pkg/validator"
	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	service note.NoteService
}

func NewNoteHandler(service note.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) GetNotes(c *gin.Context) {
	var filter dto.NoteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	notes, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	createdBy := ""
	if currentUser, err := response.CurrentUser(c); err == nil {
		createdBy = currentUser.Username
	}

	id, err := h.service.Create(c.Request.Context(), createdBy, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, id, "Note added successfully")
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Note updated successfully")
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Note deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
