package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"eduhub.vn/studyportal/internal/modules/document/dto"
	document "eduhub.vn/studyportal/internal/modules/document/service"
	"eduhub.vn/studyportal/pkg/response"
	"eduhub.vn/studyportal/pkg/validator"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	service document.DocumentService
}

func NewDocumentHandler(service document.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	var filter dto.DocumentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	docs, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	currentUser, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	doc, err := h.service.Upload(c.Request.Context(), currentUser.Username, req, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       doc.ID,
		"message":  "Document uploaded successfully",
		"fileName": doc.FileName,
	})
}

func (h *DocumentHandler) ImportFromURL(c *gin.Context) {
	var req dto.ImportFromURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := h.service.ImportFromURL(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, id, "Imported from URL successfully")
}

func (h *DocumentHandler) PreviewDocument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	preview, err := h.service.Preview(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *DocumentHandler) AddTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.AddTag(c.Request.Context(), id, req.Tag); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Tag added")
}

func (h *DocumentHandler) ShareDocument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Share(c.Request.Context(), id, req.Email); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Share email sent (demo)")
}

// ToggleFavorite is a stub kept for frontend compatibility; there is no
// favorites table yet.
func (h *DocumentHandler) ToggleFavorite(c *gin.Context) {
	if _, ok := parseID(c); !ok {
		return
	}
	response.Message(c, "Favorite updated (demo)")
}

// AddCollaborator is a stub kept for frontend compatibility.
func (h *DocumentHandler) AddCollaborator(c *gin.Context) {
	if _, ok := parseID(c); !ok {
		return
	}

	var req dto.CollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	response.Message(c, fmt.Sprintf("Invited %s to collaborate (demo)", req.Email))
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Document deleted successfully")
}

func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := h.service.FileForDownload(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.FileAttachment(doc.FilePath, doc.FileName)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
