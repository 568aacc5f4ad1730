package handler

import (
	"net/http"
	"strconv"

	"eduhub.vn/studyportal/internal/modules/image/dto"
	image "eduhub.vn/studyportal/internal/modules/image/service"
	view "eduhub.vn/studyportal/internal/modules/view/service"
	"eduhub.vn/studyportal/pkg/response"
	"eduhub.vn/studyportal/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	service  image.ImageService
	counters view.CounterService
}

func NewImageHandler(service image.ImageService, counters view.CounterService) *ImageHandler {
	return &ImageHandler{
		service:  service,
		counters: counters,
	}
}

func (h *ImageHandler) GetImages(c *gin.Context) {
	var filter dto.ImageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	images, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	var req dto.UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	uploadedBy := ""
	if currentUser, err := response.CurrentUser(c); err == nil {
		uploadedBy = currentUser.Username
	}

	img, err := h.service.Upload(c.Request.Context(), uploadedBy, req, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       img.ID,
		"message":  "Image uploaded successfully",
		"fileName": img.FileName,
	})
}

func (h *ImageHandler) IncrementView(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.counters.IncrementImageView(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "OK")
}

func (h *ImageHandler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Image deleted successfully")
}

func (h *ImageHandler) DownloadImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	img, err := h.service.FileForDownload(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.FileAttachment(img.FilePath, img.FileName)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
