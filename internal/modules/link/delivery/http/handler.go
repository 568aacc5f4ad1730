package handler

import (
	"net/http"
	"strconv"

	"eduhub.vn/studyportal/internal/modules/link/dto"
	link "eduhub.vn/studyportal/internal/modules/link/service"
	view "eduhub.vn/studyportal/internal/modules/view/service"
	"eduhub.vn/studyportal/pkg/response"
	"eduhub.vn/studyportal/pkg/validator"
	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	service  link.LinkService
	counters view.CounterService
}

func NewLinkHandler(service link.LinkService, counters view.CounterService) *LinkHandler {
	return &LinkHandler{
		service:  service,
		counters: counters,
	}
}

func (h *LinkHandler) GetLinks(c *gin.Context) {
	var filter dto.LinkFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	links, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req dto.CreateLinkRequest
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

	response.Created(c, id, "Link added successfully")
}

func (h *LinkHandler) IncrementClick(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.counters.IncrementLinkClick(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "OK")
}

func (h *LinkHandler) DeleteLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Link deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
