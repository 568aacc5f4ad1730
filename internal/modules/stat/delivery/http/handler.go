package handler

import (
	"net/http"

	stat "eduhub.vn/studyportal/internal/modules/stat/service"
	"eduhub.vn/studyportal/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatHandler struct {
	service stat.StatService
}

func NewStatHandler(service stat.StatService) *StatHandler {
	return &StatHandler{service: service}
}

func (h *StatHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
