package handler

import (
	"fmt"
	"net/http"
	"time"

	export "eduhub.vn/studyportal/internal/modules/export/service"
	"eduhub.vn/studyportal/pkg/response"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	service export.ExportService
	dbPath  string
}

func NewExportHandler(service export.ExportService, dbPath string) *ExportHandler {
	return &ExportHandler{service: service, dbPath: dbPath}
}

func (h *ExportHandler) ExportAll(c *gin.Context) {
	backup, err := h.service.BuildBackup(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=backup-%d.json", time.Now().UnixMilli()))
	c.JSON(http.StatusOK, backup)
}

func (h *ExportHandler) ExportDatabase(c *gin.Context) {
	c.FileAttachment(h.dbPath, fmt.Sprintf("database-backup-%d.db", time.Now().UnixMilli()))
}
