package handler

import (
	"log"
	"net/http"
	"strconv"

	activity "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ActivityHandler struct {
	service  activity.ActivityService
	upgrader websocket.Upgrader
}

func NewActivityHandler(service activity.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// GetActivities returns the tail of the audit log, newest first.
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// StreamActivities pushes every new audit entry over a WebSocket. Best-effort
// only: a client that falls behind misses entries.
func (h *ActivityHandler) StreamActivities(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}
	defer conn.Close()

	entries, cancel := h.service.Subscribe()
	defer cancel()

	// Read pump: we never expect client messages, but reading is the only way
	// to learn the peer went away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return
			}
			if err := conn.WriteJSON(entry); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
