package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListMeetings serves GET /api/meetings.
func (h *Handler) ListMeetings(c *gin.Context) {
	ms, err := h.store.ListMeetings(c.Request.Context())
	if err != nil {
		h.log.Error("list meetings", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ms)
}

// CreateMeeting serves POST /api/meetings. Field values of any JSON type are
// accepted as text; a body that is not a JSON object is rejected the same way
// as a missing field.
func (h *Handler) CreateMeeting(c *gin.Context) {
	var body createMeetingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Debug("create meeting: bad request", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgRequired})
		return
	}
	req := body.request()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.store.CreateMeeting(c.Request.Context(), req.NewMeeting())
	if err != nil {
		h.log.Error("create meeting", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.log.Info("meeting scheduled", "id", m.ID, "scheduled_at", m.ScheduledAt)
	c.JSON(http.StatusOK, m)
}
