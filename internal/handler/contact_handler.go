package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Contact serves GET /api/contact from configuration only.
func (h *Handler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, h.contact)
}

// Health reports whether the pool can reach postgres.
func (h *Handler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.log.Warn("health: ping failed", "err", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
