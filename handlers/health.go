package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(m *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: m}
}

func (h *HealthHandler) RootHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello form Doctors portal")
}

// HealthHandler reports the latest snapshot; 503 until every dependency answers.
func (h *HealthHandler) HealthHandler(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
