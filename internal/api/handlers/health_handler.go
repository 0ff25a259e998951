package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/health"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

type HealthHandler struct {
	svc *health.Service
}

func NewHealthHandler(svc *health.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Health reports every dependency and answers 503 if any is down.
func (h *HealthHandler) Health(c *gin.Context) {
	report, ok := h.svc.Report(c.Request.Context())
	status := http.StatusOK
	state := "ok"
	if !ok {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "checks": report})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.svc.Ready(c.Request.Context()); err != nil {
		writeError(c, utils.E(utils.CodeUnavailable, "HealthHandler.Ready", err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
