package controllers

import (
	"net/http"
	"time"

	"github.com/dropDatabas3/catalogo/internal/http/helpers"
)

// HealthController responde el liveness check del servicio.
type HealthController struct {
	started time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{started: time.Now()}
}

// Healthz responde GET /healthz.
func (c *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(c.started).Round(time.Second).String(),
	})
}
