package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	pinger  Pinger
	backend string
	version string
}

func NewHealthController(pinger Pinger, backend, version string) *HealthController {
	return &HealthController{
		pinger:  pinger,
		backend: backend,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := map[string]string{"store": h.backend}
	status := "healthy"

	if h.pinger != nil {
		if err := h.pinger.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
