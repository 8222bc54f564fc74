package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Env       string    `json:"env"`
	Version   string    `json:"version"`
}

type HealthHandler struct {
	serviceName string
	env         string
	version     string
}

func NewHealthHandler(serviceName, env, version string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		env:         env,
		version:     version,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Env:       h.env,
		Version:   h.version,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
