package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ualireza82-tech/newswire/app/broadcast"
	"github.com/ualireza82-tech/newswire/app/cfg"
	"github.com/ualireza82-tech/newswire/app/scheduler"
)

// StatusSource is the diagnostic view the pipeline exposes.
type StatusSource interface {
	Status() scheduler.Status
}

type Handler struct {
	scheduler StatusSource
	hub       *broadcast.Hub
	version   string
}

func NewHandler(statusSource StatusSource, hub *broadcast.Hub) *Handler {
	return &Handler{
		scheduler: statusSource,
		hub:       hub,
		version:   cfg.Get().Version,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

func (h *Handler) GetStatus(c *gin.Context) {
	status := h.scheduler.Status()

	response := StatusResponse{
		Publishers: status.Publishers,
		Sources:    status.Sources,
		DedupSize:  status.DedupSize,
		Consumers:  h.hub.ConsumerCount(),
	}
	if !status.LastCycleStart.IsZero() {
		response.LastCycleStart = status.LastCycleStart.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, response)
}

// Subscribe hands the connection to the broadcast hub.
func (h *Handler) Subscribe(c *gin.Context) {
	h.hub.Subscribe(c.Writer, c.Request)
}
