package api

import (
	"github.com/gofiber/fiber/v3"

	"topiclens/internal/db"
	"topiclens/internal/jobs"
	"topiclens/internal/models"
)

// StatusHandler reports component health via JSON API.
type StatusHandler struct {
	db           *db.DB
	monitor      *jobs.Monitor
	cacheEnabled bool
}

// NewStatusHandler creates a new API status handler.
func NewStatusHandler(database *db.DB, monitor *jobs.Monitor, cacheEnabled bool) *StatusHandler {
	return &StatusHandler{db: database, monitor: monitor, cacheEnabled: cacheEnabled}
}

// Status returns the availability of the classifier endpoint, database, and
// cache.
func (h *StatusHandler) Status(c fiber.Ctx) error {
	resp := models.StatusResponse{
		Classifier: "down",
		Database:   "down",
		Cache:      "disabled",
	}

	if h.monitor != nil && h.monitor.Healthy() {
		resp.Classifier = "up"
	}
	if err := h.db.Ping(c.Context()); err == nil {
		resp.Database = "up"
	}
	if h.cacheEnabled {
		resp.Cache = "up"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   resp,
	})
}
