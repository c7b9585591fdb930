package handlers

import (
	"github.com/gofiber/fiber/v3"

	"topiclens/internal/config"
	"topiclens/internal/db"
	"topiclens/internal/models"
)

// historyPageSize is the number of extractions shown on the history page.
const historyPageSize = 25

// HistoryHandler serves the extraction history page.
type HistoryHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(database *db.DB, cfg *config.Config) *HistoryHandler {
	return &HistoryHandler{db: database, cfg: cfg}
}

// Show renders recent extractions: the user's when logged in, otherwise the
// current browser session's.
func (h *HistoryHandler) Show(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	var (
		extractions []models.Extraction
		err         error
	)
	if user != nil {
		extractions, err = h.db.GetRecentExtractionsForUser(c.Context(), user.ID, historyPageSize)
	} else {
		extractions, err = h.db.GetRecentExtractionsForSession(c.Context(), sessionID(c), historyPageSize)
	}
	if err != nil {
		return err
	}

	return c.Render("history", MergeBranding(fiber.Map{
		"User":        user,
		"Extractions": extractions,
	}, h.cfg))
}
