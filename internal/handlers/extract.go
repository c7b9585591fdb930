package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"topiclens/internal/classifier"
	"topiclens/internal/config"
	"topiclens/internal/db"
	"topiclens/internal/extraction"
	"topiclens/internal/metrics"
	"topiclens/internal/models"
)

// ExtractHandler serves the extraction form and its HTMX submit endpoint.
type ExtractHandler struct {
	svc *classifier.Service
	db  *db.DB
	cfg *config.Config
}

// NewExtractHandler creates a new extraction handler.
func NewExtractHandler(svc *classifier.Service, database *db.DB, cfg *config.Config) *ExtractHandler {
	return &ExtractHandler{svc: svc, db: database, cfg: cfg}
}

// Index renders the extraction form with any state from a previous submit.
func (h *ExtractHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	form := extraction.NewForm(h.svc)
	form.Restore(loadFormState(c))

	return c.Render("index", MergeBranding(fiber.Map{
		"User":   user,
		"Input":  form.Input(),
		"Topics": form.Topics(),
		"Error":  form.Error(),
		"Labels": h.svc.DefaultLabels(),
	}, h.cfg))
}

// Extract handles the HTMX form submit: runs one extraction attempt and
// returns the results list or an error box for the swap target.
func (h *ExtractHandler) Extract(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	form := extraction.NewForm(h.svc)
	form.Restore(loadFormState(c))
	form.SetInput(c.FormValue("text"))
	form.Submit(c.Context())
	saveFormState(c, form.State())

	if msg := form.Error(); msg != "" {
		if msg != extraction.EmptyInputMessage {
			metrics.RecordTopicExtraction("(none)", models.OutcomeFailed)
		}
		return htmxError(c, msg)
	}

	topics := form.Topics()
	h.recordSuccess(c, user, form.Input(), topics)

	return c.Render("partials/topics_list", fiber.Map{
		"Topics": topics,
	}, "")
}

// recordSuccess updates stats and persists the extraction to history.
func (h *ExtractHandler) recordSuccess(c fiber.Ctx, user *models.User, input string, topics []models.Topic) {
	if len(topics) == 0 {
		metrics.RecordTopicExtraction("(none)", models.OutcomeEmpty)
	}
	for _, t := range topics {
		metrics.RecordTopicExtraction(t.Topic, models.OutcomeExtracted)
	}

	e := &models.Extraction{
		SessionID: sessionID(c),
		InputText: input,
		Topics:    topics,
	}
	if user != nil {
		e.UserID = &user.ID
	}

	go func() {
		if err := h.db.CreateExtraction(context.Background(), e); err != nil {
			log.Printf("Failed to save extraction history: %v", err)
		}
	}()
}
