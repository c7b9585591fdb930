package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"topiclens/internal/classifier"
	"topiclens/internal/metrics"
	"topiclens/internal/models"
	"topiclens/internal/validation"
)

// ExtractHandler handles keyword extraction via JSON API.
type ExtractHandler struct {
	svc *classifier.Service
}

// NewExtractHandler creates a new API extract handler.
func NewExtractHandler(svc *classifier.Service) *ExtractHandler {
	return &ExtractHandler{svc: svc}
}

// Extract classifies the request text and returns the scored topics.
//
// POST /api/extract_keywords
// Body: {"text": "...", "labels": ["..."]}   labels optional
func (h *ExtractHandler) Extract(c fiber.Ctx) error {
	var req models.ExtractRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "No JSON data provided")
	}

	if !validation.ValidateText(req.Text) {
		return jsonError(c, fiber.StatusBadRequest, "No valid text provided")
	}

	topics, err := h.svc.Extract(c.Context(), req.Text, req.Labels)
	if err != nil {
		metrics.RecordTopicExtraction("(none)", models.OutcomeFailed)

		var reqErr *classifier.RequestError
		if errors.As(err, &reqErr) {
			return jsonError(c, fiber.StatusBadGateway, reqErr.Message)
		}
		return jsonError(c, fiber.StatusInternalServerError, classifier.FallbackMessage)
	}

	if len(topics) == 0 {
		metrics.RecordTopicExtraction("(none)", models.OutcomeEmpty)
	}
	for _, t := range topics {
		metrics.RecordTopicExtraction(t.Topic, models.OutcomeExtracted)
	}

	return c.JSON(models.ExtractResponse{
		Status: "success",
		Topics: topics,
	})
}
