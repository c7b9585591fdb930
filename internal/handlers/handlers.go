package handlers

import (
	"encoding/json"
	"html"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"topiclens/internal/config"
	"topiclens/internal/extraction"
)

// formStateKey is the session key holding the serialized form state.
const formStateKey = "form_state"

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="error-box" role="alert">` + html.EscapeString(message) + `</div>`,
	)
}

// MergeBranding adds site branding data to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	data["OIDCEnabled"] = cfg.IsOIDCEnabled()
	return data
}

// loadFormState restores the form state stored in the session, if any.
func loadFormState(c fiber.Ctx) extraction.State {
	var state extraction.State

	sess := session.FromContext(c)
	if sess == nil {
		return state
	}

	raw, _ := sess.Get(formStateKey).(string)
	if raw == "" {
		return state
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return extraction.State{}
	}
	return state
}

// saveFormState persists the form state in the session.
func saveFormState(c fiber.Ctx, state extraction.State) {
	sess := session.FromContext(c)
	if sess == nil {
		return
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	sess.Set(formStateKey, string(raw))
}

// sessionID returns the current session identifier, empty when sessions are
// unavailable.
func sessionID(c fiber.Ctx) string {
	sess := session.FromContext(c)
	if sess == nil {
		return ""
	}
	return sess.ID()
}
