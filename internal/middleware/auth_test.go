package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"topiclens/internal/db"
	"topiclens/internal/models"
	"topiclens/internal/testutil"
)

// newAuthApp builds a minimal app with session support, a /seed route that
// writes a subject into the session, and a protected route behind RequireAuth.
func newAuthApp(database *db.DB) *fiber.App {
	app := fiber.New()

	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	auth := NewAuthMiddleware(database)

	app.Post("/seed", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		sess.Set("user_sub", c.Query("sub"))
		return c.SendString("ok")
	})
	app.Get("/account", auth.RequireAuth, func(c fiber.Ctx) error {
		user, _ := c.Locals("user").(*models.User)
		if user == nil {
			return c.Status(500).SendString("no user in locals")
		}
		return c.SendString(user.Sub)
	})

	return app
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	app := newAuthApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/account", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestRequireAuthLoadsKnownUser(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	testutil.CreateTestUser(t, database, "oidc|alice", "alice@example.com")

	app := newAuthApp(database)

	seed := httptest.NewRequest(http.MethodPost, "/seed?sub=oidc%7Calice", nil)
	seedResp, err := app.Test(seed)
	if err != nil {
		t.Fatalf("seed request failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	for _, c := range seedResp.Cookies() {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequireAuthRedirectsStaleSub(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	app := newAuthApp(database)

	seed := httptest.NewRequest(http.MethodPost, "/seed?sub=oidc%7Cgone", nil)
	seedResp, err := app.Test(seed)
	if err != nil {
		t.Fatalf("seed request failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	for _, c := range seedResp.Cookies() {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("status = %d, want redirect for unknown subject", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}
