package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest-api/internal/utils"
)

const testSecret = "test-secret"

func runSession(t *testing.T, cookie string) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := Session(testSecret)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return c, rec, called
}

// A missing cookie is anonymous: the handler still runs, with no subject
// in the context.
func TestSessionMissingCookieIsAnonymous(t *testing.T) {
	c, rec, called := runSession(t, "")
	if !called {
		t.Fatal("next handler not called for anonymous request")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if c.Get("user_id") != nil {
		t.Error("anonymous request must not carry a subject")
	}
}

// A cookie that fails verification is rejected outright, never downgraded
// to anonymous.
func TestSessionMalformedCookieRejected(t *testing.T) {
	_, rec, called := runSession(t, "garbage-token")
	if called {
		t.Fatal("next handler must not run with an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionValidCookie(t *testing.T) {
	tok, err := utils.NewSessionToken(testSecret, "64f1b2a3c4d5e6f708192a3b", "ann@x.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	c, _, called := runSession(t, tok)
	if !called {
		t.Fatal("next handler not called")
	}
	if got := c.Get("user_id"); got != "64f1b2a3c4d5e6f708192a3b" {
		t.Errorf("user_id = %v", got)
	}
	if got := c.Get("email"); got != "ann@x.com" {
		t.Errorf("email = %v", got)
	}
}

func TestRequireSession(t *testing.T) {
	e := echo.New()

	// Anonymous request is rejected.
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := RequireSession()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", rec.Code)
	}

	// Authenticated request passes through.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/bookings", nil), rec)
	c.Set("user_id", "64f1b2a3c4d5e6f708192a3b")
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}
}
