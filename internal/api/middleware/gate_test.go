package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

type stubResolver struct {
	loggedIn bool
	err      error
}

func (r stubResolver) Resolve(_ context.Context, _ string, key string) (domain.RenderDecision, error) {
	if r.err != nil {
		return domain.RenderDecision{}, r.err
	}
	section, _ := domain.LookupSection(domain.SectionKey(key))
	return domain.Decide(r.loggedIn, section), nil
}

func runGate(t *testing.T, resolver GateResolver, sid string) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cctv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sid != "" {
		c.Set(SessionIDKey, sid)
	}

	called := false
	h := Gate(resolver, domain.SectionLiveCCTV)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	return rec, called, err
}

func TestGate_RedirectsWhenLoggedOut(t *testing.T) {
	rec, called, err := runGate(t, stubResolver{}, "s-1")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if called {
		t.Fatalf("protected handler must not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected Location /login, got %q", loc)
	}

	var body gateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Decision != domain.DecisionRedirectToLogin || body.Location != "/login" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestGate_AllowsWhenLoggedIn(t *testing.T) {
	rec, called, err := runGate(t, stubResolver{loggedIn: true}, "s-1")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected protected handler to run, code=%d", rec.Code)
	}
}

func TestGate_PropagatesSessionErrors(t *testing.T) {
	_, called, err := runGate(t, stubResolver{err: domain.ErrSessionNotFound}, "s-1")
	if err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if called {
		t.Fatalf("protected handler must not run")
	}
}

func TestGate_RequiresSession(t *testing.T) {
	_, _, err := runGate(t, stubResolver{loggedIn: true}, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
