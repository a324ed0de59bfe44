package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"validation", &domain.ValidationError{Message: "Please enter the 6-digit code."}, http.StatusUnprocessableEntity, "Please enter the 6-digit code."},
		{"mismatch", domain.ErrCredentialMismatch, http.StatusUnauthorized, "Invalid username or password."},
		{"account", domain.ErrAccountNotFound, http.StatusNotFound, "No account found with that email."},
		{"session", domain.ErrSessionNotFound, http.StatusUnauthorized, "session not found or expired"},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"user exists", fmt.Errorf("create: %w", domain.ErrUserExists), http.StatusConflict, "Username already exists."},
		{"transition", fmt.Errorf("%w: cannot back from credentials", domain.ErrInvalidTransition), http.StatusConflict, "invalid login flow transition: cannot back from credentials"},
		{"echo", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unknown", errors.New("mongo exploded"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_SkipsCommitted(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Body.String() != "done" {
		t.Fatalf("committed response was modified: %q", rec.Body.String())
	}
}
