package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/janasiksha/jpk-web/internal/core/ports"
)

// TokenIssuer signs the bearer token for a new session.
type TokenIssuer interface {
	Issue(sessionID string, expiresAt time.Time) (string, error)
}

// SessionHandler exposes the navigation shell's session lifecycle.
type SessionHandler struct {
	nav    ports.NavigationService
	tokens TokenIssuer
}

func NewSessionHandler(nav ports.NavigationService, tokens TokenIssuer) *SessionHandler {
	return &SessionHandler{nav: nav, tokens: tokens}
}

// Start opens a new logged-out session.
//
// @Summary      Start a session
// @Tags         session
// @Produce      json
// @Success      201  {object}  startSessionResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/session [post]
func (h *SessionHandler) Start(c echo.Context) error {
	sess, err := h.nav.StartSession(c.Request().Context())
	if err != nil {
		return err
	}
	token, err := h.tokens.Issue(sess.ID, sess.ExpiresAt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, startSessionResponse{
		Token:   token,
		Session: toSessionResponse(sess),
	})
}

// Get returns the caller's session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	sess, err := h.nav.Session(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Logout clears the logged-in flag and returns the navigation to home.
//
// @Summary      Log out
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	res, err := h.nav.Logout(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNavigationResponse(res))
}
