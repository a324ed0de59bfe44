package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

type NavigationHandler struct {
	nav ports.NavigationService
}

func NewNavigationHandler(nav ports.NavigationService) *NavigationHandler {
	return &NavigationHandler{nav: nav}
}

// Sections lists the navigation bar entries visible to the caller.
//
// @Summary      Navigation items
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sectionsResponse
// @Router       /api/sections [get]
func (h *NavigationHandler) Sections(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	items, err := h.nav.Sections(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sectionsResponse{Sections: items})
}

// Resolve runs the auth gate for one section.
//
// @Summary      Auth gate decision
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "Section key"
// @Success      200  {object}  decisionResponse
// @Router       /api/sections/{key} [get]
func (h *NavigationHandler) Resolve(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	d, err := h.nav.Resolve(c.Request().Context(), sid, c.Param("key"))
	if err != nil {
		return err
	}
	resp := decisionResponse{Decision: d.Kind, Section: d.Section}
	if !d.Rendered() {
		resp.Location = domain.LoginPath
	}
	return c.JSON(http.StatusOK, resp)
}

// Navigate carries out navigate(target) with the configured strategy.
//
// @Summary      Navigate
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      navigateRequest  true  "Target section key"
// @Success      200   {object}  navigationResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/navigate [post]
func (h *NavigationHandler) Navigate(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	var req navigateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.nav.Navigate(c.Request().Context(), sid, req.Target)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNavigationResponse(res))
}
