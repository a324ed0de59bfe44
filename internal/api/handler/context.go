package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/janasiksha/jpk-web/internal/api/middleware"
)

// ctxSessionID extracts the session id injected by the Session middleware.
// An empty value means the route was registered without it.
func ctxSessionID(c echo.Context) (string, error) {
	sid, _ := c.Get(middleware.SessionIDKey).(string)
	if sid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sid, nil
}

// bindAndValidate binds the request body into req and runs the registered
// validator on it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
