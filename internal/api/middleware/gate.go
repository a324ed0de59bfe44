package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// GateResolver evaluates the auth gate for one section of a session.
type GateResolver interface {
	Resolve(ctx context.Context, sessionID, key string) (domain.RenderDecision, error)
}

type gateResponse struct {
	Decision domain.DecisionKind `json:"decision"`
	Location string              `json:"location"`
}

// Gate protects an endpoint with the same decision the navigation shell
// makes for section key. It must run after Session.
func Gate(resolver GateResolver, key domain.SectionKey) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, _ := c.Get(SessionIDKey).(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			decision, err := resolver.Resolve(c.Request().Context(), sid, string(key))
			if err != nil {
				return err
			}
			if !decision.Rendered() {
				c.Response().Header().Set(echo.HeaderLocation, domain.LoginPath)
				return c.JSON(http.StatusUnauthorized, gateResponse{
					Decision: decision.Kind,
					Location: domain.LoginPath,
				})
			}
			return next(c)
		}
	}
}
