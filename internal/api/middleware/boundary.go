package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

type boundaryResponse struct {
	Error  string `json:"error"`
	Action string `json:"action"`
}

// Boundary recovers panics from the handler tree, logs them with their
// stack and answers with a generic error that tells the client to reload.
// The response is written here, so the HTTP error handler never sees it.
func Boundary(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error().
				Err(err).
				Bytes("stack", stack).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("recovered from panic")

			if c.Response().Committed {
				return nil
			}
			return c.JSON(http.StatusInternalServerError, boundaryResponse{
				Error:  "something went wrong",
				Action: "reload",
			})
		},
	})
}
