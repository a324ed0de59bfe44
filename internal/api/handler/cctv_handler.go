package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CCTVHandler serves the protected live CCTV section.
type CCTVHandler struct {
	streamURL string
}

func NewCCTVHandler(streamURL string) *CCTVHandler {
	return &CCTVHandler{streamURL: streamURL}
}

// Stream returns the live stream location. Only reachable through the gate.
//
// @Summary      Live CCTV
// @Tags         cctv
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cctvResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/cctv [get]
func (h *CCTVHandler) Stream(c echo.Context) error {
	return c.JSON(http.StatusOK, cctvResponse{StreamURL: h.streamURL})
}
