package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/janasiksha/jpk-web/internal/core/ports"
)

type DonationHandler struct {
	donations ports.DonationService
}

func NewDonationHandler(donations ports.DonationService) *DonationHandler {
	return &DonationHandler{donations: donations}
}

// Donate records a pledge from the donation form.
//
// @Summary      Donate
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        body  body      donationRequest  true  "Donation form"
// @Success      201   {object}  domain.Donation
// @Failure      422   {object}  errorResponse
// @Router       /api/donations [post]
func (h *DonationHandler) Donate(c echo.Context) error {
	var req donationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	d, err := h.donations.Donate(c.Request().Context(), ports.DonationInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Amount:  req.Amount,
		Purpose: req.Purpose,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}
