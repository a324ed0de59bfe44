package ports

import (
	"context"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// DonationInput is the DTO passed from the transport layer.
type DonationInput struct {
	Name    string
	Email   string
	Phone   string
	Amount  int64
	Purpose string
}

type DonationService interface {
	Donate(ctx context.Context, in DonationInput) (*domain.Donation, error)
}
