package ports

import (
	"context"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// DonationRepository persists donation form submissions.
type DonationRepository interface {
	Create(ctx context.Context, d *domain.Donation) error
}
