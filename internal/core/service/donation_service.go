package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/api/metrics"
	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

type donationService struct {
	repo ports.DonationRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewDonationService(repo ports.DonationRepository, log zerolog.Logger) ports.DonationService {
	return &donationService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log,
	}
}

// Donate records a pledge. No payment is taken.
func (s *donationService) Donate(ctx context.Context, in ports.DonationInput) (*domain.Donation, error) {
	email := strings.TrimSpace(in.Email)
	if !domain.ValidEmail(email) {
		return nil, &domain.ValidationError{Message: "Please enter a valid email."}
	}
	if in.Amount <= 0 {
		return nil, &domain.ValidationError{Message: "Please enter a donation amount."}
	}

	d := &domain.Donation{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Amount:    in.Amount,
		Purpose:   strings.TrimSpace(in.Purpose),
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("record donation: %w", err)
	}

	metrics.DonationsTotal.Inc()
	metrics.DonationAmountTotal.Add(float64(d.Amount))
	s.log.Info().Str("donation_id", d.ID).Int64("amount", d.Amount).Msg("donation recorded")
	return d, nil
}
