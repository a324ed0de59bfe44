package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

func TestDonationService_Donate(t *testing.T) {
	repo := &stubDonationRepo{}
	svc := NewDonationService(repo, zerolog.Nop())

	d, err := svc.Donate(context.Background(), ports.DonationInput{
		Name:   " Anita Bose ",
		Email:  "anita@example.com",
		Amount: 2500,
	})
	if err != nil {
		t.Fatalf("Donate returned error: %v", err)
	}
	if d.ID == "" || d.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", d)
	}
	if d.Name != "Anita Bose" {
		t.Fatalf("expected trimmed name, got %q", d.Name)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved donation, got %d", len(repo.saved))
	}
}

func TestDonationService_Validation(t *testing.T) {
	svc := NewDonationService(&stubDonationRepo{}, zerolog.Nop())

	cases := []ports.DonationInput{
		{Email: "bad", Amount: 100},
		{Email: "a@b.com", Amount: 0},
	}
	for _, in := range cases {
		if _, err := svc.Donate(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("input %+v: expected validation error, got %v", in, err)
		}
	}
}

func TestDonationService_RepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewDonationService(&stubDonationRepo{err: boom}, zerolog.Nop())

	if _, err := svc.Donate(context.Background(), ports.DonationInput{Email: "a@b.com", Amount: 1}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
