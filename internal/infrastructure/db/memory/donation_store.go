package memory

import (
	"context"
	"sync"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

type DonationStore struct {
	mu        sync.RWMutex
	donations []domain.Donation
}

func NewDonationStore() *DonationStore {
	return &DonationStore{}
}

func (s *DonationStore) Create(_ context.Context, d *domain.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donations = append(s.donations, *d)
	return nil
}

// All returns recorded donations in insertion order.
func (s *DonationStore) All() []domain.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Donation(nil), s.donations...)
}
