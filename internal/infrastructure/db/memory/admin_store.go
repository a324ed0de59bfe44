package memory

import (
	"context"
	"sync"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// SeedUsers is the admin panel's initial user list.
func SeedUsers() []domain.MockUser {
	return []domain.MockUser{
		{
			ID:       11,
			Username: "testuser123",
			Email:    "test@example.com",
			Mobile:   "1234567890",
			FullName: "Test User",
			IsActive: true,
		},
		{
			ID:                   12,
			Username:             "anita",
			Email:                "anita@example.com",
			Mobile:               "9876543210",
			FullName:             "Anita Bose",
			CCTVLink:             "https://example.com/cctv/anita",
			IsAdmin:              true,
			IsActive:             true,
			IsCCTVVisible:        true,
			IsCCTVStorageVisible: true,
		},
	}
}

// SeedTransactions is the read-only ledger shown on the transactions tab.
func SeedTransactions() []domain.MockTransaction {
	return []domain.MockTransaction{
		{ID: "TXN-1001", Date: "2025-09-06", Particular: "Donation", Amount: 2500, Method: "UPI", Status: "Success"},
		{ID: "TXN-1000", Date: "2025-09-05", Particular: "Donation", Amount: 1200, Method: "Card", Status: "Success"},
		{ID: "TXN-0999", Date: "2025-08-30", Particular: "Donation", Amount: 5000, Method: "NetBanking", Status: "Success"},
		{ID: "TXN-0998", Date: "2025-08-15", Particular: "Donation", Amount: 750, Method: "Cash", Status: "Pending"},
	}
}

// SeedMonthlyTotals is the ordered donation history behind the dashboard.
func SeedMonthlyTotals() []domain.MonthlyTotal {
	return []domain.MonthlyTotal{
		{Month: "Jan", Total: 42000},
		{Month: "Feb", Total: 51000},
		{Month: "Mar", Total: 46800},
		{Month: "Apr", Total: 59000},
		{Month: "May", Total: 61000},
		{Month: "Jun", Total: 55250},
	}
}

// AdminUserStore is an ordered user collection keyed by id.
type AdminUserStore struct {
	mu    sync.RWMutex
	users []domain.MockUser
}

func NewAdminUserStore(seed []domain.MockUser) *AdminUserStore {
	return &AdminUserStore{users: append([]domain.MockUser(nil), seed...)}
}

func (s *AdminUserStore) List(_ context.Context) ([]domain.MockUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.MockUser(nil), s.users...), nil
}

func (s *AdminUserStore) Create(_ context.Context, u domain.MockUser) (domain.MockUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = domain.NextUserID(s.users)
	}
	if s.indexOf(u.ID) >= 0 {
		return domain.MockUser{}, domain.ErrUserExists
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *AdminUserStore) Update(_ context.Context, u domain.MockUser) (domain.MockUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(u.ID)
	if i < 0 {
		return domain.MockUser{}, domain.ErrUserNotFound
	}
	s.users[i] = u
	return u, nil
}

func (s *AdminUserStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrUserNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}

func (s *AdminUserStore) indexOf(id int) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// Ledger serves fixed transactions and monthly totals.
type Ledger struct {
	txs    []domain.MockTransaction
	months []domain.MonthlyTotal
}

func NewLedger(txs []domain.MockTransaction, months []domain.MonthlyTotal) *Ledger {
	return &Ledger{txs: txs, months: months}
}

func (l *Ledger) Transactions(_ context.Context) ([]domain.MockTransaction, error) {
	return append([]domain.MockTransaction(nil), l.txs...), nil
}

func (l *Ledger) MonthlyTotals(_ context.Context) ([]domain.MonthlyTotal, error) {
	return append([]domain.MonthlyTotal(nil), l.months...), nil
}
