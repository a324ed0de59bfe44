package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

func newTestAdmin(users []domain.MockUser, ledger *stubLedger, today time.Time) (*adminService, *stubUserRepo) {
	repo := &stubUserRepo{users: users}
	svc := NewAdminService(repo, ledger, time.UTC, zerolog.Nop()).(*adminService)
	svc.now = func() time.Time { return today }
	return svc, repo
}

func TestAdminService_DraftUsesNextID(t *testing.T) {
	svc, _ := newTestAdmin([]domain.MockUser{{ID: 11}}, &stubLedger{}, time.Now())

	draft, err := svc.DraftUser(context.Background())
	if err != nil {
		t.Fatalf("DraftUser returned error: %v", err)
	}
	if draft.ID != 12 || !draft.IsActive {
		t.Fatalf("unexpected draft %+v", draft)
	}
}

func TestAdminService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestAdmin([]domain.MockUser{{ID: 11, Username: "testuser123"}}, &stubLedger{}, time.Now())

	created, err := svc.CreateUser(ctx, domain.MockUser{Username: "new"})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if created.ID != 12 {
		t.Fatalf("expected id 12, got %d", created.ID)
	}
	if _, err := svc.CreateUser(ctx, domain.MockUser{ID: 11}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	created.FullName = "New Person"
	if _, err := svc.UpdateUser(ctx, created); err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if repo.users[1].FullName != "New Person" {
		t.Fatalf("update not applied: %+v", repo.users[1])
	}
	if _, err := svc.UpdateUser(ctx, domain.MockUser{ID: 99}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := svc.DeleteUser(ctx, 11); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if err := svc.DeleteUser(ctx, 11); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	users, _ := svc.ListUsers(ctx)
	if len(users) != 1 || users[0].ID != 12 {
		t.Fatalf("unexpected users %+v", users)
	}
}

func TestAdminService_Dashboard(t *testing.T) {
	ledger := &stubLedger{months: []domain.MonthlyTotal{
		{Month: "Jan", Total: 42000},
		{Month: "Feb", Total: 51000},
		{Month: "Mar", Total: 46800},
	}}
	users := []domain.MockUser{{ID: 1, IsActive: true}, {ID: 2, IsActive: true, IsAdmin: true}, {ID: 3}}
	svc, _ := newTestAdmin(users, ledger, time.Now())

	s, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if s.ThisMonth != 46800 || s.PreviousMonth != 51000 || s.YearToDate != 139800 {
		t.Fatalf("unexpected totals %+v", s)
	}
	if s.ActiveUsers != 2 || s.Admins != 1 {
		t.Fatalf("unexpected user counts %+v", s)
	}
}

func TestAdminService_TransactionsQuickRange(t *testing.T) {
	ledger := &stubLedger{txs: []domain.MockTransaction{
		{ID: "TXN-1001", Date: "2025-09-06"},
		{ID: "TXN-1000", Date: "2025-09-05"},
		{ID: "TXN-0999", Date: "2025-08-30"},
		{ID: "TXN-0998", Date: "2025-08-15"},
	}}
	today := time.Date(2025, time.September, 6, 15, 0, 0, 0, time.UTC)
	svc, _ := newTestAdmin(nil, ledger, today)
	ctx := context.Background()

	page, err := svc.Transactions(ctx, ports.TransactionQuery{Range: domain.RangeLastWeek, From: "2000-01-01", To: "2000-01-02"})
	if err != nil {
		t.Fatalf("Transactions returned error: %v", err)
	}
	if page.Range.From != "2025-08-31" || page.Range.To != "2025-09-06" {
		t.Fatalf("unexpected range %+v", page.Range)
	}
	if len(page.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(page.Transactions))
	}

	page, _ = svc.Transactions(ctx, ports.TransactionQuery{From: "2025-08-15", To: "2025-08-30"})
	if len(page.Transactions) != 2 || page.Transactions[0].ID != "TXN-0999" {
		t.Fatalf("unexpected explicit filter result %+v", page.Transactions)
	}

	page, _ = svc.Transactions(ctx, ports.TransactionQuery{From: "2025-08-15"})
	if len(page.Transactions) != 4 {
		t.Fatalf("half-open range should return everything, got %d", len(page.Transactions))
	}

	if _, err := svc.Transactions(ctx, ports.TransactionQuery{Range: "fortnight"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown range, got %v", err)
	}
}
