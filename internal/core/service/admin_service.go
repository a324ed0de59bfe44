package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

type adminService struct {
	users  ports.AdminUserRepository
	ledger ports.LedgerRepository
	loc    *time.Location
	now    func() time.Time
	log    zerolog.Logger
}

// NewAdminService returns the admin panel service. Quick date ranges are
// computed in loc; a nil loc means UTC.
func NewAdminService(users ports.AdminUserRepository, ledger ports.LedgerRepository, loc *time.Location, log zerolog.Logger) ports.AdminService {
	if loc == nil {
		loc = time.UTC
	}
	return &adminService{
		users:  users,
		ledger: ledger,
		loc:    loc,
		now:    time.Now,
		log:    log,
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	months, err := s.ledger.MonthlyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	summary := domain.Summarize(months, users)
	return &summary, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.MockUser, error) {
	return s.users.List(ctx)
}

// DraftUser returns the blank row for "Add User". It is not stored.
func (s *adminService) DraftUser(ctx context.Context) (domain.MockUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return domain.MockUser{}, err
	}
	return domain.DraftUser(users), nil
}

// CreateUser stores u. A zero id is replaced by the next free id.
func (s *adminService) CreateUser(ctx context.Context, u domain.MockUser) (domain.MockUser, error) {
	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.MockUser{}, err
	}
	s.log.Info().Int("user_id", created.ID).Str("username", created.Username).Msg("admin user created")
	return created, nil
}

func (s *adminService) UpdateUser(ctx context.Context, u domain.MockUser) (domain.MockUser, error) {
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return domain.MockUser{}, err
	}
	s.log.Info().Int("user_id", updated.ID).Msg("admin user updated")
	return updated, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id int) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("user_id", id).Msg("admin user deleted")
	return nil
}

// Transactions filters the ledger. A quick range is resolved against the
// current date in the configured location; explicit bounds are used as-is
// and an incomplete pair shows every row.
func (s *adminService) Transactions(ctx context.Context, q ports.TransactionQuery) (*ports.TransactionPage, error) {
	r := domain.DateRange{From: q.From, To: q.To}
	if q.Range != "" {
		var err error
		r, err = q.Range.Range(s.now().In(s.loc))
		if err != nil {
			return nil, err
		}
	}

	txs, err := s.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return &ports.TransactionPage{
		Range:        r,
		Transactions: domain.FilterTransactions(txs, r),
	}, nil
}
