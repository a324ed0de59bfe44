package ports

import (
	"context"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// AdminUserRepository holds the admin panel's in-memory user list.
type AdminUserRepository interface {
	// List returns users in insertion order.
	List(ctx context.Context) ([]domain.MockUser, error)
	// Create appends u. A zero id is replaced by the next free id, chosen
	// atomically with the insert. A taken id returns domain.ErrUserExists.
	Create(ctx context.Context, u domain.MockUser) (domain.MockUser, error)
	// Update replaces the user with the same id, or returns domain.ErrUserNotFound.
	Update(ctx context.Context, u domain.MockUser) (domain.MockUser, error)
	Delete(ctx context.Context, id int) error
}

// LedgerRepository exposes the read-only transaction fixture and the
// ordered monthly donation totals.
type LedgerRepository interface {
	Transactions(ctx context.Context) ([]domain.MockTransaction, error)
	MonthlyTotals(ctx context.Context) ([]domain.MonthlyTotal, error)
}
