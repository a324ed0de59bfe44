package ports

import (
	"context"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// TransactionQuery selects transactions either by explicit bounds or by a
// quick range. A non-empty Range wins over From/To.
type TransactionQuery struct {
	From  string
	To    string
	Range domain.QuickRange
}

// TransactionPage is the filtered view plus the effective range.
type TransactionPage struct {
	Range        domain.DateRange
	Transactions []domain.MockTransaction
}

// AdminService backs the three admin tabs.
type AdminService interface {
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
	ListUsers(ctx context.Context) ([]domain.MockUser, error)
	DraftUser(ctx context.Context) (domain.MockUser, error)
	CreateUser(ctx context.Context, u domain.MockUser) (domain.MockUser, error)
	UpdateUser(ctx context.Context, u domain.MockUser) (domain.MockUser, error)
	DeleteUser(ctx context.Context, id int) error
	Transactions(ctx context.Context, q TransactionQuery) (*TransactionPage, error)
}
