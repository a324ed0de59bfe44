package ports

import (
	"context"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// NavigationResult describes how a navigate(target) request was carried out.
// Router results carry Path; anchor results carry Anchor and Scrolled.
type NavigationResult struct {
	Strategy string
	Target   string
	Decision domain.DecisionKind
	Section  domain.Section
	Path     string
	Anchor   string
	Scrolled bool
}

// NavigationService is the navigation shell. It owns the session flag and
// hides which navigation strategy is active.
type NavigationService interface {
	StartSession(ctx context.Context) (*domain.Session, error)
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
	Login(ctx context.Context, sessionID, email string) error
	Logout(ctx context.Context, sessionID string) (*NavigationResult, error)
	// Navigate never fails for unknown targets; they resolve to the
	// not-found view.
	Navigate(ctx context.Context, sessionID, target string) (*NavigationResult, error)
	Sections(ctx context.Context, sessionID string) ([]domain.Section, error)
	Resolve(ctx context.Context, sessionID, key string) (domain.RenderDecision, error)
}
