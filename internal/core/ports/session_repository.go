package ports

import (
	"context"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// SessionRepository stores AuthSessions.
type SessionRepository interface {
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Save inserts or replaces the session. Last write wins.
	Save(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}
