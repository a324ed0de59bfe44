package ports

import (
	"context"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// LoginView is the client-facing snapshot of the login dialog.
type LoginView struct {
	Stage     domain.LoginStage
	Email     string
	Code      string
	Notice    *domain.Notice
	LoggedIn  bool
	Succeeded bool
}

// LoginService drives the login state machine for one session.
type LoginService interface {
	State(ctx context.Context, sessionID string) (*LoginView, error)
	Open(ctx context.Context, sessionID string) (*LoginView, error)
	SubmitCredentials(ctx context.Context, sessionID, email, password string) (*LoginView, error)
	VerifyOTP(ctx context.Context, sessionID, code string) (*LoginView, error)
	ResendOTP(ctx context.Context, sessionID string) (*LoginView, error)
	RequestForgotPassword(ctx context.Context, sessionID string) (*LoginView, error)
	SubmitForgotPassword(ctx context.Context, sessionID, email string) (*LoginView, error)
	Back(ctx context.Context, sessionID string) (*LoginView, error)
	CreateUser(ctx context.Context, username, password string) error
}
