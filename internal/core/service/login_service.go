package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/api/metrics"
	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

type loginService struct {
	sessions    ports.SessionRepository
	credentials ports.CredentialRepository
	notifier    ports.Notifier
	log         zerolog.Logger
}

// NewLoginService returns a LoginService implementation.
func NewLoginService(
	sessions ports.SessionRepository,
	credentials ports.CredentialRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) ports.LoginService {
	return &loginService{
		sessions:    sessions,
		credentials: credentials,
		notifier:    notifier,
		log:         log,
	}
}

func (s *loginService) State(ctx context.Context, sessionID string) (*ports.LoginView, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return view(sess, nil), nil
}

// Open resets the dialog. Reopening always starts at Credentials with
// empty fields.
func (s *loginService) Open(ctx context.Context, sessionID string) (*ports.LoginView, error) {
	return s.step(ctx, sessionID, "open", func(_ *domain.Session, _ domain.LoginFlowState) (domain.LoginFlowState, *domain.Notice, error) {
		return domain.StartLoginFlow(), nil, nil
	})
}

func (s *loginService) SubmitCredentials(ctx context.Context, sessionID, email, password string) (*ports.LoginView, error) {
	return s.step(ctx, sessionID, "submit_credentials", func(_ *domain.Session, cur domain.LoginFlowState) (domain.LoginFlowState, *domain.Notice, error) {
		match := domain.CredentialAbsent
		if domain.ValidEmail(email) {
			stored, found, err := s.credentials.Lookup(ctx, email)
			if err != nil {
				return cur, nil, fmt.Errorf("lookup credentials: %w", err)
			}
			match = domain.MatchCredential(stored, found, password)
		}
		return domain.SubmitCredentials(cur, email, password, match)
	})
}

// VerifyOTP checks the entered code. On success the session flag and the
// reset flow are stored by the same Save, so a store failure leaves the
// user on the code screen instead of half logged in.
func (s *loginService) VerifyOTP(ctx context.Context, sessionID, code string) (*ports.LoginView, error) {
	var email string
	var succeeded bool
	v, err := s.step(ctx, sessionID, "verify_otp", func(sess *domain.Session, cur domain.LoginFlowState) (domain.LoginFlowState, *domain.Notice, error) {
		if p, ok := cur.(domain.OtpPending); ok {
			email = p.Email
		}
		next, ok, err := domain.VerifyOTP(cur, code)
		if ok {
			sess.Login(email)
		}
		succeeded = ok
		return next, nil, err
	})
	if err != nil || !succeeded {
		return v, err
	}

	metrics.LoginsTotal.Inc()
	s.log.Info().Str("session_id", sessionID).Str("email", email).Msg("session logged in")
	v.Succeeded = true
	return v, nil
}

func (s *loginService) ResendOTP(ctx context.Context, sessionID string) (*ports.LoginView, error) {
	return s.step(ctx, sessionID, "resend_otp", func(_ *domain.Session, cur domain.LoginFlowState) (domain.LoginFlowState, *domain.Notice, error) {
		return domain.ResendOTP(cur)
	})
}

func (s *loginService) RequestForgotPassword(ctx context.Context, sessionID string) (*ports.LoginView, error) {
	return s.step(ctx, sessionID, "request_forgot_password", func(_ *domain.Session, cur domain.LoginFlowState) (domain.LoginFlowState, *domain.Notice, error) {
		next, err := domain.RequestForgotPassword(cur)
		return next, nil, err
	})
}

func (s *loginService) SubmitForgotPassword(ctx context.Context, sessionID, email string) (*ports.LoginView, error) {
	return s.step(ctx, sessionID, "submit_forgot_password", func(_ *domain.Session, cur domain.LoginFlowState) (domain.LoginFlowState, *domain.Notice, error) {
		exists := false
		if domain.ValidEmail(email) {
			_, found, err := s.credentials.Lookup(ctx, email)
			if err != nil {
				return cur, nil, fmt.Errorf("lookup credentials: %w", err)
			}
			exists = found
		}
		return domain.SubmitForgotPassword(cur, email, exists)
	})
}

func (s *loginService) Back(ctx context.Context, sessionID string) (*ports.LoginView, error) {
	return s.step(ctx, sessionID, "back", func(_ *domain.Session, cur domain.LoginFlowState) (domain.LoginFlowState, *domain.Notice, error) {
		next, err := domain.Back(cur)
		return next, nil, err
	})
}

// CreateUser adds an entry to the credential map.
func (s *loginService) CreateUser(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return &domain.ValidationError{Message: "Username and password are required."}
	}
	if err := s.credentials.Create(ctx, username, password); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("user created")
	return nil
}

type transition func(sess *domain.Session, cur domain.LoginFlowState) (domain.LoginFlowState, *domain.Notice, error)

// step loads the session, applies one transition and saves the resulting
// state. Validation failures keep the (possibly updated) state so the user
// can retry from where they are.
func (s *loginService) step(ctx context.Context, sessionID, action string, fn transition) (*ports.LoginView, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	from := sess.LoginFlow().Stage()
	next, notice, stepErr := fn(sess, sess.LoginFlow())
	if stepErr != nil && !isUserFacing(stepErr) {
		return nil, stepErr
	}

	sess.Flow = next
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("%s: save session: %w", action, err)
	}

	result := "ok"
	if stepErr != nil {
		result = "rejected"
	}
	metrics.LoginTransitionsTotal.WithLabelValues(action, result).Inc()

	s.log.Debug().
		Str("session_id", sessionID).
		Str("action", action).
		Str("from", string(from)).
		Str("to", string(next.Stage())).
		Str("result", result).
		Msg("login flow step")

	if notice != nil {
		s.notifier.Notify(*notice)
	}
	if stepErr != nil {
		return nil, stepErr
	}
	return view(sess, notice), nil
}

func isUserFacing(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrCredentialMismatch) ||
		errors.Is(err, domain.ErrAccountNotFound) ||
		errors.Is(err, domain.ErrInvalidTransition)
}

func view(sess *domain.Session, notice *domain.Notice) *ports.LoginView {
	v := &ports.LoginView{
		Stage:    sess.LoginFlow().Stage(),
		Notice:   notice,
		LoggedIn: sess.IsLoggedIn,
	}
	switch st := sess.LoginFlow().(type) {
	case domain.OtpPending:
		v.Email = st.Email
		v.Code = st.Code
	case domain.ForgotPassword:
		v.Email = st.Email
	}
	return v
}
