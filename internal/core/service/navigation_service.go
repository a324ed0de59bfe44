package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/api/metrics"
	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// NavigationService is the navigation shell.
type NavigationService struct {
	sessions  ports.SessionRepository
	navigator Navigator
	ttl       time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

func NewNavigationService(sessions ports.SessionRepository, navigator Navigator, ttl time.Duration, log zerolog.Logger) *NavigationService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if navigator == nil {
		navigator = RouterNavigator{}
	}
	return &NavigationService{
		sessions:  sessions,
		navigator: navigator,
		ttl:       ttl,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
	}
}

func (s *NavigationService) StartSession(ctx context.Context) (*domain.Session, error) {
	sess := domain.NewSession(uuid.NewString(), s.now(), s.ttl)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	s.log.Debug().Str("session_id", sess.ID).Msg("session started")
	return sess, nil
}

func (s *NavigationService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// Login flips the session flag. Repeated calls have no further effect.
func (s *NavigationService) Login(ctx context.Context, sessionID, email string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.IsLoggedIn && (email == "" || sess.Email == email) {
		return nil
	}
	sess.Login(email)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	s.log.Info().Str("session_id", sessionID).Str("email", email).Msg("session logged in")
	return nil
}

// Logout clears the session flag and navigates home.
func (s *NavigationService) Logout(ctx context.Context, sessionID string) (*ports.NavigationResult, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	wasLoggedIn := sess.IsLoggedIn
	sess.Logout()
	res := s.navigator.Navigate(sess, string(domain.SectionHome))
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("logout: %w", err)
	}
	if wasLoggedIn {
		s.log.Info().Str("session_id", sessionID).Msg("session logged out")
	}
	return &res, nil
}

func (s *NavigationService) Navigate(ctx context.Context, sessionID, target string) (*ports.NavigationResult, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	res := s.navigator.Navigate(sess, target)
	metrics.NavigationsTotal.WithLabelValues(res.Strategy, string(res.Decision)).Inc()

	if res.Strategy == StrategyRouter {
		if err := s.sessions.Save(ctx, sess); err != nil {
			return nil, fmt.Errorf("navigate: %w", err)
		}
	}
	return &res, nil
}

func (s *NavigationService) Sections(ctx context.Context, sessionID string) ([]domain.Section, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return domain.NavItems(sess.IsLoggedIn), nil
}

// Resolve runs the auth gate for a single section. Unknown keys resolve
// to the not-found view.
func (s *NavigationService) Resolve(ctx context.Context, sessionID, key string) (domain.RenderDecision, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.RenderDecision{}, err
	}
	section, ok := domain.LookupSection(domain.SectionKey(key))
	if !ok {
		section = domain.NotFoundSection()
	}
	decision := domain.Decide(sess.IsLoggedIn, section)
	metrics.GateDecisionsTotal.WithLabelValues(string(decision.Kind)).Inc()
	return decision, nil
}
