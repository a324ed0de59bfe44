package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// Key format: session:<id>. Entries expire with the session.
const sessionKeyPrefix = "session:"

// SessionStore keeps AuthSessions in Redis with a TTL matching ExpiresAt.
type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

type flowRecord struct {
	Stage domain.LoginStage `json:"stage"`
	Email string            `json:"email,omitempty"`
	Code  string            `json:"code,omitempty"`
}

type sessionRecord struct {
	ID         string     `json:"id"`
	IsLoggedIn bool       `json:"is_logged_in"`
	Email      string     `json:"email,omitempty"`
	Flow       flowRecord `json:"flow"`
	History    []string   `json:"history,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	sess := toSession(rec)
	if sess.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	raw, err := json.Marshal(toRecord(sess))
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.Delete(ctx, sess.ID)
		}
	}
	if err := s.client.Set(ctx, s.key(sess.ID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return sessionKeyPrefix + id
}

func toRecord(sess *domain.Session) sessionRecord {
	rec := sessionRecord{
		ID:         sess.ID,
		IsLoggedIn: sess.IsLoggedIn,
		Email:      sess.Email,
		History:    sess.History,
		CreatedAt:  sess.CreatedAt,
		ExpiresAt:  sess.ExpiresAt,
	}
	flow := sess.LoginFlow()
	rec.Flow.Stage = flow.Stage()
	switch st := flow.(type) {
	case domain.OtpPending:
		rec.Flow.Email = st.Email
		rec.Flow.Code = st.Code
	case domain.ForgotPassword:
		rec.Flow.Email = st.Email
	}
	return rec
}

func toSession(rec sessionRecord) *domain.Session {
	sess := &domain.Session{
		ID:         rec.ID,
		IsLoggedIn: rec.IsLoggedIn,
		Email:      rec.Email,
		History:    rec.History,
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
	}
	switch rec.Flow.Stage {
	case domain.StageOtpPending:
		sess.Flow = domain.OtpPending{Email: rec.Flow.Email, Code: rec.Flow.Code}
	case domain.StageForgotPassword:
		sess.Flow = domain.ForgotPassword{Email: rec.Flow.Email}
	default:
		sess.Flow = domain.StartLoginFlow()
	}
	return sess
}
