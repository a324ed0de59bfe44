package domain

import "time"

const maxHistory = 50

// Session is the server-side AuthSession. It owns the single cross-cutting
// flag (IsLoggedIn) plus the state of the login dialog.
type Session struct {
	ID         string
	IsLoggedIn bool
	Email      string
	Flow       LoginFlowState
	History    []string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// NewSession returns a logged-out session with a fresh login flow.
func NewSession(id string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		Flow:      StartLoginFlow(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Login marks the session authenticated. Calling it twice is the same as once.
func (s *Session) Login(email string) {
	s.IsLoggedIn = true
	if email != "" {
		s.Email = email
	}
}

// Logout clears authentication and restarts the login flow.
func (s *Session) Logout() {
	s.IsLoggedIn = false
	s.Email = ""
	s.Flow = StartLoginFlow()
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// PushHistory appends a visited path, keeping at most maxHistory entries.
func (s *Session) PushHistory(path string) {
	s.History = append(s.History, path)
	if over := len(s.History) - maxHistory; over > 0 {
		s.History = append([]string(nil), s.History[over:]...)
	}
}

// LoginFlow returns the current flow state, defaulting to Credentials.
func (s *Session) LoginFlow() LoginFlowState {
	if s.Flow == nil {
		return StartLoginFlow()
	}
	return s.Flow
}
