package service

import (
	"context"
	"sync"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

type stubSessionRepo struct {
	sessions map[string]*domain.Session
	saves    int
	saveErr  error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func cloneSession(s *domain.Session) *domain.Session {
	c := *s
	c.History = append([]string(nil), s.History...)
	return &c
}

func (r *stubSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (r *stubSessionRepo) Save(_ context.Context, s *domain.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.sessions[s.ID] = cloneSession(s)
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type stubCredentialRepo struct {
	users map[string]string
}

func newStubCredentialRepo(entries map[string]string) *stubCredentialRepo {
	users := make(map[string]string, len(entries))
	for k, v := range entries {
		users[k] = v
	}
	return &stubCredentialRepo{users: users}
}

func (r *stubCredentialRepo) Lookup(_ context.Context, key string) (string, bool, error) {
	pw, ok := r.users[key]
	return pw, ok, nil
}

func (r *stubCredentialRepo) Create(_ context.Context, key, password string) error {
	if _, ok := r.users[key]; ok {
		return domain.ErrUserExists
	}
	r.users[key] = password
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []domain.Notice
}

func (n *recordingNotifier) Notify(notice domain.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) last() (domain.Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notices) == 0 {
		return domain.Notice{}, false
	}
	return n.notices[len(n.notices)-1], true
}

type stubUserRepo struct {
	users []domain.MockUser
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.MockUser, error) {
	return append([]domain.MockUser(nil), r.users...), nil
}

func (r *stubUserRepo) Create(_ context.Context, u domain.MockUser) (domain.MockUser, error) {
	if u.ID == 0 {
		u.ID = domain.NextUserID(r.users)
	}
	for _, existing := range r.users {
		if existing.ID == u.ID {
			return domain.MockUser{}, domain.ErrUserExists
		}
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *stubUserRepo) Update(_ context.Context, u domain.MockUser) (domain.MockUser, error) {
	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = u
			return u, nil
		}
	}
	return domain.MockUser{}, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubLedger struct {
	txs    []domain.MockTransaction
	months []domain.MonthlyTotal
}

func (l *stubLedger) Transactions(_ context.Context) ([]domain.MockTransaction, error) {
	return l.txs, nil
}

func (l *stubLedger) MonthlyTotals(_ context.Context) ([]domain.MonthlyTotal, error) {
	return l.months, nil
}

type stubDonationRepo struct {
	saved []*domain.Donation
	err   error
}

func (r *stubDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	if r.err != nil {
		return r.err
	}
	c := *d
	r.saved = append(r.saved, &c)
	return nil
}
