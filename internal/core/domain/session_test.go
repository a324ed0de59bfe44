package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestSession_LoginLogoutIdempotent(t *testing.T) {
	s := NewSession("sid", time.Now(), time.Hour)
	if s.IsLoggedIn {
		t.Fatalf("new session must be logged out")
	}
	s.Login("a@b.com")
	s.Login("a@b.com")
	if !s.IsLoggedIn || s.Email != "a@b.com" {
		t.Fatalf("unexpected session %+v", s)
	}
	s.Flow = OtpPending{Email: "a@b.com"}
	s.Logout()
	s.Logout()
	if s.IsLoggedIn || s.Email != "" || s.LoginFlow().Stage() != StageCredentials {
		t.Fatalf("unexpected session after logout %+v", s)
	}
}

func TestSession_HistoryCapped(t *testing.T) {
	s := NewSession("sid", time.Now(), time.Hour)
	for i := 0; i < maxHistory+10; i++ {
		s.PushHistory(fmt.Sprintf("/p%d", i))
	}
	if len(s.History) != maxHistory {
		t.Fatalf("expected %d entries, got %d", maxHistory, len(s.History))
	}
	if s.History[0] != "/p10" || s.History[maxHistory-1] != fmt.Sprintf("/p%d", maxHistory+9) {
		t.Fatalf("unexpected history window %v..%v", s.History[0], s.History[maxHistory-1])
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := NewSession("sid", now, time.Minute)
	if s.Expired(now) {
		t.Fatalf("fresh session must not be expired")
	}
	if !s.Expired(now.Add(2 * time.Minute)) {
		t.Fatalf("session must expire after ttl")
	}
}
