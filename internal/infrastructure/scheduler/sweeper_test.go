package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeExpired(context.Context) (int, error) {
	p.calls.Add(1)
	return 2, p.err
}

func TestNewSweeper_RejectsBadSchedule(t *testing.T) {
	if _, err := NewSweeper("every now and then", &countingPurger{}, zerolog.Nop()); err == nil {
		t.Fatalf("expected schedule parse error")
	}
}

func TestSweeper_Sweep(t *testing.T) {
	p := &countingPurger{}
	s, err := NewSweeper("@every 1h", p, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSweeper returned error: %v", err)
	}
	s.Sweep()
	if got := p.calls.Load(); got != 1 {
		t.Fatalf("expected 1 purge call, got %d", got)
	}

	p.err = errors.New("boom")
	s.Sweep()
	if got := p.calls.Load(); got != 2 {
		t.Fatalf("expected 2 purge calls, got %d", got)
	}
}
