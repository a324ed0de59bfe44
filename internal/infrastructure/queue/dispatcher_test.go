package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

type recordingSender struct {
	mu   sync.Mutex
	got  []domain.Notice
	done chan struct{}
	want int
	fail bool
}

func newRecordingSender(want int) *recordingSender {
	return &recordingSender{done: make(chan struct{}), want: want}
}

func (s *recordingSender) Send(_ context.Context, n domain.Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	if len(s.got) == s.want {
		close(s.done)
	}
	if s.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (s *recordingSender) wait(t *testing.T) []domain.Notice {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d notices", s.want)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notice(nil), s.got...)
}

func TestDispatcher_PreservesPerRecipientOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := newRecordingSender(3)
	d := NewDispatcher(4, sender, zerolog.Nop())
	d.Start(ctx)

	d.Notify(domain.NewOTPNotice("a@b.com"))
	d.Notify(domain.NewResetLinkNotice("a@b.com"))
	d.Notify(domain.NewOTPNotice("a@b.com"))

	got := sender.wait(t)
	want := []domain.NoticeKind{domain.NoticeOTPSent, domain.NoticeResetLinkSent, domain.NoticeOTPSent}
	for i, n := range got {
		if n.Kind != want[i] {
			t.Fatalf("notice %d: expected %s, got %s", i, want[i], n.Kind)
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, newRecordingSender(0), zerolog.Nop())
	first := d.shardIndex("anita@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("anita@example.com"); got != first {
			t.Fatalf("shard index changed: %d != %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_SenderErrorDoesNotStopWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := newRecordingSender(2)
	sender.fail = true
	d := NewDispatcher(1, sender, zerolog.Nop())
	d.Start(ctx)

	d.Notify(domain.NewOTPNotice("a@b.com"))
	d.Notify(domain.NewOTPNotice("c@d.com"))

	if got := sender.wait(t); len(got) != 2 {
		t.Fatalf("expected 2 delivery attempts, got %d", len(got))
	}
}

func TestDispatcher_NotifyNeverBlocks(t *testing.T) {
	d := NewDispatcher(1, newRecordingSender(0), zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Notify(domain.NewOTPNotice("a@b.com"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Notify blocked on a full queue")
	}
}
