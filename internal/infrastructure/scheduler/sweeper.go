package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/api/metrics"
)

const sweepTimeout = 30 * time.Second

// Purger removes expired sessions from a store that has no native TTL.
type Purger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// Sweeper runs a Purger on a cron schedule.
type Sweeper struct {
	cron   *cron.Cron
	purger Purger
	log    zerolog.Logger
}

// NewSweeper parses schedule (standard five-field syntax or descriptors
// such as "@every 5m") and registers the purge job.
func NewSweeper(schedule string, purger Purger, log zerolog.Logger) (*Sweeper, error) {
	s := &Sweeper{
		cron:   cron.New(),
		purger: purger,
		log:    log,
	}
	if _, err := s.cron.AddFunc(schedule, s.Sweep); err != nil {
		return nil, fmt.Errorf("session sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the scheduler until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	s.cron.Start()
	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
	}()
}

// Sweep runs one purge pass.
func (s *Sweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("session sweep failed")
		return
	}
	if n > 0 {
		metrics.SessionsPurgedTotal.Add(float64(n))
		s.log.Debug().Int("purged", n).Msg("expired sessions removed")
	}
}
