package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// LogSender "delivers" notices by writing them to the log. Nothing leaves
// the process; OTP and reset-link messages are simulated.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, n domain.Notice) error {
	s.log.Info().
		Str("kind", string(n.Kind)).
		Str("recipient", n.Recipient).
		Msg(n.Message)
	return nil
}
