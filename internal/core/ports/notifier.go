package ports

import (
	"context"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// Notifier accepts simulated notices for asynchronous delivery. Notify
// must not block the request that produced the notice.
type Notifier interface {
	Notify(n domain.Notice)
}

// NoticeSender performs the (simulated) delivery of one notice.
type NoticeSender interface {
	Send(ctx context.Context, n domain.Notice) error
}
