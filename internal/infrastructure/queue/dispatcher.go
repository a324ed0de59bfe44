package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/api/metrics"
	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes notices to a fixed set of workers using consistent
// hashing on the recipient, so notices for one address are delivered in
// the order they were produced.
type Dispatcher struct {
	workers []chan domain.Notice
	sender  ports.NoticeSender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender ports.NoticeSender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Notice, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Notice, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify hands n to the worker responsible for its recipient. It never
// blocks: when that worker's buffer is full the notice is dropped.
func (d *Dispatcher) Notify(n domain.Notice) {
	idx := d.shardIndex(n.Recipient)
	select {
	case d.workers[idx] <- n:
		metrics.NoticeQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NoticesDroppedTotal.Inc()
		d.log.Warn().
			Str("kind", string(n.Kind)).
			Str("recipient", n.Recipient).
			Int("worker_id", idx).
			Msg("notice queue full, dropping notice")
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Notice) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.NoticeQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.sender.Send(ctx, n); err != nil {
				metrics.NoticesTotal.WithLabelValues(string(n.Kind), "error").Inc()
				d.log.Error().Err(err).
					Str("kind", string(n.Kind)).
					Str("recipient", n.Recipient).
					Int("worker_id", id).
					Msg("notice delivery failed")
				continue
			}
			metrics.NoticesTotal.WithLabelValues(string(n.Kind), "sent").Inc()
		}
	}
}
