package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-system/internal/api/metrics"
	"github.com/campushq/attendance-system/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// CheckinProcessor consumes check-in submissions off the queue.
type CheckinProcessor interface {
	ProcessCheckin(ctx context.Context, input ports.CheckinInput) error
}

// Dispatcher routes check-in submissions to a fixed set of workers using
// consistent hashing on the user ID, guaranteeing per-user ordering.
type Dispatcher struct {
	workers   []chan ports.CheckinInput
	processor CheckinProcessor
	log       zerolog.Logger
	stop      chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor CheckinProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.CheckinInput, numWorkers),
		processor: processor,
		log:       log,
		stop:      make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.CheckinInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.stop)
	}()
}

// Enqueue sends a check-in to the worker responsible for its user ID.
// The call is non-blocking while the shard buffer has room; once the
// buffer is full it waits for the worker. After the dispatcher is stopped
// the submission is dropped instead of blocking the caller forever.
func (d *Dispatcher) Enqueue(input ports.CheckinInput) {
	idx := d.shardIndex(input.UserID)
	select {
	case d.workers[idx] <- input:
		metrics.CheckinQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	case <-d.stop:
		d.log.Warn().
			Str("user_id", input.UserID).
			Int64("schedule_id", input.ScheduleID).
			Msg("dispatcher stopped, check-in dropped")
	}
}

// EnqueueBatch enqueues multiple check-ins preserving per-user ordering.
func (d *Dispatcher) EnqueueBatch(inputs []ports.CheckinInput) {
	for _, in := range inputs {
		d.Enqueue(in)
	}
}

// shardIndex maps a user ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.CheckinInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			if err := d.processor.ProcessCheckin(ctx, input); err != nil {
				d.log.Error().Err(err).
					Str("user_id", input.UserID).
					Int64("schedule_id", input.ScheduleID).
					Int("worker_id", id).
					Msg("check-in processing failed")
			}
			metrics.CheckinQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
