package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes reminder sends to a fixed set of workers using consistent
// hashing on the phone number, guaranteeing per-recipient ordering.
type Dispatcher struct {
	workers []chan ports.ReminderInput
	service ports.ReminderService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ReminderService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ReminderInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReminderInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a reminder to the worker responsible for its phone number.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(reminder ports.ReminderInput) {
	d.workers[d.shardIndex(reminder.PhoneNumber)] <- reminder
}

// shardIndex maps a phone number deterministically to a worker index.
func (d *Dispatcher) shardIndex(phone string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(phone))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReminderInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case reminder, ok := <-ch:
			if !ok {
				return
			}
			if _, err := d.service.Send(ctx, reminder); err != nil {
				d.log.Error().Err(err).
					Str("patient_id", reminder.PatientID).
					Int("worker_id", id).
					Msg("reminder delivery failed")
			}
		}
	}
}
