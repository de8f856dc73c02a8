// Package notify delivers booking notifications (email, push) off the
// request path. Delivery failures are logged and counted, never returned to
// the booking flow.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/everest-cuisine/booking-api/internal/metrics"
	"github.com/everest-cuisine/booking-api/internal/models"
)

type Kind string

const (
	KindBookingCreated Kind = "booking.created"
	KindStatusChanged  Kind = "booking.status_changed"
)

type Event struct {
	Kind           Kind
	Booking        models.Booking
	PreviousStatus string
}

// Sender delivers an event over one channel.
type Sender interface {
	Name() string
	Send(ctx context.Context, ev Event) error
}

const DefaultSendTimeout = 10 * time.Second

type Dispatcher struct {
	senders  []Sender
	recorder metrics.Recorder
	timeout  time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDispatcher(recorder metrics.Recorder, timeout time.Duration, senders ...Sender) *Dispatcher {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}

	d := &Dispatcher{
		senders:  senders,
		recorder: recorder,
		timeout:  timeout,
		queue:    make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		for _, s := range d.senders {
			d.deliver(s, ev)
		}
	}
}

func (d *Dispatcher) deliver(s Sender, ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	err := s.Send(ctx, ev)
	d.recorder.RecordNotification(s.Name(), err == nil)
	if err != nil {
		slog.Error("notification failed",
			slog.String("channel", s.Name()),
			slog.String("kind", string(ev.Kind)),
			slog.String("reference", ev.Booking.Reference),
			slog.String("error", err.Error()),
		)
	}
}

// Dispatch queues ev without blocking. A full queue, or a dispatcher that
// is already closed, drops it.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		slog.Warn("notification dispatcher closed, dropping event",
			slog.String("kind", string(ev.Kind)),
			slog.String("reference", ev.Booking.Reference),
		)
		return
	}

	select {
	case d.queue <- ev:
	default:
		slog.Warn("notification queue full, dropping event",
			slog.String("kind", string(ev.Kind)),
			slog.String("reference", ev.Booking.Reference),
		)
	}
}

// Close stops accepting events and drains the queue.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	d.wg.Wait()
}
