package audit

import (
	"log/slog"
	"sync"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink persists a single event.
type Sink interface {
	Write(ev Event) error
}

// Dispatcher hands events to a background worker. A full queue drops the
// event; auditing never fails a request.
type Dispatcher struct {
	sink Sink

	mu     sync.RWMutex
	closed bool
	queue  chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		if err := d.sink.Write(ev); err != nil {
			slog.Error("audit write failed",
				slog.String("action", ev.Action),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		slog.Warn("audit dispatcher closed, dropping event", slog.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		slog.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for queued ones to be written.
// Events dispatched afterwards are dropped.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	d.wg.Wait()
}
