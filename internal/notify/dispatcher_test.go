package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/everest-cuisine/booking-api/internal/models"
)

type recordingSender struct {
	name string
	err  error

	mu     sync.Mutex
	events []Event
}

func (s *recordingSender) Name() string { return s.name }

func (s *recordingSender) Send(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

type countingRecorder struct {
	mu      sync.Mutex
	results map[string][]bool
}

func (r *countingRecorder) RecordIntake(string) {}
func (r *countingRecorder) RecordStoreFailure() {}
func (r *countingRecorder) RecordNotification(channel string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.results == nil {
		r.results = map[string][]bool{}
	}
	r.results[channel] = append(r.results[channel], ok)
}

func TestDispatcher_FansOutToAllSenders(t *testing.T) {
	email := &recordingSender{name: "email"}
	push := &recordingSender{name: "push"}
	d := NewDispatcher(nil, 0, email, push)

	d.Dispatch(Event{Kind: KindBookingCreated, Booking: models.Booking{Reference: "r1"}})
	d.Close()

	if len(email.events) != 1 || len(push.events) != 1 {
		t.Fatalf("email=%d push=%d, want 1 each", len(email.events), len(push.events))
	}
	if push.events[0].Booking.Reference != "r1" {
		t.Errorf("reference = %q", push.events[0].Booking.Reference)
	}
}

func TestDispatcher_FailingSenderDoesNotBlockOthers(t *testing.T) {
	broken := &recordingSender{name: "email", err: errors.New("smtp down")}
	push := &recordingSender{name: "push"}
	rec := &countingRecorder{}
	d := NewDispatcher(rec, 0, broken, push)

	d.Dispatch(Event{Kind: KindBookingCreated})
	d.Dispatch(Event{Kind: KindStatusChanged})
	d.Close()

	if len(push.events) != 2 {
		t.Errorf("push events = %d, want 2", len(push.events))
	}
	if got := rec.results["email"]; len(got) != 2 || got[0] || got[1] {
		t.Errorf("email results = %v, want two failures", got)
	}
	if got := rec.results["push"]; len(got) != 2 || !got[0] {
		t.Errorf("push results = %v, want two successes", got)
	}
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	s := &recordingSender{name: "email"}
	d := NewDispatcher(nil, 0, s)
	d.Close()

	d.Dispatch(Event{Kind: KindBookingCreated, Booking: models.Booking{Reference: "late"}})

	if len(s.events) != 0 {
		t.Errorf("events = %d, want 0", len(s.events))
	}
}

func TestDispatcher_ConcurrentDispatchAndClose(t *testing.T) {
	s := &recordingSender{name: "push"}
	d := NewDispatcher(nil, 0, s)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispatch(Event{Kind: KindBookingCreated})
		}()
	}
	d.Close()
	wg.Wait()
}
