package booking

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/everest-cuisine/booking-api/internal/audit"
	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/models"
	"github.com/everest-cuisine/booking-api/internal/notify"
)

type fakeRepo struct {
	mu        sync.Mutex
	bookings  map[uint]*models.Booking
	nextID    uint
	createErr error

	// beforeUpdate runs ahead of the status comparison in UpdateStatus,
	// standing in for a concurrent writer.
	beforeUpdate func(stored *models.Booking)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[uint]*models.Booking{}}
}

func (r *fakeRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for id := uint(1); id <= r.nextID; id++ {
		if b, ok := r.bookings[id]; ok && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, b *models.Booking, from domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.bookings[b.ID]
	if !ok {
		return errors.New("missing booking")
	}
	if r.beforeUpdate != nil {
		r.beforeUpdate(stored)
	}
	if stored.Status != string(from) {
		return domain.ErrStatusChanged
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

type auditSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *auditSink) Write(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

type notifySender struct {
	mu     sync.Mutex
	events []notify.Event
}

func (s *notifySender) Name() string { return "test" }

func (s *notifySender) Send(_ context.Context, ev notify.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

type dispatchers struct {
	audit      *audit.Dispatcher
	notify     *notify.Dispatcher
	auditSink  *auditSink
	notifySink *notifySender
}

func newDispatchers() *dispatchers {
	as := &auditSink{}
	ns := &notifySender{}
	return &dispatchers{
		audit:      audit.NewDispatcher(as),
		notify:     notify.NewDispatcher(nil, 0, ns),
		auditSink:  as,
		notifySink: ns,
	}
}

// flush waits for both background workers to finish.
func (d *dispatchers) flush() {
	d.audit.Close()
	d.notify.Close()
}
