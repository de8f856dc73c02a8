package handlers

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/everest-cuisine/booking-api/internal/audit"
	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/models"
)

type memRepo struct {
	mu          sync.Mutex
	bookings    []models.Booking
	createErr   error
	createPanic bool
}

func (r *memRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createPanic {
		panic("driver: bad connection state")
	}
	if r.createErr != nil {
		return r.createErr
	}
	b.ID = uint(len(r.bookings) + 1)
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == 0 || int(id) > len(r.bookings) {
		return nil, gorm.ErrRecordNotFound
	}
	b := r.bookings[id-1]
	return &b, nil
}

func (r *memRepo) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, b *models.Booking, from domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == 0 || int(b.ID) > len(r.bookings) {
		return errors.New("missing booking")
	}
	if r.bookings[b.ID-1].Status != string(from) {
		return domain.ErrStatusChanged
	}
	r.bookings[b.ID-1] = *b
	return nil
}

type memAdmins map[string]*models.AdminUser

func (m memAdmins) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	a, ok := m[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

type nopSink struct{}

func (nopSink) Write(audit.Event) error { return nil }
