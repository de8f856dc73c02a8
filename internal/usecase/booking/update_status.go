package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/everest-cuisine/booking-api/internal/audit"
	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/httperr"
	"github.com/everest-cuisine/booking-api/internal/models"
	"github.com/everest-cuisine/booking-api/internal/notify"
)

type UpdateStatusInput struct {
	BookingID uint
	Status    domain.Status
	ActorID   uint
}

// UpdateBookingStatus moves a booking through its lifecycle.
type UpdateBookingStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
	now    func() time.Time
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notify *notify.Dispatcher,
	now func() time.Time,
) *UpdateBookingStatus {
	if now == nil {
		now = time.Now
	}
	return &UpdateBookingStatus{
		repo:   repo,
		audit:  audit,
		notify: notify,
		now:    now,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	previous := b.Status
	if err := domain.CanTransition(domain.Status(previous), in.Status); err != nil {
		return nil, err
	}

	now := uc.now()
	b.Status = string(in.Status)
	switch in.Status {
	case domain.StatusConfirmed:
		b.ConfirmedAt = &now
	case domain.StatusCancelled:
		b.CancelledAt = &now
	case domain.StatusCompleted:
		b.CompletedAt = &now
	}

	if err := uc.repo.UpdateStatus(ctx, b, domain.Status(previous)); err != nil {
		if errors.Is(err, domain.ErrStatusChanged) {
			return nil, httperr.ErrBusiness("invalid_transition")
		}
		return nil, err
	}

	actor := in.ActorID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor,
		Action:   "booking_" + string(in.Status),
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"from": previous, "to": b.Status},
	})

	uc.notify.Dispatch(notify.Event{
		Kind:           notify.KindStatusChanged,
		Booking:        *b,
		PreviousStatus: previous,
	})

	return b, nil
}
