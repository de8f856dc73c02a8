package booking

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/everest-cuisine/booking-api/internal/audit"
	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/models"
	"github.com/everest-cuisine/booking-api/internal/notify"
)

type CreateBookingInput struct {
	Request  *domain.Request
	ClientIP string
}

// CreateBooking stores an accepted request and fires its notifications.
type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notify *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  audit,
		notify: notify,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateBooking.Execute")
	defer span.End()

	req := in.Request

	b := &models.Booking{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
		Occasion:  req.Occasion,
		Notes:     req.Notes,
		Status:    string(domain.InitialStatus()),
		ClientIP:  in.ClientIP,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist booking")
		return nil, err
	}
	span.SetAttributes(attribute.String("booking.reference", b.Reference))

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"reference": b.Reference,
			"date":      b.Date,
			"time":      b.Time,
		},
	})

	uc.notify.Dispatch(notify.Event{
		Kind:    notify.KindBookingCreated,
		Booking: *b,
	})

	return b, nil
}
