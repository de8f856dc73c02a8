package booking

import (
	"context"
	"errors"

	"github.com/everest-cuisine/booking-api/internal/models"
)

// ErrStatusChanged is returned by UpdateStatus when the stored status is no
// longer the one the change was decided on.
var ErrStatusChanged = errors.New("booking status changed concurrently")

type Repository interface {
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListByDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	// UpdateStatus persists the status and its timestamps if the stored
	// status is still from. Otherwise it returns ErrStatusChanged.
	UpdateStatus(
		ctx context.Context,
		b *models.Booking,
		from Status,
	) error
}
