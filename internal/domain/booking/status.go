package booking

import "github.com/everest-cuisine/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// InitialStatus is the status of a freshly accepted booking.
func InitialStatus() Status {
	return StatusPending
}

// CanTransition returns a business error unless current may move to next.
func CanTransition(current, next Status) error {
	if !next.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	for _, allowed := range transitions[current] {
		if allowed == next {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}
