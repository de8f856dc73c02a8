package ratelimit

import "fmt"

const (
	MsgTooManyFromIP   = "Too many booking attempts. Please try again later."
	MsgTooManyForEmail = "Too many booking attempts with this email. Please try again tomorrow."
)

// RateLimitError is returned when a counter passes the limit.
type RateLimitError struct {
	Dimension Dimension
	Count     int64
	Limit     int64
}

func (e *RateLimitError) Error() string {
	return e.Message()
}

// Message is the text shown to the client.
func (e *RateLimitError) Message() string {
	if e.Dimension == DimensionEmail {
		return MsgTooManyForEmail
	}
	return MsgTooManyFromIP
}

// StoreUnavailableError wraps a failed or timed out store call.
type StoreUnavailableError struct {
	Key string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("rate limit store unavailable for %s: %v", e.Key, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
