package ratelimit

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultLimit     = 3
	DefaultWindow    = 24 * time.Hour
	DefaultTimeout   = 2 * time.Second
	DefaultKeyPrefix = "booking:ratelimit:"
)

// Dimension is the identity a counter is kept for.
type Dimension string

const (
	DimensionIP    Dimension = "ip"
	DimensionEmail Dimension = "email"
)

type Options struct {
	// Limit is the highest count that is still allowed.
	Limit int64

	Window time.Duration

	// Timeout bounds each store call. Expiry counts as a store failure.
	Timeout time.Duration

	KeyPrefix string

	// FailOpen lets bookings through when the store cannot be reached.
	// The default (false) rejects them.
	FailOpen bool
}

func DefaultOptions() Options {
	return Options{
		Limit:     DefaultLimit,
		Window:    DefaultWindow,
		Timeout:   DefaultTimeout,
		KeyPrefix: DefaultKeyPrefix,
	}
}

// Guard bounds booking attempts per client address and per email.
type Guard struct {
	store Store
	opts  Options
}

func NewGuard(store Store, opts Options) *Guard {
	def := DefaultOptions()
	if opts.Limit <= 0 {
		opts.Limit = def.Limit
	}
	if opts.Window <= 0 {
		opts.Window = def.Window
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = def.KeyPrefix
	}
	return &Guard{store: store, opts: opts}
}

// Check counts one attempt for clientIP and then one for email. The email
// counter is not touched when the address is already over the limit.
// Returns *RateLimitError or *StoreUnavailableError.
func (g *Guard) Check(ctx context.Context, clientIP, email string) error {
	if err := g.hit(ctx, DimensionIP, clientIP); err != nil {
		return err
	}
	return g.hit(ctx, DimensionEmail, strings.ToLower(email))
}

// CheckIP counts one attempt for clientIP only. It is used for requests
// that carry no usable email.
func (g *Guard) CheckIP(ctx context.Context, clientIP string) error {
	return g.hit(ctx, DimensionIP, clientIP)
}

func (g *Guard) hit(ctx context.Context, dim Dimension, id string) error {
	key := g.Key(dim, id)

	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	count, err := g.store.IncrementAndGetCount(ctx, key, g.opts.Window)
	if err != nil {
		if g.opts.FailOpen {
			slog.Warn("rate limit store unavailable, allowing request",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			return nil
		}
		return &StoreUnavailableError{Key: key, Err: err}
	}

	if count > g.opts.Limit {
		return &RateLimitError{Dimension: dim, Count: count, Limit: g.opts.Limit}
	}
	return nil
}

// Key is the store key for an identity.
func (g *Guard) Key(dim Dimension, id string) string {
	return g.opts.KeyPrefix + string(dim) + ":" + id
}
