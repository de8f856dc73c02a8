package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/everest-cuisine/booking-api/internal/httperr"
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LoginLimiter throttles admin sign-in attempts per client address with a
// token bucket. State is per process.
type LoginLimiter struct {
	perMinute int

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	idleTTL time.Duration
	stopCh  chan struct{}
	once    sync.Once
}

func NewLoginLimiter(perMinute int) *LoginLimiter {
	if perMinute <= 0 {
		perMinute = 5
	}

	l := &LoginLimiter{
		perMinute: perMinute,
		limiters:  make(map[string]*clientLimiter),
		idleTTL:   10 * time.Minute,
		stopCh:    make(chan struct{}),
	}

	go l.cleanupLoop()
	return l
}

func (l *LoginLimiter) Stop() {
	l.once.Do(func() { close(l.stopCh) })
}

func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := ClientIP(c.Request)

		if !l.get(ip).Allow() {
			retryAfter := 60 / l.perMinute
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			httperr.TooManyRequests(c, "too_many_attempts", "Too many login attempts. Please wait and try again.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (l *LoginLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.limiters[ip]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(float64(l.perMinute)/60.0), l.perMinute),
		}
		l.limiters[ip] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter
}

func (l *LoginLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *LoginLimiter) cleanupLoop() {
	ticker := time.NewTicker(l.idleTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(time.Now())
		case <-l.stopCh:
			return
		}
	}
}

func (l *LoginLimiter) cleanup(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, cl := range l.limiters {
		if now.Sub(cl.lastAccess) > l.idleTTL {
			delete(l.limiters, ip)
		}
	}
}
