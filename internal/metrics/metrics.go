// Package metrics exposes Prometheus counters for the booking pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the booking use cases report to.
type Recorder interface {
	RecordIntake(outcome string)
	RecordStoreFailure()
	RecordNotification(channel string, ok bool)
}

type Collector struct {
	intake        *prometheus.CounterVec
	storeFailures prometheus.Counter
	notifications *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		intake: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "everest_booking_intake_total",
			Help: "Booking submissions by outcome.",
		}, []string{"outcome"}),
		storeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "everest_ratelimit_store_failures_total",
			Help: "Rate limit store calls that failed or timed out.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "everest_notifications_total",
			Help: "Notification deliveries by channel and result.",
		}, []string{"channel", "result"}),
	}

	reg.MustRegister(c.intake, c.storeFailures, c.notifications)
	return c
}

func (c *Collector) RecordIntake(outcome string) {
	c.intake.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordStoreFailure() {
	c.storeFailures.Inc()
}

func (c *Collector) RecordNotification(channel string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	c.notifications.WithLabelValues(channel, result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordIntake(string)             {}
func (Nop) RecordStoreFailure()             {}
func (Nop) RecordNotification(string, bool) {}
