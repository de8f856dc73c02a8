package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/everest-cuisine/booking-api/internal/audit"
	"github.com/everest-cuisine/booking-api/internal/config"
	dbpkg "github.com/everest-cuisine/booking-api/internal/db"
	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/logger"
	"github.com/everest-cuisine/booking-api/internal/metrics"
	"github.com/everest-cuisine/booking-api/internal/middleware"
	"github.com/everest-cuisine/booking-api/internal/notify"
	"github.com/everest-cuisine/booking-api/internal/ratelimit"
	"github.com/everest-cuisine/booking-api/internal/routes"
	"github.com/everest-cuisine/booking-api/internal/telemetry"
	"github.com/everest-cuisine/booking-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	logger.SetupDefault(os.Stdout, cfg.LogLevel)

	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		slog.Error("failed to set up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := dbpkg.NewDB(cfg)

	// --------------------------------------------------
	// Metrics
	// --------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewCollector(reg)

	// --------------------------------------------------
	// Abuse guard
	// --------------------------------------------------
	var store ratelimit.Store
	if cfg.RedisAddr != "" {
		redisClient := dbpkg.NewRedis(cfg)
		defer redisClient.Close()
		store = ratelimit.NewRedisStore(redisClient)
	} else {
		slog.Warn("REDIS_ADDR not set, rate limit counters are per process")
		store = ratelimit.NewMemoryStore()
	}

	guard := ratelimit.NewGuard(store, ratelimit.Options{
		Limit:    cfg.RateLimitMax,
		Window:   cfg.RateLimitWindow,
		Timeout:  cfg.RateLimitStoreTimeout,
		FailOpen: cfg.RateLimitFailOpen,
	})

	// --------------------------------------------------
	// Operating hours
	// --------------------------------------------------
	closed, err := domain.ParseWeekdays(cfg.ClosedWeekdays)
	if err != nil {
		slog.Error("invalid BOOKING_CLOSED_WEEKDAYS", slog.String("error", err.Error()))
		os.Exit(1)
	}
	hours := domain.NewHours(closed...)

	// --------------------------------------------------
	// Background dispatchers
	// --------------------------------------------------
	auditDispatcher := audit.NewDispatcher(audit.New(db))

	var senders []notify.Sender
	if cfg.SMTPHost != "" {
		senders = append(senders, notify.NewEmailSender(notify.EmailConfig{
			Addr:            cfg.SMTPAddr(),
			Host:            cfg.SMTPHost,
			User:            cfg.SMTPUser,
			Password:        cfg.SMTPPassword,
			From:            cfg.NotifyFrom,
			RestaurantEmail: cfg.NotifyRestaurantEmail,
		}))
	}
	if cfg.KafkaBroker != "" {
		kw := notify.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaPushTopic)
		defer kw.Close()
		senders = append(senders, notify.NewPushSender(kw))
	}
	notifyDispatcher := notify.NewDispatcher(recorder, notify.DefaultSendTimeout, senders...)

	loginLimiter := middleware.NewLoginLimiter(cfg.LoginRatePerMinute)

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		DB:           db,
		Config:       cfg,
		Guard:        guard,
		Hours:        hours,
		Clock:        timezone.Clock(cfg.Timezone),
		Recorder:     recorder,
		Metrics:      metrics.Handler(reg),
		Audit:        auditDispatcher,
		Notify:       notifyDispatcher,
		LoginLimiter: loginLimiter,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// done closes once in-flight requests have finished.
	done := make(chan struct{})
	go func() {
		defer close(done)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		slog.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown incomplete", slog.String("error", err.Error()))
		}
	}()

	slog.Info("server running", slog.String("addr", cfg.Addr()))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	<-done

	loginLimiter.Stop()
	notifyDispatcher.Close()
	auditDispatcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		slog.Warn("failed to flush traces", slog.String("error", err.Error()))
	}
}
