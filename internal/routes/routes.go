package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/everest-cuisine/booking-api/internal/audit"
	"github.com/everest-cuisine/booking-api/internal/config"
	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/handlers"
	infraRepo "github.com/everest-cuisine/booking-api/internal/infra/repository"
	"github.com/everest-cuisine/booking-api/internal/metrics"
	"github.com/everest-cuisine/booking-api/internal/middleware"
	"github.com/everest-cuisine/booking-api/internal/notify"
	"github.com/everest-cuisine/booking-api/internal/ratelimit"
	ucBooking "github.com/everest-cuisine/booking-api/internal/usecase/booking"
)

// Deps are the long-lived collaborators owned by main.
type Deps struct {
	DB           *gorm.DB
	Config       *config.Config
	Guard        *ratelimit.Guard
	Hours        *domain.Hours
	Clock        func() time.Time
	Recorder     metrics.Recorder
	Metrics      http.Handler
	Audit        *audit.Dispatcher
	Notify       *notify.Dispatcher
	LoginLimiter *middleware.LoginLimiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	adminRepo := infraRepo.NewAdminGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	intakeUC := ucBooking.NewIntake(d.Guard, d.Hours, d.Clock, d.Recorder)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, d.Audit, d.Notify)
	listBookingsUC := ucBooking.NewListBookingsByDate(bookingRepo)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, d.Audit, d.Notify, d.Clock)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(intakeUC, createBookingUC)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminRepo, d.Config)
	adminBookingHandler := handlers.NewAdminBookingHandler(listBookingsUC, getBookingUC, updateStatusUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// 🩺 OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PUBLIC
		// ------------------------------
		api.POST("/book-table", bookingHandler.BookTable)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		login := []gin.HandlerFunc{adminAuthHandler.Login}
		if d.LoginLimiter != nil {
			login = append([]gin.HandlerFunc{d.LoginLimiter.Middleware()}, login...)
		}
		api.POST("/admin/login", login...)

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(d.Config))
		{
			admin.GET("/bookings", adminBookingHandler.List)
			admin.GET("/bookings/:id", adminBookingHandler.Get)
			admin.PATCH("/bookings/:id/status", adminBookingHandler.UpdateStatus)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
