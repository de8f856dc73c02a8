package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/httperr"
	"github.com/everest-cuisine/booking-api/internal/httpresp"
	"github.com/everest-cuisine/booking-api/internal/middleware"
	ucBooking "github.com/everest-cuisine/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	list   *ucBooking.ListBookingsByDate
	get    *ucBooking.GetBooking
	update *ucBooking.UpdateBookingStatus
}

func NewAdminBookingHandler(
	list *ucBooking.ListBookingsByDate,
	get *ucBooking.GetBooking,
	update *ucBooking.UpdateBookingStatus,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		list:   list,
		get:    get,
		update: update,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// GET /api/admin/bookings?date=YYYY-MM-DD
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// GET /api/admin/bookings/:id
// ======================================================

func (h *AdminBookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// PATCH /api/admin/bookings/:id/status
// ======================================================

func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	b, err := h.update.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		BookingID: id,
		Status:    domain.Status(req.Status),
		ActorID:   c.MustGet(middleware.ContextAdminID).(uint),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// HELPERS
// ======================================================

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return 0, false
	}
	return uint(id), true
}

func writeBusinessError(c *gin.Context, err error) {
	switch code := httperr.Code(err); code {
	case "booking_not_found":
		httperr.NotFound(c, code, "Booking not found.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Date must be YYYY-MM-DD.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Unknown booking status.")
	case "invalid_transition":
		httperr.BadRequest(c, code, "Booking cannot move to that status.")
	default:
		slog.ErrorContext(c.Request.Context(), "admin booking request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
