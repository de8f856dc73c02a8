package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/httperr"
	"github.com/everest-cuisine/booking-api/internal/middleware"
	ucBooking "github.com/everest-cuisine/booking-api/internal/usecase/booking"
)

const (
	MsgInvalidBody   = domain.MsgInvalidBody
	MsgCreateFailed  = "Failed to create booking"
	maxBookingBodyKB = 16
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	intake *ucBooking.Intake
	create *ucBooking.CreateBooking
}

func NewBookingHandler(
	intake *ucBooking.Intake,
	create *ucBooking.CreateBooking,
) *BookingHandler {
	return &BookingHandler{
		intake: intake,
		create: create,
	}
}

// ======================================================
// POST /api/book-table
// ======================================================

func (h *BookingHandler) BookTable(c *gin.Context) {
	ctx := c.Request.Context()
	clientIP := middleware.ClientIP(c.Request)

	defer func() {
		if p := recover(); p != nil {
			slog.ErrorContext(ctx, "booking handler panicked",
				slog.String("client_ip", clientIP),
				slog.String("panic", fmt.Sprint(p)),
			)
			if !c.Writer.Written() {
				httperr.Reject(c, http.StatusInternalServerError, MsgCreateFailed)
			}
			c.Abort()
		}
	}()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBookingBodyKB<<10)

	var payload domain.Raw
	bodyErr := c.ShouldBindJSON(&payload)
	if bodyErr == nil && payload == nil {
		bodyErr = errors.New("body is not a JSON object")
	}

	res := h.intake.Execute(ctx, ucBooking.IntakeInput{
		ClientIP: clientIP,
		Payload:  payload,
		BodyErr:  bodyErr,
	})
	if !res.Accepted() {
		httperr.Reject(c, res.Status, res.Message)
		return
	}

	b, err := h.create.Execute(ctx, ucBooking.CreateBookingInput{
		Request:  res.Request,
		ClientIP: clientIP,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to persist booking",
			slog.String("client_ip", clientIP),
			slog.String("error", err.Error()),
		)
		httperr.Reject(c, http.StatusInternalServerError, MsgCreateFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": b,
	})
}
