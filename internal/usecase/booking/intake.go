package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/metrics"
	"github.com/everest-cuisine/booking-api/internal/ratelimit"
)

// MsgUnexpected is shown for every failure that is not the client's fault.
const MsgUnexpected = "Failed to process booking. Please try again later."

var tracer = otel.GetTracerProvider().Tracer("github.com/everest-cuisine/booking-api/internal/usecase/booking")

// Stage names the step of the intake that produced a Result.
type Stage string

const (
	StageRateCheck   Stage = "rate_check"
	StageSchemaCheck Stage = "schema_check"
	StageHoursCheck  Stage = "hours_check"
	StageAccept      Stage = "accept"
)

// ======================================================
// INPUT / RESULT
// ======================================================

// BodyErr is set when the request body could not be read as a JSON
// object. Such requests still count against the client address.
type IntakeInput struct {
	ClientIP string
	Payload  domain.Raw
	BodyErr  error
}

// Result is either an accepted request (Stage == StageAccept) or a
// rejection carrying the HTTP status and the message for the client.
type Result struct {
	Stage   Stage
	Request *domain.Request
	Status  int
	Message string
	Err     error
}

func (r Result) Accepted() bool {
	return r.Stage == StageAccept
}

// ======================================================
// USE CASE
// ======================================================

// Intake runs rate check, schema check and hours check in that order and
// stops at the first failure. It never persists anything.
type Intake struct {
	guard    *ratelimit.Guard
	hours    *domain.Hours
	now      func() time.Time
	recorder metrics.Recorder
}

func NewIntake(
	guard *ratelimit.Guard,
	hours *domain.Hours,
	now func() time.Time,
	recorder metrics.Recorder,
) *Intake {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if now == nil {
		now = time.Now
	}
	return &Intake{
		guard:    guard,
		hours:    hours,
		now:      now,
		recorder: recorder,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Intake) Execute(ctx context.Context, in IntakeInput) (res Result) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Intake.Execute")
	defer span.End()

	stage := StageRateCheck

	defer func() {
		if p := recover(); p != nil {
			res = uc.reject(ctx, stage, in, fmt.Errorf("panic: %v", p))
		}
		span.SetAttributes(
			attribute.String("booking.stage", string(res.Stage)),
			attribute.Int("http.status_code", res.Status),
		)
		if res.Err != nil {
			span.RecordError(res.Err)
		}
		if res.Status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, res.Message)
		}
	}()

	// --------------------------------------------------
	// 0️⃣ Unreadable body: count the address, then reject
	// --------------------------------------------------
	if in.BodyErr != nil {
		if err := uc.guard.CheckIP(ctx, in.ClientIP); err != nil {
			return uc.reject(ctx, stage, in, err)
		}
		stage = StageSchemaCheck
		return uc.reject(ctx, stage, in, &domain.ValidationError{Field: "body", Message: domain.MsgInvalidBody})
	}

	// --------------------------------------------------
	// 1️⃣ Rate limit (IP, then email)
	// --------------------------------------------------
	email, _ := in.Payload["email"].(string)
	if err := uc.guard.Check(ctx, in.ClientIP, email); err != nil {
		return uc.reject(ctx, stage, in, err)
	}

	// --------------------------------------------------
	// 2️⃣ Schema
	// --------------------------------------------------
	stage = StageSchemaCheck
	req, err := domain.Validate(in.Payload, uc.now())
	if err != nil {
		return uc.reject(ctx, stage, in, err)
	}

	// --------------------------------------------------
	// 3️⃣ Operating hours
	// --------------------------------------------------
	stage = StageHoursCheck
	if err := uc.hours.Check(req); err != nil {
		return uc.reject(ctx, stage, in, err)
	}

	uc.recorder.RecordIntake("accepted")

	return Result{
		Stage:   StageAccept,
		Request: req,
		Status:  http.StatusOK,
	}
}

func (uc *Intake) reject(ctx context.Context, stage Stage, in IntakeInput, err error) Result {
	res := Result{Stage: stage, Err: err}

	var (
		rl *ratelimit.RateLimitError
		ve *domain.ValidationError
		su *ratelimit.StoreUnavailableError
	)

	switch {
	case errors.As(err, &rl):
		res.Status = http.StatusTooManyRequests
		res.Message = rl.Message()
		uc.recorder.RecordIntake("rate_limited")
		slog.WarnContext(ctx, "booking rate limited",
			slog.String("client_ip", in.ClientIP),
			slog.String("dimension", string(rl.Dimension)),
			slog.Int64("count", rl.Count),
		)

	case errors.As(err, &ve):
		res.Status = http.StatusBadRequest
		res.Message = ve.Message
		outcome := "invalid"
		if stage == StageHoursCheck {
			outcome = "outside_hours"
		}
		uc.recorder.RecordIntake(outcome)
		slog.InfoContext(ctx, "booking rejected",
			slog.String("stage", string(stage)),
			slog.String("field", ve.Field),
			slog.String("reason", ve.Message),
			slog.String("client_ip", in.ClientIP),
		)

	default:
		if errors.As(err, &su) {
			uc.recorder.RecordStoreFailure()
		}
		res.Status = http.StatusInternalServerError
		res.Message = MsgUnexpected
		uc.recorder.RecordIntake("error")
		slog.ErrorContext(ctx, "booking intake failed",
			slog.String("stage", string(stage)),
			slog.String("client_ip", in.ClientIP),
			slog.String("error", err.Error()),
		)
	}

	return res
}
