package notify

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/models"
)

type EmailConfig struct {
	Addr     string // host:port
	Host     string
	User     string
	Password string
	From     string
	// RestaurantEmail receives new-booking alerts. Empty disables them.
	RestaurantEmail string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailSender mails the guest and the restaurant over SMTP.
type EmailSender struct {
	cfg      EmailConfig
	sendMail sendMailFunc
}

func NewEmailSender(cfg EmailConfig) *EmailSender {
	return &EmailSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *EmailSender) Name() string { return "email" }

type mail struct {
	to      string
	subject string
	body    string
}

func (s *EmailSender) Send(ctx context.Context, ev Event) error {
	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	var errs []error
	for _, m := range s.compose(ev) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.sendMail(s.cfg.Addr, auth, s.cfg.From, []string{m.to}, s.render(m)); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", m.to, err))
		}
	}
	return errors.Join(errs...)
}

func (s *EmailSender) compose(ev Event) []mail {
	b := ev.Booking

	switch ev.Kind {
	case KindBookingCreated:
		out := []mail{{
			to:      b.Email,
			subject: "We received your Everest Cuisine booking request",
			body: fmt.Sprintf(
				"Hi %s,\n\nThank you for your request for a table for %d on %s at %s.\n"+
					"We will confirm your booking shortly.\n\nReference: %s\n\nEverest Cuisine",
				b.Name, b.PartySize, b.Date, b.Time, b.Reference,
			),
		}}
		if s.cfg.RestaurantEmail != "" {
			out = append(out, mail{
				to:      s.cfg.RestaurantEmail,
				subject: "New booking request " + b.Reference,
				body:    restaurantSummary(b),
			})
		}
		return out

	case KindStatusChanged:
		var line string
		switch booking.Status(b.Status) {
		case booking.StatusConfirmed:
			line = "Your booking is confirmed. We look forward to welcoming you."
		case booking.StatusCancelled:
			line = "Your booking has been cancelled. Please contact us if this is unexpected."
		default:
			return nil
		}
		return []mail{{
			to:      b.Email,
			subject: "Your Everest Cuisine booking is " + b.Status,
			body: fmt.Sprintf(
				"Hi %s,\n\n%s\n\nTable for %d on %s at %s.\nReference: %s\n\nEverest Cuisine",
				b.Name, line, b.PartySize, b.Date, b.Time, b.Reference,
			),
		}}
	}

	return nil
}

func restaurantSummary(b models.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Reference: %s\nName: %s\nEmail: %s\nPhone: %s\n", b.Reference, b.Name, b.Email, b.Phone)
	fmt.Fprintf(&sb, "Date: %s\nTime: %s\nParty size: %d\n", b.Date, b.Time, b.PartySize)
	if b.Occasion != "" {
		fmt.Fprintf(&sb, "Occasion: %s\n", b.Occasion)
	}
	if b.Notes != "" {
		fmt.Fprintf(&sb, "Notes: %s\n", b.Notes)
	}
	return sb.String()
}

func (s *EmailSender) render(m mail) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&sb, "To: %s\r\n", m.to)
	fmt.Fprintf(&sb, "Subject: %s\r\n", m.subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(strings.ReplaceAll(m.body, "\n", "\r\n"))
	return []byte(sb.String())
}
