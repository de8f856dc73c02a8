package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the push sender uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewKafkaWriter builds the producer for the push topic. The push provider
// bridge consumes the topic and fans out to staff devices.
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
}

type pushPayload struct {
	Type           string `json:"type"`
	Reference      string `json:"reference"`
	Name           string `json:"name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PartySize      int    `json:"partySize"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previousStatus,omitempty"`
}

// PushSender publishes staff push notifications. Contact details are not
// included.
type PushSender struct {
	w MessageWriter
}

func NewPushSender(w MessageWriter) *PushSender {
	return &PushSender{w: w}
}

func (p *PushSender) Name() string { return "push" }

func (p *PushSender) Send(ctx context.Context, ev Event) error {
	b := ev.Booking

	data, err := json.Marshal(pushPayload{
		Type:           string(ev.Kind),
		Reference:      b.Reference,
		Name:           b.Name,
		Date:           b.Date,
		Time:           b.Time,
		PartySize:      b.PartySize,
		Status:         b.Status,
		PreviousStatus: ev.PreviousStatus,
	})
	if err != nil {
		return err
	}

	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(b.Reference),
		Value: data,
		Time:  time.Now(),
	})
}
