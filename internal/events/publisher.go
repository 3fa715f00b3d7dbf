package events

import (
	"context"
	"encoding/json"
	"time"

	"aircnc/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

const (
	TypeBookingCreated = "booking.created"
	TypeBookingDeleted = "booking.deleted"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

// Publisher emits domain events best-effort: publish failures are logged
// and never surface to the request that produced them.
type Publisher interface {
	Publish(ctx context.Context, key string, eventType string, data any)
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // hash by key keeps per-booking ordering
		RequiredAcks: kafka.RequireOne,
		Compression:  compress.Snappy,
		Async:        true,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka write failed", "detail", msg)
		}),
	}

	log.Info("Kafka event publisher enabled", "topic", topic, "brokers", brokers)
	return &kafkaPublisher{
		writer: writer,
		log:    log,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, key string, eventType string, data any) {
	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to encode event", "type", eventType, "error", err)
		return
	}

	// Async writer: this enqueues and returns; delivery errors land in the
	// error logger above.
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		p.log.Error("Failed to publish event", "type", eventType, "error", err)
	}
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func NewNopPublisher() Publisher {
	return &NopPublisher{}
}

func (*NopPublisher) Publish(ctx context.Context, key string, eventType string, data any) {}

func (*NopPublisher) Close() error { return nil }
