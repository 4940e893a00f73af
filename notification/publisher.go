package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"airjustice/models"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Publisher delivers ledger events to interested authorities
type Publisher interface {
	Publish(ctx context.Context, event *models.LedgerEvent) error
	Close() error
}

// KafkaPublisher writes ledger events as JSON to one topic, keyed by complaint id
// so every event of a complaint lands on the same partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for the given brokers and topic
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
			WriteTimeout: 5 * time.Second,
		},
	}
}

// Publish writes one event
func (p *KafkaPublisher) Publish(ctx context.Context, event *models.LedgerEvent) error {
	msg, err := EncodeEvent(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s for %s: %w", event.Type, event.ComplaintID, err)
	}
	return nil
}

// Close flushes and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// EncodeEvent builds the Kafka message for an event
func EncodeEvent(event *models.LedgerEvent) (kafka.Message, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode ledger event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.ComplaintID),
		Value: body,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}, nil
}

// LogPublisher only logs events. Used when no brokers are configured.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a log-only publisher
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With().Str("component", "notify").Logger()}
}

// Publish logs the event
func (p *LogPublisher) Publish(_ context.Context, event *models.LedgerEvent) error {
	p.logger.Info().
		Str("event_type", string(event.Type)).
		Str("complaint_id", event.ComplaintID).
		Str("status", string(event.Status)).
		Str("old_status", string(event.OldStatus)).
		Float64("aqi", event.Aqi).
		Strs("authorities", event.Authorities).
		Msg("ledger event")
	return nil
}

// Close is a no-op
func (p *LogPublisher) Close() error { return nil }
