// Package events publishes non-sensitive payment outcome events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
	"github.com/akylbek/payment-system/payment-gateway/internal/telemetry"
)

const Topic = "payment.processed"

// Publisher emits payment.processed events. A nil Publisher is valid and
// drops events, so the gateway runs without a broker configured.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers),
			Topic:    Topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PaymentProcessed publishes the stored summary. The summary already
// contains only non-sensitive fields, so it is published as-is. Publish
// failures are logged, never surfaced: the payment outcome does not depend
// on the event stream.
func (p *Publisher) PaymentProcessed(ctx context.Context, summary models.PaymentSummary) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(struct {
		models.PaymentSummary
		Timestamp time.Time `json:"timestamp"`
	}{summary, time.Now().UTC()})
	if err != nil {
		telemetry.Logger.Error("Error marshaling payment event", zap.Error(err))
		return
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(summary.ID.String()),
		Value: payload,
	}); err != nil {
		telemetry.Logger.Error("Error publishing payment event",
			zap.String("payment_id", summary.ID.String()),
			zap.Error(err),
		)
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
