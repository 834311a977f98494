// Package kafka carries the asynchronous transaction ingestion path: the
// producer publishes submitted transactions, the consumer reads them back
// and hands them to the transaction service for persistence.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ebanking/portal_backend/internal/core/ports/gateways"
	"github.com/ebanking/portal_backend/internal/dto"
	kafkago "github.com/segmentio/kafka-go"
)

// Producer publishes transaction messages keyed by transaction ID.
type Producer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

var _ gateways.TransactionPublisher = (*Producer)(nil)

// NewProducer creates a producer for the given brokers and topic.
func NewProducer(brokers []string, topic string, logger *slog.Logger) *Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Producer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireOne,
		},
		logger: logger,
	}
}

// PublishTransaction sends one transaction message to the topic.
func (p *Producer) PublishTransaction(ctx context.Context, msg dto.TransactionMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode transaction message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(msg.TransactionID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish transaction %s: %w", msg.TransactionID, err)
	}

	p.logger.Debug("transaction published",
		slog.String("transaction_id", msg.TransactionID),
		slog.String("topic", p.writer.Topic))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
