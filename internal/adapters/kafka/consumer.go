package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/ebanking/portal_backend/internal/dto"
	"github.com/ebanking/portal_backend/internal/platform/metrics"
	kafkago "github.com/segmentio/kafka-go"
)

// Consumer reads transaction messages and persists them through the
// transaction service. Messages that cannot be decoded or whose account is
// unknown are logged and committed anyway: the topic is not a dead-letter
// store and redelivery would fail the same way.
type Consumer struct {
	reader *kafkago.Reader
	txnSvc portssvc.TransactionSvcFacade
	logger *slog.Logger
}

// NewConsumer creates a consumer in the given group.
func NewConsumer(brokers []string, topic, groupID string, txnSvc portssvc.TransactionSvcFacade, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{
		reader: kafkago.NewReader(kafkago.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		txnSvc: txnSvc,
		logger: logger,
	}
}

// Run consumes messages until the context is cancelled or the reader closes.
// Commits happen after the persistence attempt, never before.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var msg dto.TransactionMessage
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			c.logger.Error("skipping undecodable transaction message",
				slog.Int64("offset", m.Offset), slog.String("error", err.Error()))
		} else if err := c.txnSvc.IngestTransaction(ctx, msg); err != nil {
			c.logger.Error("failed to ingest transaction",
				slog.String("transaction_id", msg.TransactionID),
				slog.String("account_iban", msg.AccountIBAN),
				slog.String("error", err.Error()))
		} else {
			metrics.TransactionsIngestedTotal.Inc()
			c.logger.Info("transaction ingested",
				slog.String("transaction_id", msg.TransactionID),
				slog.Int64("offset", m.Offset))
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			c.logger.Error("failed to commit offset",
				slog.Int64("offset", m.Offset), slog.String("error", err.Error()))
		}
	}
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
