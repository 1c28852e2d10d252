package events

import (
	"context"
	"log/slog"
)

// LoggingPublisher logs events instead of delivering them. It stands in
// for Kafka when no brokers are configured.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error {
	p.logger.InfoContext(ctx, "event published",
		slog.String("event_type", eventType),
		slog.String("partition_key", partitionKey),
		slog.Int("payload_bytes", len(payload)),
	)
	return nil
}
