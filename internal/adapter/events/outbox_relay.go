package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"collabhub/internal/core/port"
)

// OutboxRelay polls the outbox and hands unpublished events to a
// publisher. Delivery is at least once: a record is marked published only
// after Publish returns, and failed records are retried on the next tick.
type OutboxRelay struct {
	logger    *slog.Logger
	outbox    port.OutboxRepository
	publisher port.EventPublisher
	interval  time.Duration
	batchSize int
	now       func() time.Time
}

func NewOutboxRelay(logger *slog.Logger, outbox port.OutboxRepository, publisher port.EventPublisher, interval time.Duration, batchSize int) *OutboxRelay {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &OutboxRelay{
		logger:    logger,
		outbox:    outbox,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run relays until ctx is cancelled.
func (r *OutboxRelay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		if _, err := r.RelayOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			r.logger.ErrorContext(ctx, "outbox relay iteration failed", slog.Any("error", err))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RelayOnce publishes one batch and returns how many records were
// delivered.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	records, err := r.outbox.FetchUnpublished(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}
	delivered := 0
	for _, rec := range records {
		if err := r.publisher.Publish(ctx, rec.EventType, rec.Payload, rec.PartitionKey); err != nil {
			r.logger.WarnContext(ctx, "event publish failed",
				slog.String("event_id", rec.ID),
				slog.String("event_type", rec.EventType),
				slog.Int("retry_count", rec.RetryCount),
				slog.Any("error", err),
			)
			if err := r.outbox.MarkFailed(ctx, rec.ID, err.Error(), r.now()); err != nil {
				return delivered, err
			}
			continue
		}
		if err := r.outbox.MarkPublished(ctx, rec.ID, r.now()); err != nil {
			return delivered, err
		}
		delivered++
	}
	return delivered, nil
}
