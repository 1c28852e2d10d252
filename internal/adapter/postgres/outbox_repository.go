package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
)

// OutboxRepository implements port.OutboxRepository over the
// outbox_events table written by LedgerRepository.
type OutboxRepository struct {
	pool *pgxpool.Pool
}

// NewOutboxRepository returns a new repository instance.
func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

// FetchUnpublished returns up to limit unpublished events, oldest first.
func (r *OutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]port.OutboxRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, event_type, partition_key, payload, retry_count, created_at
FROM outbox_events
WHERE published_at IS NULL
ORDER BY created_at, id
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.OutboxRecord, error) {
		var rec port.OutboxRecord
		err := row.Scan(&rec.ID, &rec.EventType, &rec.PartitionKey, &rec.Payload, &rec.RetryCount, &rec.CreatedAt)
		return rec, err
	})
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE outbox_events SET published_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("outbox event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id string, reason string, _ time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE outbox_events SET retry_count = retry_count + 1, last_error = $2 WHERE id = $1`, id, reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("outbox event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// insertOutbox appends events inside the caller's transaction.
func insertOutbox(ctx context.Context, tx pgx.Tx, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, e := range events {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		payload, err := json.Marshal(e)
		if err != nil {
			return err
		}
		batch.Queue(`INSERT INTO outbox_events (id, event_type, partition_key, payload, created_at)
VALUES ($1,$2,$3,$4,$5)`, e.ID, e.Type, e.AggregateID, payload, e.OccurredAt)
	}
	return tx.SendBatch(ctx, batch).Close()
}
