package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
)

const uniqueViolation = "23505"

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Mutations run in read-committed transactions that lock the
// aggregate row with SELECT ... FOR UPDATE and append raised events to
// outbox_events before commit.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}

// UpsertCampaign inserts or replaces a catalog entry.
func (r *LedgerRepository) UpsertCampaign(ctx context.Context, c domain.Campaign) error {
	specs, err := json.Marshal(c.Deliverables)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, brand_id, title, budget_min, budget_max, currency, compensation, deliverables,
     application_deadline, content_deadline, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
ON CONFLICT (id) DO UPDATE SET
    brand_id = EXCLUDED.brand_id,
    title = EXCLUDED.title,
    budget_min = EXCLUDED.budget_min,
    budget_max = EXCLUDED.budget_max,
    currency = EXCLUDED.currency,
    compensation = EXCLUDED.compensation,
    deliverables = EXCLUDED.deliverables,
    application_deadline = EXCLUDED.application_deadline,
    content_deadline = EXCLUDED.content_deadline,
    status = EXCLUDED.status,
    updated_at = EXCLUDED.updated_at`,
		c.ID, c.BrandID, c.Title, c.BudgetMin.String(), c.BudgetMax.String(), c.Currency, c.Compensation, specs,
		nullTime(c.ApplicationDeadline), nullTime(c.ContentDeadline), c.Status, c.CreatedAt, now)
	return err
}

// GetCampaign returns a campaign by id.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var (
		c                  domain.Campaign
		lo, hi             string
		specs              []byte
		appDue, contentDue *time.Time
	)
	err := r.pool.QueryRow(ctx, `SELECT id, brand_id, title, budget_min::text, budget_max::text, currency, compensation,
       deliverables, application_deadline, content_deadline, status, created_at, updated_at
FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.BrandID, &c.Title, &lo, &hi, &c.Currency, &c.Compensation, &specs,
			&appDue, &contentDue, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.BudgetMin, err = decimal.NewFromString(lo); err != nil {
		return nil, err
	}
	if c.BudgetMax, err = decimal.NewFromString(hi); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(specs, &c.Deliverables); err != nil {
		return nil, fmt.Errorf("campaign %s deliverables: %w", id, err)
	}
	c.ApplicationDeadline = valueTime(appDue)
	c.ContentDeadline = valueTime(contentDue)
	return &c, nil
}

// CreateApplication inserts the application and its submission event.
func (r *LedgerRepository) CreateApplication(ctx context.Context, app *domain.Application) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO applications
    (id, campaign_id, creator_id, amount, message, decision, submitted_at, decided_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			app.ID, app.CampaignID, app.CreatorID, app.Terms.Amount.String(), app.Terms.Message,
			app.Decision, app.SubmittedAt, app.DecidedAt)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateApplication
		}
		if err != nil {
			return err
		}
		return insertOutbox(ctx, tx, app.PullEvents())
	})
}

const applicationColumns = `id, campaign_id, creator_id, amount::text, message, decision, submitted_at, decided_at`

func scanApplication(row pgx.Row) (domain.Application, error) {
	var (
		a      domain.Application
		amount string
	)
	if err := row.Scan(&a.ID, &a.CampaignID, &a.CreatorID, &amount, &a.Terms.Message, &a.Decision, &a.SubmittedAt, &a.DecidedAt); err != nil {
		return a, err
	}
	var err error
	a.Terms.Amount, err = decimal.NewFromString(amount)
	return a, err
}

// GetApplication returns an application by id.
func (r *LedgerRepository) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	a, err := scanApplication(r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *LedgerRepository) ListApplicationsByCampaign(ctx context.Context, campaignID string) ([]domain.Application, error) {
	return r.listApplications(ctx, `campaign_id = $1`, campaignID)
}

func (r *LedgerRepository) ListApplicationsByCreator(ctx context.Context, creatorID string) ([]domain.Application, error) {
	return r.listApplications(ctx, `creator_id = $1`, creatorID)
}

func (r *LedgerRepository) listApplications(ctx context.Context, where string, arg string) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+applicationColumns+` FROM applications WHERE `+where+` ORDER BY submitted_at, id`, arg)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
}

// DecideApplication locks the application row, runs decide and stores the
// outcome together with a newly created collaboration.
func (r *LedgerRepository) DecideApplication(ctx context.Context, id string, decide port.ApplicationDecision) (*domain.Collaboration, error) {
	var out *domain.Collaboration
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		app, err := scanApplication(tx.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing *domain.Collaboration
		var collabID string
		err = tx.QueryRow(ctx, `SELECT id FROM collaborations WHERE application_id = $1`, id).Scan(&collabID)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
		case err != nil:
			return err
		default:
			if existing, err = loadCollaboration(ctx, tx, collabID, false); err != nil {
				return err
			}
		}

		created, err := decide(&app, existing)
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, `UPDATE applications SET decision = $2, decided_at = $3 WHERE id = $1`,
			app.ID, app.Decision, app.DecidedAt); err != nil {
			return err
		}
		if err = insertOutbox(ctx, tx, app.PullEvents()); err != nil {
			return err
		}
		out = created
		if existing != nil || created == nil {
			return nil
		}
		if err = insertCollaboration(ctx, tx, created); err != nil {
			return err
		}
		return insertOutbox(ctx, tx, created.PullEvents())
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetCollaboration returns a collaboration with its deliverables and
// escrow entry.
func (r *LedgerRepository) GetCollaboration(ctx context.Context, id string) (*domain.Collaboration, error) {
	c, err := loadCollaboration(ctx, r.pool, id, false)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

func (r *LedgerRepository) ListCollaborationsByCreator(ctx context.Context, creatorID string) ([]domain.Collaboration, error) {
	return r.listCollaborations(ctx, `creator_id = $1`, creatorID)
}

func (r *LedgerRepository) ListCollaborationsByCampaign(ctx context.Context, campaignID string) ([]domain.Collaboration, error) {
	return r.listCollaborations(ctx, `campaign_id = $1`, campaignID)
}

func (r *LedgerRepository) listCollaborations(ctx context.Context, where string, arg string) ([]domain.Collaboration, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+collaborationColumns+` FROM collaborations WHERE `+where+` ORDER BY created_at, id`, arg)
	if err != nil {
		return nil, err
	}
	collabs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Collaboration, error) {
		return scanCollaboration(row)
	})
	if err != nil {
		return nil, err
	}
	if len(collabs) == 0 {
		return collabs, nil
	}

	ids := make([]string, len(collabs))
	index := make(map[string]int, len(collabs))
	for i, c := range collabs {
		ids[i] = c.ID
		index[c.ID] = i
	}
	deliverables, err := loadDeliverables(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for _, d := range deliverables {
		i := index[d.CollaborationID]
		collabs[i].Deliverables = append(collabs[i].Deliverables, d)
	}
	entries, err := loadEscrow(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		collabs[index[e.CollaborationID]].Escrow = &e
	}
	return collabs, nil
}

// MutateCollaboration locks the collaboration row, applies mutate to a
// copy and writes the copy back with its events. The version column
// guards against writers that bypass the row lock.
func (r *LedgerRepository) MutateCollaboration(ctx context.Context, id string, mutate port.CollaborationMutation) (*domain.Collaboration, error) {
	var out *domain.Collaboration
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		current, err := loadCollaboration(ctx, tx, id, true)
		if err != nil {
			return err
		}
		work := current.Clone()
		if err = mutate(&work); err != nil {
			return err
		}
		work.Version = current.Version + 1
		if err = updateCollaboration(ctx, tx, &work, current.Version); err != nil {
			return err
		}
		if err = insertOutbox(ctx, tx, work.PullEvents()); err != nil {
			return err
		}
		out = &work
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

const collaborationColumns = `id, application_id, campaign_id, brand_id, creator_id, amount::text, currency,
       compensation, state, requirements, transitions, cancel_reason, version, created_at, updated_at`

func scanCollaboration(row pgx.Row) (domain.Collaboration, error) {
	var (
		c                         domain.Collaboration
		amount                    string
		requirements, transitions []byte
	)
	err := row.Scan(&c.ID, &c.ApplicationID, &c.CampaignID, &c.BrandID, &c.CreatorID, &amount, &c.Currency,
		&c.Compensation, &c.State, &requirements, &transitions, &c.CancelReason, &c.Version, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	if c.Amount, err = decimal.NewFromString(amount); err != nil {
		return c, err
	}
	if err = json.Unmarshal(requirements, &c.Requirements); err != nil {
		return c, fmt.Errorf("collaboration %s requirements: %w", c.ID, err)
	}
	if err = json.Unmarshal(transitions, &c.Transitions); err != nil {
		return c, fmt.Errorf("collaboration %s transitions: %w", c.ID, err)
	}
	return c, nil
}

func loadCollaboration(ctx context.Context, q querier, id string, lock bool) (*domain.Collaboration, error) {
	query := `SELECT ` + collaborationColumns + ` FROM collaborations WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	c, err := scanCollaboration(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("collaboration %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if c.Deliverables, err = loadDeliverables(ctx, q, []string{id}); err != nil {
		return nil, err
	}
	entries, err := loadEscrow(ctx, q, []string{id})
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		c.Escrow = &entries[0]
	}
	return &c, nil
}

func loadDeliverables(ctx context.Context, q querier, collabIDs []string) ([]domain.Deliverable, error) {
	rows, err := q.Query(ctx, `SELECT id, collaboration_id, spec_index, type, status, content_ref, due_at,
       submitted_at, reviewed_at, reviewer_note, revisions
FROM deliverables WHERE collaboration_id = ANY($1) ORDER BY collaboration_id, spec_index`, collabIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Deliverable, error) {
		var d domain.Deliverable
		err := row.Scan(&d.ID, &d.CollaborationID, &d.SpecIndex, &d.Type, &d.Status, &d.ContentRef, &d.DueAt,
			&d.SubmittedAt, &d.ReviewedAt, &d.ReviewerNote, &d.Revisions)
		return d, err
	})
}

func loadEscrow(ctx context.Context, q querier, collabIDs []string) ([]domain.EscrowEntry, error) {
	rows, err := q.Query(ctx, `SELECT id, collaboration_id, amount::text, currency, state, release_key, dispute_reason,
       transitions, created_at, updated_at, released_at
FROM escrow_entries WHERE collaboration_id = ANY($1)`, collabIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EscrowEntry, error) {
		var (
			e           domain.EscrowEntry
			amount      string
			transitions []byte
		)
		err := row.Scan(&e.ID, &e.CollaborationID, &amount, &e.Currency, &e.State, &e.ReleaseKey, &e.DisputeReason,
			&transitions, &e.CreatedAt, &e.UpdatedAt, &e.ReleasedAt)
		if err != nil {
			return e, err
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return e, err
		}
		if err = json.Unmarshal(transitions, &e.Transitions); err != nil {
			return e, fmt.Errorf("escrow %s transitions: %w", e.ID, err)
		}
		return e, nil
	})
}

func insertCollaboration(ctx context.Context, tx pgx.Tx, c *domain.Collaboration) error {
	requirements, err := json.Marshal(c.Requirements)
	if err != nil {
		return err
	}
	transitions, err := json.Marshal(c.Transitions)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO collaborations
    (id, application_id, campaign_id, brand_id, creator_id, amount, currency, compensation, state,
     requirements, transitions, cancel_reason, version, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		c.ID, c.ApplicationID, c.CampaignID, c.BrandID, c.CreatorID, c.Amount.String(), c.Currency, c.Compensation,
		c.State, requirements, transitions, c.CancelReason, c.Version, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, d := range c.Deliverables {
		batch.Queue(`INSERT INTO deliverables
    (id, collaboration_id, spec_index, type, status, content_ref, due_at, submitted_at, reviewed_at, reviewer_note, revisions)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			d.ID, d.CollaborationID, d.SpecIndex, d.Type, d.Status, d.ContentRef, d.DueAt, d.SubmittedAt,
			d.ReviewedAt, d.ReviewerNote, d.Revisions)
	}
	if c.Escrow != nil {
		e := c.Escrow
		escrowTransitions, err := json.Marshal(e.Transitions)
		if err != nil {
			return err
		}
		batch.Queue(`INSERT INTO escrow_entries
    (id, collaboration_id, amount, currency, state, release_key, dispute_reason, transitions, created_at, updated_at, released_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			e.ID, e.CollaborationID, e.Amount.String(), e.Currency, e.State, e.ReleaseKey, e.DisputeReason,
			escrowTransitions, e.CreatedAt, e.UpdatedAt, e.ReleasedAt)
	}
	return tx.SendBatch(ctx, batch).Close()
}

func updateCollaboration(ctx context.Context, tx pgx.Tx, c *domain.Collaboration, prevVersion int64) error {
	transitions, err := json.Marshal(c.Transitions)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `UPDATE collaborations
SET state = $2, transitions = $3, cancel_reason = $4, version = $5, updated_at = $6
WHERE id = $1 AND version = $7`,
		c.ID, c.State, transitions, c.CancelReason, c.Version, c.UpdatedAt, prevVersion)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("collaboration %s changed concurrently at version %d", c.ID, prevVersion)
	}

	batch := &pgx.Batch{}
	for _, d := range c.Deliverables {
		batch.Queue(`UPDATE deliverables
SET status = $2, content_ref = $3, submitted_at = $4, reviewed_at = $5, reviewer_note = $6, revisions = $7
WHERE id = $1`,
			d.ID, d.Status, d.ContentRef, d.SubmittedAt, d.ReviewedAt, d.ReviewerNote, d.Revisions)
	}
	if c.Escrow != nil {
		e := c.Escrow
		escrowTransitions, err := json.Marshal(e.Transitions)
		if err != nil {
			return err
		}
		batch.Queue(`UPDATE escrow_entries
SET state = $2, release_key = $3, dispute_reason = $4, transitions = $5, updated_at = $6, released_at = $7
WHERE id = $1`,
			e.ID, e.State, e.ReleaseKey, e.DisputeReason, escrowTransitions, e.UpdatedAt, e.ReleasedAt)
	}
	return tx.SendBatch(ctx, batch).Close()
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func valueTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
