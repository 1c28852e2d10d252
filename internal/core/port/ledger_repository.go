package port

import (
	"context"
	"time"

	"collabhub/internal/core/domain"
)

// CollaborationMutation changes a collaboration in place. Returning an
// error discards every change made by the mutation.
type CollaborationMutation func(c *domain.Collaboration) error

// ApplicationDecision settles an application. existing is the
// collaboration already created for the application, if any. The
// returned collaboration is persisted only when existing is nil.
type ApplicationDecision func(app *domain.Application, existing *domain.Collaboration) (*domain.Collaboration, error)

// LedgerRepository defines the persistence layer for the lifecycle
// engine. It is an outbound port in hexagonal architecture.
// Implementations must serialize mutations per collaboration (and
// decisions per application), persist each mutation atomically together
// with the events the aggregate raised, and leave storage untouched when
// a mutation fails. Lookups of unknown ids return nil without error.
type LedgerRepository interface {
	// UpsertCampaign stores a catalog entry.
	UpsertCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// CreateApplication stores a new application. It returns
	// domain.ErrDuplicateApplication when the (campaign, creator) pair
	// already applied.
	CreateApplication(ctx context.Context, app *domain.Application) error
	// GetApplication returns an application by id.
	GetApplication(ctx context.Context, id string) (*domain.Application, error)
	ListApplicationsByCampaign(ctx context.Context, campaignID string) ([]domain.Application, error)
	ListApplicationsByCreator(ctx context.Context, creatorID string) ([]domain.Application, error)
	// DecideApplication locks the application, runs decide and stores the
	// application together with a newly created collaboration.
	DecideApplication(ctx context.Context, id string, decide ApplicationDecision) (*domain.Collaboration, error)

	// GetCollaboration returns a collaboration with its deliverables and
	// escrow entry.
	GetCollaboration(ctx context.Context, id string) (*domain.Collaboration, error)
	ListCollaborationsByCreator(ctx context.Context, creatorID string) ([]domain.Collaboration, error)
	ListCollaborationsByCampaign(ctx context.Context, campaignID string) ([]domain.Collaboration, error)
	// MutateCollaboration locks the collaboration, applies mutate to a copy
	// and stores the copy. It returns domain.ErrNotFound for unknown ids.
	MutateCollaboration(ctx context.Context, id string, mutate CollaborationMutation) (*domain.Collaboration, error)
}

// OutboxRecord is a lifecycle event waiting to be published.
type OutboxRecord struct {
	ID           string
	EventType    string
	PartitionKey string
	Payload      []byte
	RetryCount   int
	CreatedAt    time.Time
}

// OutboxRepository exposes the events written by LedgerRepository
// mutations to the relay.
type OutboxRepository interface {
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxRecord, error)
	MarkPublished(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id string, reason string, at time.Time) error
}

// EventPublisher delivers outbox records to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}

// ReleaseReceipts caches released escrow entries by idempotency key so
// retried release requests can be answered without taking the
// collaboration lock. Get returns nil when the key is unknown.
type ReleaseReceipts interface {
	Get(ctx context.Context, key string) (*domain.EscrowEntry, error)
	Put(ctx context.Context, key string, entry domain.EscrowEntry) error
}
