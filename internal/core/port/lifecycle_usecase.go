package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"collabhub/internal/core/domain"
)

// LifecycleUseCase defines the business operations exposed by the
// collaboration engine. This interface represents the primary port into
// the application domain. Every operation either returns the new aggregate
// state or fails with one of the domain error kinds, leaving the ledgers
// unchanged.
type LifecycleUseCase interface {
	// SubmitApplication records a creator's application to an active
	// campaign. A second application for the same pair fails with
	// domain.ErrDuplicateApplication.
	SubmitApplication(ctx context.Context, actor domain.Actor, campaignID, creatorID string, terms domain.Terms) (*domain.Application, error)

	// DecideApplication accepts or rejects an application. Acceptance
	// returns the new collaboration; rejection returns nil. Deciding an
	// accepted application again returns the existing collaboration.
	DecideApplication(ctx context.Context, actor domain.Actor, applicationID string, decision domain.Decision) (*domain.Collaboration, error)

	// SubmitDeliverable records content for a deliverable and advances the
	// collaboration when its guards allow.
	SubmitDeliverable(ctx context.Context, actor domain.Actor, collaborationID, deliverableID, contentRef string) (*domain.Deliverable, error)

	// ReviewDeliverable approves or rejects a submitted deliverable while
	// the collaboration is under review.
	ReviewDeliverable(ctx context.Context, actor domain.Actor, collaborationID, deliverableID string, decision domain.ReviewDecision, note string) (*domain.Deliverable, error)

	// CancelCollaboration ends a collaboration before submission.
	CancelCollaboration(ctx context.Context, actor domain.Actor, collaborationID, reason string) (*domain.Collaboration, error)

	// ReleaseEscrow releases processing funds. Retried calls return the
	// released entry unchanged.
	ReleaseEscrow(ctx context.Context, actor domain.Actor, collaborationID, idempotencyKey string) (*domain.EscrowEntry, error)

	// FlagEscrowDispute freezes escrow that has not reached processing.
	FlagEscrowDispute(ctx context.Context, actor domain.Actor, collaborationID, reason string) (*domain.EscrowEntry, error)

	// GetCollaboration returns a collaboration visible to the actor.
	GetCollaboration(ctx context.Context, actor domain.Actor, collaborationID string) (*domain.Collaboration, error)

	// GetCreatorDashboard folds a creator's applications and
	// collaborations into the dashboard projection.
	GetCreatorDashboard(ctx context.Context, actor domain.Actor, creatorID string) (*CreatorDashboard, error)

	// GetBrandFunnel folds a campaign's applications and collaborations
	// into funnel counts.
	GetBrandFunnel(ctx context.Context, actor domain.Actor, campaignID string) (*BrandFunnel, error)

	// GetEscrowHistory lists escrow entries for a creator or a campaign,
	// most recent transition first.
	GetEscrowHistory(ctx context.Context, actor domain.Actor, filter EscrowHistoryFilter) ([]EscrowTransaction, error)
}

// CollaborationSummary is one row of the creator dashboard. Pending and
// rejected applications appear with an empty CollaborationID.
type CollaborationSummary struct {
	CollaborationID   string                    `json:"collaboration_id,omitempty"`
	ApplicationID     string                    `json:"application_id"`
	CampaignID        string                    `json:"campaign_id"`
	State             domain.CollaborationState `json:"state"`
	Amount            decimal.Decimal           `json:"amount"`
	Currency          string                    `json:"currency,omitempty"`
	EscrowState       domain.EscrowState        `json:"escrow_state,omitempty"`
	DeliverablesDone  int                       `json:"deliverables_done"`
	DeliverablesTotal int                       `json:"deliverables_total"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

// CreatorDashboard groups a creator's work by lifecycle state. Pending is
// the sum of held, pending_review and processing escrow; PaidOut is the
// sum of released escrow.
type CreatorDashboard struct {
	CreatorID string                                                `json:"creator_id"`
	Groups    map[domain.CollaborationState][]CollaborationSummary `json:"groups"`
	Earnings  map[domain.EscrowState]decimal.Decimal                `json:"earnings"`
	Pending   decimal.Decimal                                       `json:"pending"`
	PaidOut   decimal.Decimal                                       `json:"paid_out"`
}

// BrandFunnel counts how far a campaign's applicants progressed.
type BrandFunnel struct {
	CampaignID string `json:"campaign_id"`
	Applied    int    `json:"applied"`
	Approved   int    `json:"approved"`
	Submitted  int    `json:"submitted"`
	Paid       int    `json:"paid"`
	Rejected   int    `json:"rejected"`
	Cancelled  int    `json:"cancelled"`
}

// EscrowHistoryFilter selects escrow entries by creator or by campaign.
// Exactly one field must be set.
type EscrowHistoryFilter struct {
	CreatorID  string
	CampaignID string
}

// EscrowTransaction joins an escrow entry with its collaboration.
type EscrowTransaction struct {
	EscrowID           string                    `json:"escrow_id"`
	CollaborationID    string                    `json:"collaboration_id"`
	CampaignID         string                    `json:"campaign_id"`
	CreatorID          string                    `json:"creator_id"`
	BrandID            string                    `json:"brand_id"`
	Amount             decimal.Decimal           `json:"amount"`
	Currency           string                    `json:"currency"`
	State              domain.EscrowState        `json:"state"`
	CollaborationState domain.CollaborationState `json:"collaboration_state"`
	CreatedAt          time.Time                 `json:"created_at"`
	LastTransitionAt   time.Time                 `json:"last_transition_at"`
	ReleasedAt         *time.Time                `json:"released_at,omitempty"`
}
