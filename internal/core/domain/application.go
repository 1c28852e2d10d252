package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decision is the brand's verdict on an application.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

// Terms are what a creator proposes when applying.
type Terms struct {
	Amount  decimal.Decimal `json:"amount"`
	Message string          `json:"message"`
}

// Application is a creator's request to join a campaign. There is at most
// one application per (campaign, creator) pair.
type Application struct {
	recorder

	ID          string     `json:"id"`
	CampaignID  string     `json:"campaign_id"`
	CreatorID   string     `json:"creator_id"`
	Terms       Terms      `json:"terms"`
	SubmittedAt time.Time  `json:"submitted_at"`
	Decision    Decision   `json:"decision"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
}

// NewApplication returns a pending application and records its
// submission event.
func NewApplication(id, campaignID, creatorID string, terms Terms, at time.Time) *Application {
	a := &Application{
		ID:          id,
		CampaignID:  campaignID,
		CreatorID:   creatorID,
		Terms:       terms,
		SubmittedAt: at,
		Decision:    DecisionPending,
	}
	a.record(Event{
		Type:        EventApplicationSubmitted,
		AggregateID: id,
		To:          string(DecisionPending),
		OccurredAt:  at,
	})
	return a
}

// Decide settles a pending application. Deciding twice is an
// ErrInvalidTransition; the caller handles idempotent repeats.
func (a *Application) Decide(d Decision, at time.Time) error {
	if d != DecisionAccepted && d != DecisionRejected {
		return ErrInvalidInput
	}
	if a.Decision != DecisionPending {
		return ErrInvalidTransition
	}
	a.Decision = d
	a.DecidedAt = &at
	a.record(Event{
		Type:        EventApplicationDecided,
		AggregateID: a.ID,
		From:        string(DecisionPending),
		To:          string(d),
		OccurredAt:  at,
	})
	return nil
}
