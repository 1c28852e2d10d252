package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EscrowState is the state of funds held for a collaboration.
type EscrowState string

const (
	EscrowHeld          EscrowState = "held"
	EscrowPendingReview EscrowState = "pending_review"
	EscrowProcessing    EscrowState = "processing"
	EscrowReleased      EscrowState = "released"
	EscrowDisputed      EscrowState = "disputed"
)

var escrowTransitions = map[EscrowState][]EscrowState{
	EscrowHeld:          {EscrowPendingReview, EscrowDisputed},
	EscrowPendingReview: {EscrowProcessing, EscrowDisputed},
	EscrowProcessing:    {EscrowReleased},
}

// CanTransitionTo reports whether to is a legal successor of s.
func (s EscrowState) CanTransitionTo(to EscrowState) bool {
	for _, next := range escrowTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Outstanding reports whether funds are reserved but not yet paid out.
func (s EscrowState) Outstanding() bool {
	return s == EscrowHeld || s == EscrowPendingReview || s == EscrowProcessing
}

// EscrowTransition is one step in an escrow entry's history.
type EscrowTransition struct {
	From EscrowState `json:"from"`
	To   EscrowState `json:"to"`
	At   time.Time   `json:"at"`
}

// EscrowEntry holds the agreed amount for one collaboration. ReleasedAt is
// set if and only if State is EscrowReleased.
type EscrowEntry struct {
	ID              string             `json:"id"`
	CollaborationID string             `json:"collaboration_id"`
	Amount          decimal.Decimal    `json:"amount"`
	Currency        string             `json:"currency"`
	State           EscrowState        `json:"state"`
	ReleaseKey      string             `json:"release_key,omitempty"`
	DisputeReason   string             `json:"dispute_reason,omitempty"`
	Transitions     []EscrowTransition `json:"transitions"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	ReleasedAt      *time.Time         `json:"released_at,omitempty"`
}

// LastTransitionAt returns when the entry last changed state.
func (e EscrowEntry) LastTransitionAt() time.Time {
	if n := len(e.Transitions); n > 0 {
		return e.Transitions[n-1].At
	}
	return e.CreatedAt
}

func (e *EscrowEntry) moveTo(to EscrowState, at time.Time) error {
	if !e.State.CanTransitionTo(to) {
		return fmt.Errorf("escrow %s cannot move from %s to %s: %w", e.ID, e.State, to, ErrInvalidTransition)
	}
	e.Transitions = append(e.Transitions, EscrowTransition{From: e.State, To: to, At: at})
	e.State = to
	e.UpdatedAt = at
	if to == EscrowReleased {
		e.ReleasedAt = &at
	}
	return nil
}

// release moves a processing entry to released. It reports false without
// error when the entry was already released so retried requests observe
// the original record.
func (e *EscrowEntry) release(key string, at time.Time) (bool, error) {
	switch e.State {
	case EscrowReleased:
		return false, nil
	case EscrowHeld, EscrowPendingReview:
		return false, fmt.Errorf("escrow %s is %s: %w", e.ID, e.State, ErrOutOfOrderRelease)
	case EscrowProcessing:
		if err := e.moveTo(EscrowReleased, at); err != nil {
			return false, err
		}
		e.ReleaseKey = key
		return true, nil
	default:
		return false, fmt.Errorf("escrow %s is %s: %w", e.ID, e.State, ErrInvalidTransition)
	}
}
