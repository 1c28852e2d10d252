package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// CollaborationState is the lifecycle state of one creator's engagement
// on one campaign.
type CollaborationState string

const (
	StateApplied            CollaborationState = "applied"
	StateApproved           CollaborationState = "approved"
	StateInProgress         CollaborationState = "in_progress"
	StateSubmitted          CollaborationState = "submitted"
	StateApprovedForPayment CollaborationState = "approved_for_payment"
	StatePaid               CollaborationState = "paid"
	StateRejected           CollaborationState = "rejected"
	StateCancelled          CollaborationState = "cancelled"
)

// submitted -> in_progress is the review fallback when a deliverable is
// rejected.
var collaborationTransitions = map[CollaborationState][]CollaborationState{
	StateApplied:            {StateApproved, StateRejected},
	StateApproved:           {StateInProgress, StateCancelled},
	StateInProgress:         {StateSubmitted, StateCancelled},
	StateSubmitted:          {StateApprovedForPayment, StateInProgress},
	StateApprovedForPayment: {StatePaid},
}

// CanTransitionTo reports whether to is a legal successor of s.
func (s CollaborationState) CanTransitionTo(to CollaborationState) bool {
	return slices.Contains(collaborationTransitions[s], to)
}

// Terminal reports whether no transition leaves s.
func (s CollaborationState) Terminal() bool {
	return len(collaborationTransitions[s]) == 0
}

// Transition is one step in a collaboration's history.
type Transition struct {
	From   CollaborationState `json:"from"`
	To     CollaborationState `json:"to"`
	At     time.Time          `json:"at"`
	Reason string             `json:"reason,omitempty"`
}

// Collaboration is the aggregate root for an accepted application. It
// exclusively owns its deliverables and escrow entry; all changes to them
// go through its methods so the lifecycle guards always hold.
type Collaboration struct {
	recorder

	ID            string             `json:"id"`
	ApplicationID string             `json:"application_id"`
	CampaignID    string             `json:"campaign_id"`
	BrandID       string             `json:"brand_id"`
	CreatorID     string             `json:"creator_id"`
	Amount        decimal.Decimal    `json:"amount"`
	Currency      string             `json:"currency"`
	Compensation  Compensation       `json:"compensation"`
	State         CollaborationState `json:"state"`
	Requirements  []DeliverableSpec  `json:"requirements"`
	Deliverables  []Deliverable      `json:"deliverables"`
	Escrow        *EscrowEntry       `json:"escrow,omitempty"`
	Transitions   []Transition       `json:"transitions"`
	CancelReason  string             `json:"cancel_reason,omitempty"`
	Version       int64              `json:"version"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// NewCollaboration builds the approved collaboration for an accepted
// application. Campaign requirements are copied so later catalog edits do
// not change the obligation. Monetary campaigns get a held escrow entry.
func NewCollaboration(app Application, camp Campaign, at time.Time, newID func() string) *Collaboration {
	c := &Collaboration{
		ID:            newID(),
		ApplicationID: app.ID,
		CampaignID:    camp.ID,
		BrandID:       camp.BrandID,
		CreatorID:     app.CreatorID,
		Amount:        app.Terms.Amount,
		Currency:      camp.Currency,
		Compensation:  camp.Compensation,
		State:         StateApproved,
		Requirements:  slices.Clone(camp.Deliverables),
		CreatedAt:     at,
		UpdatedAt:     at,
	}
	if c.Compensation == "" {
		c.Compensation = CompensationMonetary
	}
	c.Transitions = []Transition{{From: StateApplied, To: StateApproved, At: at}}
	c.record(c.transitionEvent(StateApplied, StateApproved, at, ""))

	c.Deliverables = make([]Deliverable, 0, len(c.Requirements))
	for i, spec := range c.Requirements {
		d := Deliverable{
			ID:              newID(),
			CollaborationID: c.ID,
			SpecIndex:       i,
			Type:            spec.Type,
			Status:          DeliverablePending,
		}
		if spec.DueOffset > 0 {
			due := at.Add(spec.DueOffset)
			d.DueAt = &due
		}
		c.Deliverables = append(c.Deliverables, d)
	}

	if c.Compensation == CompensationMonetary {
		c.Escrow = &EscrowEntry{
			ID:              newID(),
			CollaborationID: c.ID,
			Amount:          c.Amount,
			Currency:        c.Currency,
			State:           EscrowHeld,
			CreatedAt:       at,
			UpdatedAt:       at,
		}
		c.record(c.escrowEvent("", EscrowHeld, at, ""))
	}
	return c
}

// Clone returns a deep copy without buffered events.
func (c Collaboration) Clone() Collaboration {
	out := c
	out.recorder = recorder{}
	out.Requirements = slices.Clone(c.Requirements)
	out.Transitions = slices.Clone(c.Transitions)
	out.Deliverables = make([]Deliverable, len(c.Deliverables))
	for i, d := range c.Deliverables {
		out.Deliverables[i] = d
		out.Deliverables[i].DueAt = clonePtr(d.DueAt)
		out.Deliverables[i].SubmittedAt = clonePtr(d.SubmittedAt)
		out.Deliverables[i].ReviewedAt = clonePtr(d.ReviewedAt)
	}
	if c.Escrow != nil {
		e := *c.Escrow
		e.Transitions = slices.Clone(c.Escrow.Transitions)
		e.ReleasedAt = clonePtr(c.Escrow.ReleasedAt)
		out.Escrow = &e
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// IsBarter reports whether the collaboration pays in kind.
func (c *Collaboration) IsBarter() bool {
	return c.Compensation == CompensationBarter
}

// Deliverable returns the deliverable with the given id.
func (c *Collaboration) Deliverable(id string) (*Deliverable, error) {
	for i := range c.Deliverables {
		if c.Deliverables[i].ID == id {
			return &c.Deliverables[i], nil
		}
	}
	return nil, fmt.Errorf("deliverable %s: %w", id, ErrNotFound)
}

// AllSatisfied is the submission guard.
func (c *Collaboration) AllSatisfied() bool {
	return AllSatisfied(c.Deliverables)
}

// AllApproved is the payment guard.
func (c *Collaboration) AllApproved() bool {
	return AllApproved(c.Deliverables)
}

// EnteredAt returns when the collaboration last entered state s.
func (c *Collaboration) EnteredAt(s CollaborationState) (time.Time, bool) {
	for i := len(c.Transitions) - 1; i >= 0; i-- {
		if c.Transitions[i].To == s {
			return c.Transitions[i].At, true
		}
	}
	return time.Time{}, false
}

// Transition moves the collaboration to state to after checking the
// transition table and the guard for to. Escrow follows in the same step.
func (c *Collaboration) Transition(to CollaborationState, at time.Time, reason string) error {
	from := c.State
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("collaboration %s cannot move from %s to %s: %w", c.ID, from, to, ErrInvalidTransition)
	}
	switch to {
	case StateInProgress:
		if !c.canStart(from) {
			return fmt.Errorf("collaboration %s cannot move from %s to %s: %w", c.ID, from, to, ErrInvalidTransition)
		}
	case StateSubmitted:
		if !c.AllSatisfied() {
			return fmt.Errorf("collaboration %s: %w", c.ID, ErrIncompleteDeliverables)
		}
	case StateApprovedForPayment:
		if !c.AllApproved() {
			return fmt.Errorf("collaboration %s: %w", c.ID, ErrIncompleteDeliverables)
		}
	case StatePaid:
		if !c.IsBarter() && (c.Escrow == nil || c.Escrow.State != EscrowReleased) {
			return fmt.Errorf("collaboration %s: %w", c.ID, ErrEscrowNotReleased)
		}
	}
	if err := c.syncEscrow(to, at, reason); err != nil {
		return err
	}
	c.State = to
	c.UpdatedAt = at
	c.Transitions = append(c.Transitions, Transition{From: from, To: to, At: at, Reason: reason})
	c.record(c.transitionEvent(from, to, at, reason))
	return nil
}

// canStart guards in_progress. Work starts once a deliverable leaves
// pending, and review falls back only when a rejection reopened one.
func (c *Collaboration) canStart(from CollaborationState) bool {
	pending := CountStatus(c.Deliverables, DeliverablePending)
	switch from {
	case StateApproved:
		return pending < len(c.Deliverables)
	case StateSubmitted:
		return pending > 0
	}
	return true
}

// syncEscrow applies the escrow step driven by a collaboration transition.
// pending_review is kept when review falls back to in_progress and when
// the collaboration re-enters submitted.
func (c *Collaboration) syncEscrow(to CollaborationState, at time.Time, reason string) error {
	if c.Escrow == nil {
		return nil
	}
	var next EscrowState
	switch to {
	case StateSubmitted:
		if c.Escrow.State != EscrowHeld {
			return nil
		}
		next = EscrowPendingReview
	case StateApprovedForPayment:
		next = EscrowProcessing
	case StateCancelled:
		if c.Escrow.State != EscrowHeld && c.Escrow.State != EscrowPendingReview {
			return nil
		}
		next = EscrowDisputed
		c.Escrow.DisputeReason = reason
	default:
		return nil
	}
	from := c.Escrow.State
	if err := c.Escrow.moveTo(next, at); err != nil {
		return err
	}
	c.record(c.escrowEvent(from, next, at, reason))
	return nil
}

// SubmitDeliverable records content for a pending deliverable, starts the
// collaboration on the first submission and moves it to submitted once
// every deliverable is accounted for.
func (c *Collaboration) SubmitDeliverable(deliverableID, contentRef string, at time.Time) (*Deliverable, error) {
	switch c.State {
	case StateApplied, StateRejected:
		return nil, fmt.Errorf("collaboration %s is %s: %w", c.ID, c.State, ErrCollaborationNotStarted)
	case StateApproved, StateInProgress:
	default:
		return nil, fmt.Errorf("collaboration %s is %s: %w", c.ID, c.State, ErrInvalidTransition)
	}
	d, err := c.Deliverable(deliverableID)
	if err != nil {
		return nil, err
	}
	if err = d.submit(contentRef, at); err != nil {
		return nil, err
	}
	c.record(Event{
		Type:          EventDeliverableSubmitted,
		AggregateID:   c.ID,
		DeliverableID: d.ID,
		From:          string(DeliverablePending),
		To:            string(DeliverableSubmitted),
		OccurredAt:    at,
	})
	if c.State == StateApproved {
		if err = c.Transition(StateInProgress, at, ""); err != nil {
			return nil, err
		}
	}
	if c.AllSatisfied() {
		if err = c.Transition(StateSubmitted, at, ""); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ReviewDeliverable applies the brand's verdict during the review phase.
// Approving the last deliverable moves the collaboration to
// approved_for_payment (and straight to paid for barter). Rejecting sends
// the deliverable back to pending and the collaboration to in_progress.
func (c *Collaboration) ReviewDeliverable(deliverableID string, decision ReviewDecision, note string, at time.Time) (*Deliverable, error) {
	if decision != ReviewApprove && decision != ReviewReject {
		return nil, fmt.Errorf("review decision %q: %w", decision, ErrInvalidInput)
	}
	if c.State != StateSubmitted {
		return nil, fmt.Errorf("collaboration %s is %s: %w", c.ID, c.State, ErrNotUnderReview)
	}
	d, err := c.Deliverable(deliverableID)
	if err != nil {
		return nil, err
	}
	if decision == ReviewReject {
		if err = d.reject(note, at); err != nil {
			return nil, err
		}
		c.record(Event{
			Type:          EventDeliverableReviewed,
			AggregateID:   c.ID,
			DeliverableID: d.ID,
			From:          string(DeliverableSubmitted),
			To:            string(DeliverableRejected),
			Reason:        note,
			OccurredAt:    at,
		})
		if err = c.Transition(StateInProgress, at, "deliverable rejected"); err != nil {
			return nil, err
		}
		return d, nil
	}

	if err = d.approve(note, at); err != nil {
		return nil, err
	}
	c.record(Event{
		Type:          EventDeliverableReviewed,
		AggregateID:   c.ID,
		DeliverableID: d.ID,
		From:          string(DeliverableSubmitted),
		To:            string(DeliverableApproved),
		Reason:        note,
		OccurredAt:    at,
	})
	if !c.AllApproved() {
		return d, nil
	}
	if err = c.Transition(StateApprovedForPayment, at, ""); err != nil {
		return nil, err
	}
	if c.IsBarter() {
		if err = c.Transition(StatePaid, at, "barter"); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Cancel ends the collaboration before submission. Escrowed funds are
// flagged disputed for manual resolution.
func (c *Collaboration) Cancel(reason string, at time.Time) error {
	if err := c.Transition(StateCancelled, at, reason); err != nil {
		return err
	}
	c.CancelReason = reason
	return nil
}

// ReleaseEscrow releases processing funds and marks the collaboration
// paid. An already released entry is returned unchanged.
func (c *Collaboration) ReleaseEscrow(key string, at time.Time) (*EscrowEntry, error) {
	if c.Escrow == nil {
		return nil, fmt.Errorf("collaboration %s has no escrow: %w", c.ID, ErrNotFound)
	}
	from := c.Escrow.State
	changed, err := c.Escrow.release(key, at)
	if err != nil {
		return nil, err
	}
	if !changed {
		return c.Escrow, nil
	}
	c.record(c.escrowEvent(from, EscrowReleased, at, ""))
	if err = c.Transition(StatePaid, at, ""); err != nil {
		return nil, err
	}
	return c.Escrow, nil
}

// FlagDispute freezes escrow that has not reached processing.
func (c *Collaboration) FlagDispute(reason string, at time.Time) (*EscrowEntry, error) {
	if c.Escrow == nil {
		return nil, fmt.Errorf("collaboration %s has no escrow: %w", c.ID, ErrNotFound)
	}
	from := c.Escrow.State
	if from != EscrowHeld && from != EscrowPendingReview {
		return nil, fmt.Errorf("escrow %s is %s: %w", c.Escrow.ID, from, ErrInvalidTransition)
	}
	if err := c.Escrow.moveTo(EscrowDisputed, at); err != nil {
		return nil, err
	}
	c.Escrow.DisputeReason = reason
	c.UpdatedAt = at
	c.record(c.escrowEvent(from, EscrowDisputed, at, reason))
	return c.Escrow, nil
}

func (c *Collaboration) transitionEvent(from, to CollaborationState, at time.Time, reason string) Event {
	return Event{
		Type:        EventCollaborationTransitioned,
		AggregateID: c.ID,
		From:        string(from),
		To:          string(to),
		Reason:      reason,
		OccurredAt:  at,
	}
}

func (c *Collaboration) escrowEvent(from, to EscrowState, at time.Time, reason string) Event {
	return Event{
		Type:        EventEscrowTransitioned,
		AggregateID: c.ID,
		From:        string(from),
		To:          string(to),
		Reason:      reason,
		OccurredAt:  at,
	}
}
