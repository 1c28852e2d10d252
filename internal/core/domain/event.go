package domain

import (
	"time"
)

// EventType names a lifecycle event written to the outbox.
type EventType string

const (
	EventApplicationSubmitted      EventType = "application.submitted"
	EventApplicationDecided        EventType = "application.decided"
	EventCollaborationTransitioned EventType = "collaboration.transitioned"
	EventDeliverableSubmitted      EventType = "deliverable.submitted"
	EventDeliverableReviewed       EventType = "deliverable.reviewed"
	EventEscrowTransitioned        EventType = "escrow.transitioned"
)

// Event is a record of a state change. AggregateID is the application id
// for application events and the collaboration id for everything else; it
// is also the partition key when events are published.
type Event struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	AggregateID   string    `json:"aggregate_id"`
	DeliverableID string    `json:"deliverable_id,omitempty"`
	From          string    `json:"from,omitempty"`
	To            string    `json:"to"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// recorder buffers events raised by an aggregate until the store drains
// them into the outbox in the same atomic unit as the state change.
type recorder struct {
	events []Event
}

func (r *recorder) record(e Event) {
	r.events = append(r.events, e)
}

// PullEvents returns buffered events and clears the buffer.
func (r *recorder) PullEvents() []Event {
	out := r.events
	r.events = nil
	return out
}
