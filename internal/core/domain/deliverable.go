package domain

import (
	"fmt"
	"strings"
	"time"
)

// DeliverableStatus is the review status of one deliverable.
type DeliverableStatus string

const (
	DeliverablePending   DeliverableStatus = "pending"
	DeliverableSubmitted DeliverableStatus = "submitted"
	DeliverableApproved  DeliverableStatus = "approved"
	DeliverableRejected  DeliverableStatus = "rejected"
)

// ReviewDecision is the brand's verdict on a submitted deliverable.
type ReviewDecision string

const (
	ReviewApprove ReviewDecision = "approve"
	ReviewReject  ReviewDecision = "reject"
)

// Deliverable is one required piece of content owed under a
// collaboration. Deliverables are created with the collaboration and are
// only ever mutated. A stored deliverable is never rejected: a rejection
// reopens it as pending, and DeliverableRejected appears only in the
// deliverable.reviewed event.
type Deliverable struct {
	ID              string            `json:"id"`
	CollaborationID string            `json:"collaboration_id"`
	SpecIndex       int               `json:"spec_index"`
	Type            string            `json:"type"`
	Status          DeliverableStatus `json:"status"`
	ContentRef      string            `json:"content_ref,omitempty"`
	DueAt           *time.Time        `json:"due_at,omitempty"`
	SubmittedAt     *time.Time        `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	ReviewerNote    string            `json:"reviewer_note,omitempty"`
	Revisions       int               `json:"revisions"`
}

func (d *Deliverable) submit(contentRef string, at time.Time) error {
	if strings.TrimSpace(contentRef) == "" {
		return fmt.Errorf("content reference required: %w", ErrInvalidInput)
	}
	if d.Status != DeliverablePending {
		return fmt.Errorf("deliverable %s is %s: %w", d.ID, d.Status, ErrInvalidTransition)
	}
	d.Status = DeliverableSubmitted
	d.ContentRef = contentRef
	d.SubmittedAt = &at
	return nil
}

func (d *Deliverable) approve(note string, at time.Time) error {
	if d.Status != DeliverableSubmitted {
		return fmt.Errorf("deliverable %s is %s: %w", d.ID, d.Status, ErrInvalidTransition)
	}
	d.Status = DeliverableApproved
	d.ReviewedAt = &at
	d.ReviewerNote = note
	return nil
}

// reject reopens the deliverable for resubmission.
func (d *Deliverable) reject(note string, at time.Time) error {
	if d.Status != DeliverableSubmitted {
		return fmt.Errorf("deliverable %s is %s: %w", d.ID, d.Status, ErrInvalidTransition)
	}
	d.ReviewedAt = &at
	d.ReviewerNote = note
	d.Revisions++
	d.Status = DeliverablePending
	return nil
}

// AllSatisfied reports whether every deliverable is submitted or approved.
// It has no side effects and may be evaluated any number of times.
func AllSatisfied(ds []Deliverable) bool {
	for _, d := range ds {
		if d.Status != DeliverableSubmitted && d.Status != DeliverableApproved {
			return false
		}
	}
	return true
}

// AllApproved reports whether every deliverable is approved.
func AllApproved(ds []Deliverable) bool {
	for _, d := range ds {
		if d.Status != DeliverableApproved {
			return false
		}
	}
	return true
}

// CountStatus returns how many deliverables are in status s.
func CountStatus(ds []Deliverable, s DeliverableStatus) int {
	n := 0
	for _, d := range ds {
		if d.Status == s {
			n++
		}
	}
	return n
}
