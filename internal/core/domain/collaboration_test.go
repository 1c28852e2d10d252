package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestCollaboration(t *testing.T, specs int, comp Compensation) *Collaboration {
	t.Helper()
	camp := Campaign{
		ID:           "camp-1",
		BrandID:      "brand-1",
		BudgetMin:    decimal.NewFromInt(1000),
		BudgetMax:    decimal.NewFromInt(3000),
		Currency:     "USD",
		Compensation: comp,
		Status:       CampaignActive,
	}
	for i := 0; i < specs; i++ {
		camp.Deliverables = append(camp.Deliverables, DeliverableSpec{Type: "reel", Quantity: 1, DueOffset: 48 * time.Hour})
	}
	amount := decimal.NewFromInt(2500)
	if comp == CompensationBarter {
		amount = decimal.Zero
	}
	app := NewApplication("app-1", camp.ID, "creator-1", Terms{Amount: amount}, time.Now())
	require.NoError(t, app.Decide(DecisionAccepted, time.Now()))
	return NewCollaboration(*app, camp, time.Now(), sequentialIDs())
}

func TestNewCollaborationCreatesDeliverablesAndEscrow(t *testing.T) {
	c := newTestCollaboration(t, 2, CompensationMonetary)

	assert.Equal(t, StateApproved, c.State)
	require.Len(t, c.Deliverables, 2)
	for _, d := range c.Deliverables {
		assert.Equal(t, DeliverablePending, d.Status)
		assert.NotNil(t, d.DueAt)
	}
	require.NotNil(t, c.Escrow)
	assert.Equal(t, EscrowHeld, c.Escrow.State)
	assert.True(t, c.Escrow.Amount.Equal(decimal.NewFromInt(2500)))
	assert.Nil(t, c.Escrow.ReleasedAt)

	events := c.PullEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventCollaborationTransitioned, events[0].Type)
	assert.Equal(t, EventEscrowTransitioned, events[1].Type)
	assert.Empty(t, c.PullEvents())
}

func TestBarterCollaborationHasNoEscrow(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationBarter)
	assert.Nil(t, c.Escrow)
}

func TestHappyPathToPaid(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationMonetary)
	id := c.Deliverables[0].ID
	now := time.Now()

	_, err := c.SubmitDeliverable(id, "https://cdn.example.com/reel.mp4", now)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, c.State)
	assert.Equal(t, EscrowPendingReview, c.Escrow.State)

	_, err = c.ReviewDeliverable(id, ReviewApprove, "great", now)
	require.NoError(t, err)
	assert.Equal(t, StateApprovedForPayment, c.State)
	assert.Equal(t, EscrowProcessing, c.Escrow.State)

	entry, err := c.ReleaseEscrow("key-1", now)
	require.NoError(t, err)
	assert.Equal(t, EscrowReleased, entry.State)
	require.NotNil(t, entry.ReleasedAt)
	assert.Equal(t, StatePaid, c.State)

	again, err := c.ReleaseEscrow("key-1", now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, now, *again.ReleasedAt)
	assert.Equal(t, "key-1", again.ReleaseKey)
}

func TestPartialSubmissionStaysInProgress(t *testing.T) {
	c := newTestCollaboration(t, 2, CompensationMonetary)

	_, err := c.SubmitDeliverable(c.Deliverables[0].ID, "uri://one", time.Now())
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, c.State)
	assert.Equal(t, EscrowHeld, c.Escrow.State)

	err = c.Transition(StateSubmitted, time.Now(), "")
	require.ErrorIs(t, err, ErrIncompleteDeliverables)
	assert.Equal(t, StateInProgress, c.State)
}

func TestRejectionDuringReviewFallsBack(t *testing.T) {
	c := newTestCollaboration(t, 3, CompensationMonetary)
	now := time.Now()
	for _, d := range c.Deliverables {
		_, err := c.SubmitDeliverable(d.ID, "uri://"+d.ID, now)
		require.NoError(t, err)
	}
	require.Equal(t, StateSubmitted, c.State)

	_, err := c.ReviewDeliverable(c.Deliverables[0].ID, ReviewApprove, "", now)
	require.NoError(t, err)
	d, err := c.ReviewDeliverable(c.Deliverables[1].ID, ReviewReject, "bad lighting", now)
	require.NoError(t, err)

	assert.Equal(t, DeliverablePending, d.Status)
	assert.Equal(t, 1, d.Revisions)
	assert.Equal(t, "bad lighting", d.ReviewerNote)
	assert.Equal(t, StateInProgress, c.State)
	assert.Equal(t, DeliverableApproved, c.Deliverables[0].Status)
	assert.Equal(t, DeliverableSubmitted, c.Deliverables[2].Status)
	assert.Equal(t, EscrowPendingReview, c.Escrow.State)

	_, err = c.ReviewDeliverable(c.Deliverables[2].ID, ReviewApprove, "", now)
	require.ErrorIs(t, err, ErrNotUnderReview)

	_, err = c.SubmitDeliverable(c.Deliverables[1].ID, "uri://v2", now)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, c.State)
	assert.Equal(t, EscrowPendingReview, c.Escrow.State)
}

func TestReleaseBeforeProcessingIsOutOfOrder(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationMonetary)

	_, err := c.ReleaseEscrow("k", time.Now())
	require.ErrorIs(t, err, ErrOutOfOrderRelease)

	_, err = c.SubmitDeliverable(c.Deliverables[0].ID, "uri://x", time.Now())
	require.NoError(t, err)
	_, err = c.ReleaseEscrow("k", time.Now())
	require.ErrorIs(t, err, ErrOutOfOrderRelease)
	assert.Nil(t, c.Escrow.ReleasedAt)
}

func TestPaidRequiresReleasedEscrow(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationMonetary)
	now := time.Now()
	_, err := c.SubmitDeliverable(c.Deliverables[0].ID, "uri://x", now)
	require.NoError(t, err)
	_, err = c.ReviewDeliverable(c.Deliverables[0].ID, ReviewApprove, "", now)
	require.NoError(t, err)

	err = c.Transition(StatePaid, now, "")
	require.ErrorIs(t, err, ErrEscrowNotReleased)
	assert.Equal(t, StateApprovedForPayment, c.State)
}

func TestBarterApprovalCompletesWithoutEscrow(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationBarter)
	now := time.Now()
	_, err := c.SubmitDeliverable(c.Deliverables[0].ID, "uri://x", now)
	require.NoError(t, err)
	_, err = c.ReviewDeliverable(c.Deliverables[0].ID, ReviewApprove, "", now)
	require.NoError(t, err)

	assert.Equal(t, StatePaid, c.State)
	_, ok := c.EnteredAt(StateApprovedForPayment)
	assert.True(t, ok)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name       string
		prepare    func(c *Collaboration)
		wantErr    error
		wantEscrow EscrowState
	}{
		{
			name:       "approved",
			prepare:    func(c *Collaboration) {},
			wantEscrow: EscrowDisputed,
		},
		{
			name: "in progress",
			prepare: func(c *Collaboration) {
				_, _ = c.SubmitDeliverable(c.Deliverables[0].ID, "uri://x", time.Now())
			},
			wantEscrow: EscrowDisputed,
		},
		{
			name: "submitted",
			prepare: func(c *Collaboration) {
				for _, d := range c.Deliverables {
					_, _ = c.SubmitDeliverable(d.ID, "uri://x", time.Now())
				}
			},
			wantErr:    ErrInvalidTransition,
			wantEscrow: EscrowPendingReview,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCollaboration(t, 2, CompensationMonetary)
			tt.prepare(c)
			before := c.State

			err := c.Cancel("brand withdrew", time.Now())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, c.State)
			} else {
				require.NoError(t, err)
				assert.Equal(t, StateCancelled, c.State)
				assert.Equal(t, "brand withdrew", c.Escrow.DisputeReason)
				assert.True(t, c.State.Terminal())
			}
			assert.Equal(t, tt.wantEscrow, c.Escrow.State)
		})
	}
}

func TestSubmitValidation(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationMonetary)

	_, err := c.SubmitDeliverable("missing", "uri://x", time.Now())
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.SubmitDeliverable(c.Deliverables[0].ID, " ", time.Now())
	require.ErrorIs(t, err, ErrInvalidInput)

	c.State = StateApplied
	_, err = c.SubmitDeliverable(c.Deliverables[0].ID, "uri://x", time.Now())
	require.ErrorIs(t, err, ErrCollaborationNotStarted)
}

func TestFlagDispute(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationMonetary)

	entry, err := c.FlagDispute("chargeback", time.Now())
	require.NoError(t, err)
	assert.Equal(t, EscrowDisputed, entry.State)
	assert.Equal(t, "chargeback", entry.DisputeReason)

	_, err = c.FlagDispute("again", time.Now())
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCloneIsDeep(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationMonetary)
	cp := c.Clone()

	_, err := cp.SubmitDeliverable(cp.Deliverables[0].ID, "uri://x", time.Now())
	require.NoError(t, err)

	assert.Equal(t, StateApproved, c.State)
	assert.Equal(t, DeliverablePending, c.Deliverables[0].Status)
	assert.Equal(t, EscrowHeld, c.Escrow.State)
	assert.Empty(t, c.Escrow.Transitions)
	assert.Len(t, cp.Escrow.Transitions, 1)
	assert.Len(t, c.Transitions, 1)
}

func TestTransitionToInProgressGuard(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, c *Collaboration)
		wantErr error
	}{
		{
			name:    "approved with nothing submitted",
			prepare: func(*testing.T, *Collaboration) {},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "approved after a deliverable left pending",
			prepare: func(t *testing.T, c *Collaboration) {
				require.NoError(t, c.Deliverables[0].submit("uri://a", time.Now()))
			},
		},
		{
			name: "submitted without a rejection",
			prepare: func(t *testing.T, c *Collaboration) {
				for _, d := range c.Deliverables {
					_, err := c.SubmitDeliverable(d.ID, "uri://"+d.ID, time.Now())
					require.NoError(t, err)
				}
				require.Equal(t, StateSubmitted, c.State)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "submitted after a rejection reopened a deliverable",
			prepare: func(t *testing.T, c *Collaboration) {
				for _, d := range c.Deliverables {
					_, err := c.SubmitDeliverable(d.ID, "uri://"+d.ID, time.Now())
					require.NoError(t, err)
				}
				require.NoError(t, c.Deliverables[1].reject("redo", time.Now()))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCollaboration(t, 2, CompensationMonetary)
			tt.prepare(t, c)
			from := c.State

			err := c.Transition(StateInProgress, time.Now(), "")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, from, c.State)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StateInProgress, c.State)
		})
	}
}

func TestForcedFallbackKeepsCollaborationReviewable(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationMonetary)
	id := c.Deliverables[0].ID
	now := time.Now()

	_, err := c.SubmitDeliverable(id, "uri://a", now)
	require.NoError(t, err)
	require.ErrorIs(t, c.Transition(StateInProgress, now, "forced"), ErrInvalidTransition)

	_, err = c.ReviewDeliverable(id, ReviewApprove, "", now)
	require.NoError(t, err)
	assert.Equal(t, StateApprovedForPayment, c.State)
}

func TestRejectedStatusOnlyInEvents(t *testing.T) {
	c := newTestCollaboration(t, 1, CompensationMonetary)
	id := c.Deliverables[0].ID
	now := time.Now()
	_, err := c.SubmitDeliverable(id, "uri://a", now)
	require.NoError(t, err)
	c.PullEvents()

	d, err := c.ReviewDeliverable(id, ReviewReject, "blurry", now)
	require.NoError(t, err)
	assert.Equal(t, DeliverablePending, d.Status)

	events := c.PullEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, EventDeliverableReviewed, events[0].Type)
	assert.Equal(t, string(DeliverableRejected), events[0].To)
}
