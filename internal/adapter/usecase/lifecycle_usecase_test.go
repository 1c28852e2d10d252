package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"collabhub/internal/adapter/memory"
	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
	"collabhub/internal/core/port/mocks"
)

var (
	brand   = domain.Actor{ID: "brand-1", Role: domain.RoleBrand}
	creator = domain.Actor{ID: "creator-1", Role: domain.RoleCreator}
	admin   = domain.Actor{ID: "ops", Role: domain.RoleAdmin}
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func campaign(id string, specs int) domain.Campaign {
	c := domain.Campaign{
		ID:           id,
		BrandID:      brand.ID,
		Title:        "Spring launch",
		BudgetMin:    decimal.NewFromInt(1000),
		BudgetMax:    decimal.NewFromInt(5000),
		Currency:     "USD",
		Compensation: domain.CompensationMonetary,
		Status:       domain.CampaignActive,
	}
	for i := 0; i < specs; i++ {
		c.Deliverables = append(c.Deliverables, domain.DeliverableSpec{Type: fmt.Sprintf("post-%d", i), Quantity: 1})
	}
	return c
}

type fixture struct {
	store *memory.Store
	uc    *LifecycleUseCase
}

func newFixture(t *testing.T, camps ...domain.Campaign) fixture {
	t.Helper()
	store := memory.NewStore()
	for _, c := range camps {
		require.NoError(t, store.UpsertCampaign(context.Background(), c))
	}
	return fixture{store: store, uc: NewLifecycleUseCase(store, WithClock(fixedClock()))}
}

// accepted applies with amount and accepts the application.
func (f fixture) accepted(t *testing.T, campaignID string, amount int64) *domain.Collaboration {
	t.Helper()
	ctx := context.Background()
	app, err := f.uc.SubmitApplication(ctx, creator, campaignID, creator.ID, domain.Terms{Amount: decimal.NewFromInt(amount)})
	require.NoError(t, err)
	c, err := f.uc.DecideApplication(ctx, brand, app.ID, domain.DecisionAccepted)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func (f fixture) countTransitions(to domain.CollaborationState) int {
	n := 0
	for _, e := range f.store.Events() {
		if e.Type == domain.EventCollaborationTransitioned && e.To == string(to) {
			n++
		}
	}
	return n
}

// TestHappyPathToPaid walks one collaboration from application to payout.
func TestHappyPathToPaid(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()

	c := f.accepted(t, "camp-1", 2500)
	assert.Equal(t, domain.StateApproved, c.State)
	require.NotNil(t, c.Escrow)
	assert.Equal(t, domain.EscrowHeld, c.Escrow.State)
	assert.True(t, c.Escrow.Amount.Equal(decimal.NewFromInt(2500)))

	d := c.Deliverables[0]
	_, err := f.uc.SubmitDeliverable(ctx, creator, c.ID, d.ID, "https://cdn.example/post.mp4")
	require.NoError(t, err)

	got, err := f.uc.GetCollaboration(ctx, creator, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSubmitted, got.State)
	assert.Equal(t, domain.EscrowPendingReview, got.Escrow.State)

	reviewed, err := f.uc.ReviewDeliverable(ctx, brand, c.ID, d.ID, domain.ReviewApprove, "great")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableApproved, reviewed.Status)

	got, err = f.uc.GetCollaboration(ctx, brand, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApprovedForPayment, got.State)
	assert.Equal(t, domain.EscrowProcessing, got.Escrow.State)

	entry, err := f.uc.ReleaseEscrow(ctx, brand, c.ID, "release-1")
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowReleased, entry.State)
	require.NotNil(t, entry.ReleasedAt)

	got, err = f.uc.GetCollaboration(ctx, brand, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePaid, got.State)

	dash, err := f.uc.GetCreatorDashboard(ctx, creator, creator.ID)
	require.NoError(t, err)
	assert.True(t, dash.PaidOut.Equal(decimal.NewFromInt(2500)), dash.PaidOut.String())
	assert.True(t, dash.Pending.IsZero())
	assert.Len(t, dash.Groups[domain.StatePaid], 1)

	funnel, err := f.uc.GetBrandFunnel(ctx, brand, "camp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, funnel.Applied)
	assert.Equal(t, 1, funnel.Approved)
	assert.Equal(t, 1, funnel.Submitted)
	assert.Equal(t, 1, funnel.Paid)

	history, err := f.uc.GetEscrowHistory(ctx, creator, port.EscrowHistoryFilter{CreatorID: creator.ID})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.EscrowReleased, history[0].State)
	assert.Equal(t, domain.StatePaid, history[0].CollaborationState)
}

func TestPartialSubmissionKeepsCollaborationInProgress(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 2))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 1500)

	_, err := f.uc.SubmitDeliverable(ctx, creator, c.ID, c.Deliverables[0].ID, "uri://one")
	require.NoError(t, err)

	got, err := f.uc.GetCollaboration(ctx, creator, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInProgress, got.State)
	assert.Equal(t, domain.EscrowHeld, got.Escrow.State)

	_, err = f.uc.ReviewDeliverable(ctx, brand, c.ID, c.Deliverables[0].ID, domain.ReviewApprove, "")
	require.ErrorIs(t, err, domain.ErrNotUnderReview)

	_, err = f.uc.SubmitDeliverable(ctx, creator, c.ID, c.Deliverables[1].ID, "uri://two")
	require.NoError(t, err)

	got, err = f.uc.GetCollaboration(ctx, creator, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSubmitted, got.State)
}

func TestRejectedDeliverableIsResubmitted(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 1500)
	id := c.Deliverables[0].ID

	_, err := f.uc.SubmitDeliverable(ctx, creator, c.ID, id, "uri://draft")
	require.NoError(t, err)
	d, err := f.uc.ReviewDeliverable(ctx, brand, c.ID, id, domain.ReviewReject, "logo missing")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverablePending, d.Status)
	assert.Equal(t, 1, d.Revisions)

	got, err := f.uc.GetCollaboration(ctx, creator, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInProgress, got.State)

	_, err = f.uc.SubmitDeliverable(ctx, creator, c.ID, id, "uri://final")
	require.NoError(t, err)
	_, err = f.uc.ReviewDeliverable(ctx, brand, c.ID, id, domain.ReviewApprove, "")
	require.NoError(t, err)

	got, err = f.uc.GetCollaboration(ctx, creator, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApprovedForPayment, got.State)
	assert.Equal(t, 2, f.countTransitions(domain.StateSubmitted))
}

func TestDuplicateApplicationRejected(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	terms := domain.Terms{Amount: decimal.NewFromInt(2000)}

	_, err := f.uc.SubmitApplication(ctx, creator, "camp-1", creator.ID, terms)
	require.NoError(t, err)
	_, err = f.uc.SubmitApplication(ctx, creator, "camp-1", creator.ID, terms)
	require.ErrorIs(t, err, domain.ErrDuplicateApplication)

	apps, err := f.store.ListApplicationsByCampaign(ctx, "camp-1")
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestSubmitApplicationValidation(t *testing.T) {
	closed := campaign("camp-closed", 1)
	closed.Status = domain.CampaignClosed
	f := newFixture(t, campaign("camp-1", 1), closed)
	ctx := context.Background()

	tests := []struct {
		name       string
		actor      domain.Actor
		campaignID string
		amount     int64
		wantErr    error
	}{
		{"other creator", domain.Actor{ID: "creator-2", Role: domain.RoleCreator}, "camp-1", 2000, domain.ErrUnauthorized},
		{"brand applies", brand, "camp-1", 2000, domain.ErrUnauthorized},
		{"unknown campaign", creator, "camp-x", 2000, domain.ErrNotFound},
		{"closed campaign", creator, "camp-closed", 2000, domain.ErrCampaignClosed},
		{"below budget", creator, "camp-1", 10, domain.ErrInvalidInput},
		{"above budget", creator, "camp-1", 9000, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.SubmitApplication(ctx, tt.actor, tt.campaignID, creator.ID, domain.Terms{Amount: decimal.NewFromInt(tt.amount)})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecideApplicationIsIdempotent(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	app, err := f.uc.SubmitApplication(ctx, creator, "camp-1", creator.ID, domain.Terms{Amount: decimal.NewFromInt(2000)})
	require.NoError(t, err)

	first, err := f.uc.DecideApplication(ctx, brand, app.ID, domain.DecisionAccepted)
	require.NoError(t, err)
	second, err := f.uc.DecideApplication(ctx, brand, app.ID, domain.DecisionAccepted)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = f.uc.DecideApplication(ctx, brand, app.ID, domain.DecisionRejected)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	collabs, err := f.store.ListCollaborationsByCampaign(ctx, "camp-1")
	require.NoError(t, err)
	assert.Len(t, collabs, 1)
}

func TestRejectApplication(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	app, err := f.uc.SubmitApplication(ctx, creator, "camp-1", creator.ID, domain.Terms{Amount: decimal.NewFromInt(2000)})
	require.NoError(t, err)

	_, err = f.uc.DecideApplication(ctx, creator, app.ID, domain.DecisionRejected)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	c, err := f.uc.DecideApplication(ctx, brand, app.ID, domain.DecisionRejected)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = f.uc.DecideApplication(ctx, brand, app.ID, domain.DecisionRejected)
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = f.uc.DecideApplication(ctx, brand, app.ID, domain.DecisionAccepted)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	dash, err := f.uc.GetCreatorDashboard(ctx, creator, creator.ID)
	require.NoError(t, err)
	assert.Len(t, dash.Groups[domain.StateRejected], 1)
}

func TestReleaseEscrowIsIdempotent(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 2500)

	_, err := f.uc.ReleaseEscrow(ctx, brand, c.ID, "k1")
	require.ErrorIs(t, err, domain.ErrOutOfOrderRelease)

	_, err = f.uc.SubmitDeliverable(ctx, creator, c.ID, c.Deliverables[0].ID, "uri://post")
	require.NoError(t, err)
	_, err = f.uc.ReviewDeliverable(ctx, brand, c.ID, c.Deliverables[0].ID, domain.ReviewApprove, "")
	require.NoError(t, err)

	_, err = f.uc.ReleaseEscrow(ctx, brand, c.ID, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.ReleaseEscrow(ctx, creator, c.ID, "k1")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	first, err := f.uc.ReleaseEscrow(ctx, brand, c.ID, "k1")
	require.NoError(t, err)
	second, err := f.uc.ReleaseEscrow(ctx, brand, c.ID, "k1")
	require.NoError(t, err)
	third, err := f.uc.ReleaseEscrow(ctx, admin, c.ID, "k2")
	require.NoError(t, err)

	assert.Equal(t, first.ReleasedAt, second.ReleasedAt)
	assert.Equal(t, "k1", third.ReleaseKey)
	assert.Equal(t, 1, f.countTransitions(domain.StatePaid))
}

// TestConcurrentFinalApprovals races the two last approvals; exactly one
// of them must move the collaboration to approved_for_payment.
func TestConcurrentFinalApprovals(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 2))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 3000)
	for _, d := range c.Deliverables {
		_, err := f.uc.SubmitDeliverable(ctx, creator, c.ID, d.ID, "uri://"+d.ID)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(c.Deliverables))
	for i, d := range c.Deliverables {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.uc.ReviewDeliverable(ctx, brand, c.ID, d.ID, domain.ReviewApprove, "")
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, f.countTransitions(domain.StateApprovedForPayment))

	got, err := f.uc.GetCollaboration(ctx, brand, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApprovedForPayment, got.State)
	assert.Equal(t, domain.EscrowProcessing, got.Escrow.State)
}

func TestConcurrentReleaseReleasesOnce(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 3000)
	_, err := f.uc.SubmitDeliverable(ctx, creator, c.ID, c.Deliverables[0].ID, "uri://post")
	require.NoError(t, err)
	_, err = f.uc.ReviewDeliverable(ctx, brand, c.ID, c.Deliverables[0].ID, domain.ReviewApprove, "")
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			entry, err := f.uc.ReleaseEscrow(ctx, brand, c.ID, "same-key")
			assert.NoError(t, err)
			assert.Equal(t, domain.EscrowReleased, entry.State)
		}()
	}
	wg.Wait()

	released := 0
	for _, e := range f.store.Events() {
		if e.Type == domain.EventEscrowTransitioned && e.To == string(domain.EscrowReleased) {
			released++
		}
	}
	assert.Equal(t, 1, released)
}

func TestCancelDisputesEscrow(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 2000)

	_, err := f.uc.CancelCollaboration(ctx, domain.Actor{ID: "brand-2", Role: domain.RoleBrand}, c.ID, "budget cut")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	got, err := f.uc.CancelCollaboration(ctx, brand, c.ID, " budget cut ")
	require.NoError(t, err)
	assert.Equal(t, domain.StateCancelled, got.State)
	assert.Equal(t, "budget cut", got.CancelReason)
	assert.Equal(t, domain.EscrowDisputed, got.Escrow.State)

	_, err = f.uc.SubmitDeliverable(ctx, creator, c.ID, c.Deliverables[0].ID, "uri://late")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	funnel, err := f.uc.GetBrandFunnel(ctx, admin, "camp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, funnel.Cancelled)
}

func TestFlagEscrowDispute(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 2000)

	_, err := f.uc.FlagEscrowDispute(ctx, creator, c.ID, "  ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	entry, err := f.uc.FlagEscrowDispute(ctx, creator, c.ID, "brand unresponsive")
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowDisputed, entry.State)
	assert.Equal(t, "brand unresponsive", entry.DisputeReason)

	_, err = f.uc.FlagEscrowDispute(ctx, creator, c.ID, "again")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBarterCollaborationCompletesOnApproval(t *testing.T) {
	camp := campaign("camp-b", 1)
	camp.Compensation = domain.CompensationBarter
	f := newFixture(t, camp)
	ctx := context.Background()
	c := f.accepted(t, "camp-b", 0)
	assert.Nil(t, c.Escrow)

	_, err := f.uc.SubmitDeliverable(ctx, creator, c.ID, c.Deliverables[0].ID, "uri://post")
	require.NoError(t, err)
	_, err = f.uc.ReviewDeliverable(ctx, brand, c.ID, c.Deliverables[0].ID, domain.ReviewApprove, "")
	require.NoError(t, err)

	got, err := f.uc.GetCollaboration(ctx, creator, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePaid, got.State)

	history, err := f.uc.GetEscrowHistory(ctx, brand, port.EscrowHistoryFilter{CampaignID: "camp-b"})
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestReadAuthorization(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 2000)
	stranger := domain.Actor{ID: "creator-9", Role: domain.RoleCreator}

	_, err := f.uc.GetCollaboration(ctx, stranger, c.ID)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = f.uc.GetCollaboration(ctx, admin, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.GetCreatorDashboard(ctx, stranger, creator.ID)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = f.uc.GetBrandFunnel(ctx, creator, "camp-1")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = f.uc.GetEscrowHistory(ctx, admin, port.EscrowHistoryFilter{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.GetEscrowHistory(ctx, admin, port.EscrowHistoryFilter{CreatorID: "a", CampaignID: "b"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeliverableOwnership(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 2))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 2000)

	_, err := f.uc.SubmitDeliverable(ctx, creator, c.ID, c.Deliverables[0].ID, "uri://a")
	require.NoError(t, err)
	_, err = f.uc.SubmitDeliverable(ctx, creator, c.ID, c.Deliverables[1].ID, "uri://b")
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "submit by another creator",
			call: func() error {
				_, err := f.uc.SubmitDeliverable(ctx, domain.Actor{ID: "creator-2", Role: domain.RoleCreator}, c.ID, c.Deliverables[0].ID, "uri://x")
				return err
			},
		},
		{
			name: "submit by the brand",
			call: func() error {
				_, err := f.uc.SubmitDeliverable(ctx, brand, c.ID, c.Deliverables[0].ID, "uri://x")
				return err
			},
		},
		{
			name: "review by another brand",
			call: func() error {
				_, err := f.uc.ReviewDeliverable(ctx, domain.Actor{ID: "brand-2", Role: domain.RoleBrand}, c.ID, c.Deliverables[0].ID, domain.ReviewApprove, "")
				return err
			},
		},
		{
			name: "review by the creator",
			call: func() error {
				_, err := f.uc.ReviewDeliverable(ctx, creator, c.ID, c.Deliverables[0].ID, domain.ReviewApprove, "")
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), domain.ErrUnauthorized)
		})
	}

	got, err := f.uc.GetCollaboration(ctx, brand, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSubmitted, got.State)
	for _, d := range got.Deliverables {
		assert.Equal(t, domain.DeliverableSubmitted, d.Status)
		assert.Nil(t, d.ReviewedAt)
	}
}

// TestSubmitApplicationRepositoryError ensures storage failures surface
// unchanged and nothing is written.
func TestSubmitApplicationRepositoryError(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	boom := errors.New("connection reset")

	repo.EXPECT().
		GetCampaign(mock.Anything, "camp-1").
		Return(nil, boom)

	svc := NewLifecycleUseCase(repo)
	_, err := svc.SubmitApplication(context.Background(), creator, "camp-1", creator.ID, domain.Terms{Amount: decimal.NewFromInt(2000)})
	require.ErrorIs(t, err, boom)
}

func TestSubmitApplicationStoresPendingApplication(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	camp := campaign("camp-1", 1)

	repo.EXPECT().
		GetCampaign(mock.Anything, "camp-1").
		Return(&camp, nil)
	repo.EXPECT().
		CreateApplication(mock.Anything, mock.AnythingOfType("*domain.Application")).
		RunAndReturn(func(_ context.Context, app *domain.Application) error {
			assert.Equal(t, domain.DecisionPending, app.Decision)
			assert.Len(t, app.PullEvents(), 1)
			return nil
		})

	svc := NewLifecycleUseCase(repo, WithIDGenerator(func() string { return "app-42" }))
	app, err := svc.SubmitApplication(context.Background(), creator, "camp-1", creator.ID, domain.Terms{Amount: decimal.NewFromInt(2000)})
	require.NoError(t, err)
	assert.Equal(t, "app-42", app.ID)
}

func TestReleaseEscrowUsesReceipts(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	receipts := mocks.NewMockReleaseReceipts(t)
	collab := &domain.Collaboration{ID: "c1", BrandID: brand.ID, CreatorID: creator.ID}
	cached := &domain.EscrowEntry{ID: "e1", CollaborationID: "c1", State: domain.EscrowReleased, ReleaseKey: "k1"}

	repo.EXPECT().
		GetCollaboration(mock.Anything, "c1").
		Return(collab, nil)
	receipts.EXPECT().
		Get(mock.Anything, "k1").
		Return(cached, nil)

	svc := NewLifecycleUseCase(repo, WithReleaseReceipts(receipts))
	entry, err := svc.ReleaseEscrow(context.Background(), brand, "c1", "k1")
	require.NoError(t, err)
	assert.Same(t, cached, entry)
	repo.AssertNotCalled(t, "MutateCollaboration", mock.Anything, mock.Anything, mock.Anything)
}

func TestReleaseEscrowStoresReceipt(t *testing.T) {
	f := newFixture(t, campaign("camp-1", 1))
	ctx := context.Background()
	c := f.accepted(t, "camp-1", 2500)
	_, err := f.uc.SubmitDeliverable(ctx, creator, c.ID, c.Deliverables[0].ID, "uri://post")
	require.NoError(t, err)
	_, err = f.uc.ReviewDeliverable(ctx, brand, c.ID, c.Deliverables[0].ID, domain.ReviewApprove, "")
	require.NoError(t, err)

	receipts := mocks.NewMockReleaseReceipts(t)
	receipts.EXPECT().
		Get(mock.Anything, "k1").
		Return(nil, errors.New("redis down"))
	receipts.EXPECT().
		Put(mock.Anything, "k1", mock.AnythingOfType("domain.EscrowEntry")).
		RunAndReturn(func(_ context.Context, _ string, e domain.EscrowEntry) error {
			assert.Equal(t, domain.EscrowReleased, e.State)
			return nil
		})

	svc := NewLifecycleUseCase(f.store, WithReleaseReceipts(receipts))
	entry, err := svc.ReleaseEscrow(ctx, brand, c.ID, "k1")
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowReleased, entry.State)
}

func TestOperationsAreTraced(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	store := memory.NewStore()
	require.NoError(t, store.UpsertCampaign(context.Background(), campaign("camp-1", 1)))
	f := fixture{store: store, uc: NewLifecycleUseCase(store, WithClock(fixedClock()), WithTracerProvider(tp))}
	ctx := context.Background()

	c := f.accepted(t, "camp-1", 2000)
	_, err := f.uc.GetCollaboration(ctx, creator, c.ID)
	require.NoError(t, err)
	_, err = f.uc.GetCollaboration(ctx, creator, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	var gets []sdktrace.ReadOnlySpan
	for _, span := range rec.Ended() {
		if span.Name() == "lifecycle.GetCollaboration" {
			gets = append(gets, span)
		}
	}
	require.Len(t, gets, 2)
	assert.Equal(t, codes.Unset, gets[0].Status().Code)
	assert.Equal(t, codes.Error, gets[1].Status().Code)
	assert.Contains(t, gets[1].Attributes(), attribute.String("collaboration.id", "missing"))
}
