package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
	"collabhub/internal/core/projection"
)

// LifecycleUseCase provides the collaboration lifecycle and escrow rules.
// It orchestrates the domain aggregates and the ledger repository to
// implement port.LifecycleUseCase.
type LifecycleUseCase struct {
	repo     port.LedgerRepository
	receipts port.ReleaseReceipts
	logger   *slog.Logger
	tracer   trace.Tracer

	now   func() time.Time
	newID func() string
}

// Option customises a LifecycleUseCase.
type Option func(*LifecycleUseCase)

// WithReleaseReceipts enables the release receipt cache.
func WithReleaseReceipts(r port.ReleaseReceipts) Option {
	return func(u *LifecycleUseCase) { u.receipts = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *LifecycleUseCase) { u.logger = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(u *LifecycleUseCase) { u.now = now }
}

// WithTracerProvider takes spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(u *LifecycleUseCase) { u.tracer = tp.Tracer("collabhub/usecase") }
}

// WithIDGenerator overrides id generation.
func WithIDGenerator(newID func() string) Option {
	return func(u *LifecycleUseCase) { u.newID = newID }
}

// NewLifecycleUseCase creates a new usecase with the provided repository.
// Without options it logs nowhere, uses UTC wall time and random UUIDs.
func NewLifecycleUseCase(repo port.LedgerRepository, opts ...Option) *LifecycleUseCase {
	u := &LifecycleUseCase{
		repo:   repo,
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer("collabhub/usecase"),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *LifecycleUseCase) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return u.tracer.Start(ctx, "lifecycle."+op, trace.WithAttributes(attrs...))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// SubmitApplication records a pending application after checking that the
// actor is the applying creator, the campaign is open and the terms fit
// the campaign budget.
func (u *LifecycleUseCase) SubmitApplication(ctx context.Context, actor domain.Actor, campaignID, creatorID string, terms domain.Terms) (_ *domain.Application, err error) {
	ctx, span := u.start(ctx, "SubmitApplication", attribute.String("campaign.id", campaignID))
	defer func() { finish(span, err) }()

	if !actor.IsCreator(creatorID) {
		return nil, domain.ErrUnauthorized
	}
	camp, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, fmt.Errorf("campaign %s: %w", campaignID, domain.ErrNotFound)
	}
	now := u.now()
	if err = camp.AcceptsApplications(now); err != nil {
		return nil, err
	}
	if err = camp.ValidateTerms(terms); err != nil {
		return nil, fmt.Errorf("terms outside campaign budget: %w", err)
	}

	app := domain.NewApplication(u.newID(), campaignID, creatorID, terms, now)
	if err = u.repo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "application submitted",
		slog.String("application_id", app.ID),
		slog.String("campaign_id", campaignID),
		slog.String("creator_id", creatorID),
	)
	return app, nil
}

// DecideApplication settles an application on behalf of the owning brand.
// Accepting creates the collaboration, its deliverables and escrow in one
// unit. Repeating an acceptance returns the collaboration created the
// first time; repeating a rejection returns nil.
func (u *LifecycleUseCase) DecideApplication(ctx context.Context, actor domain.Actor, applicationID string, decision domain.Decision) (_ *domain.Collaboration, err error) {
	ctx, span := u.start(ctx, "DecideApplication", attribute.String("application.id", applicationID))
	defer func() { finish(span, err) }()

	if decision != domain.DecisionAccepted && decision != domain.DecisionRejected {
		return nil, fmt.Errorf("decision %q: %w", decision, domain.ErrInvalidInput)
	}
	app, err := u.repo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, fmt.Errorf("application %s: %w", applicationID, domain.ErrNotFound)
	}
	camp, err := u.repo.GetCampaign(ctx, app.CampaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, fmt.Errorf("campaign %s: %w", app.CampaignID, domain.ErrNotFound)
	}
	if !actor.IsBrand(camp.BrandID) {
		return nil, domain.ErrUnauthorized
	}

	collab, err := u.repo.DecideApplication(ctx, applicationID, func(a *domain.Application, existing *domain.Collaboration) (*domain.Collaboration, error) {
		if existing != nil {
			if decision != domain.DecisionAccepted {
				return nil, fmt.Errorf("application %s already accepted: %w", a.ID, domain.ErrInvalidTransition)
			}
			return existing, nil
		}
		if a.Decision == decision && decision == domain.DecisionRejected {
			return nil, nil
		}
		now := u.now()
		if err := a.Decide(decision, now); err != nil {
			return nil, fmt.Errorf("application %s is %s: %w", a.ID, a.Decision, err)
		}
		if decision == domain.DecisionRejected {
			return nil, nil
		}
		return domain.NewCollaboration(*a, *camp, now, u.newID), nil
	})
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "application decided",
		slog.String("application_id", applicationID),
		slog.String("decision", string(decision)),
	)
	return collab, nil
}

// SubmitDeliverable records content on behalf of the owning creator.
func (u *LifecycleUseCase) SubmitDeliverable(ctx context.Context, actor domain.Actor, collaborationID, deliverableID, contentRef string) (_ *domain.Deliverable, err error) {
	ctx, span := u.start(ctx, "SubmitDeliverable",
		attribute.String("collaboration.id", collaborationID),
		attribute.String("deliverable.id", deliverableID),
	)
	defer func() { finish(span, err) }()

	var out domain.Deliverable
	c, err := u.repo.MutateCollaboration(ctx, collaborationID, func(c *domain.Collaboration) error {
		if !actor.IsCreator(c.CreatorID) {
			return domain.ErrUnauthorized
		}
		d, err := c.SubmitDeliverable(deliverableID, contentRef, u.now())
		if err != nil {
			return err
		}
		out = *d
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.logState(ctx, "deliverable submitted", c, deliverableID)
	return &out, nil
}

// ReviewDeliverable applies the owning brand's verdict.
func (u *LifecycleUseCase) ReviewDeliverable(ctx context.Context, actor domain.Actor, collaborationID, deliverableID string, decision domain.ReviewDecision, note string) (_ *domain.Deliverable, err error) {
	ctx, span := u.start(ctx, "ReviewDeliverable",
		attribute.String("collaboration.id", collaborationID),
		attribute.String("deliverable.id", deliverableID),
		attribute.String("review.decision", string(decision)),
	)
	defer func() { finish(span, err) }()

	var out domain.Deliverable
	c, err := u.repo.MutateCollaboration(ctx, collaborationID, func(c *domain.Collaboration) error {
		if !actor.IsBrand(c.BrandID) {
			return domain.ErrUnauthorized
		}
		d, err := c.ReviewDeliverable(deliverableID, decision, note, u.now())
		if err != nil {
			return err
		}
		out = *d
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.logState(ctx, "deliverable reviewed", c, deliverableID)
	return &out, nil
}

// CancelCollaboration ends a collaboration on behalf of either party.
func (u *LifecycleUseCase) CancelCollaboration(ctx context.Context, actor domain.Actor, collaborationID, reason string) (_ *domain.Collaboration, err error) {
	ctx, span := u.start(ctx, "CancelCollaboration", attribute.String("collaboration.id", collaborationID))
	defer func() { finish(span, err) }()

	c, err := u.repo.MutateCollaboration(ctx, collaborationID, func(c *domain.Collaboration) error {
		if !isParty(actor, c) {
			return domain.ErrUnauthorized
		}
		return c.Cancel(strings.TrimSpace(reason), u.now())
	})
	if err != nil {
		return nil, err
	}
	u.logState(ctx, "collaboration cancelled", c, "")
	return c, nil
}

// ReleaseEscrow releases processing funds on behalf of the owning brand
// or an admin. A request for an already released entry succeeds with the
// stored record.
func (u *LifecycleUseCase) ReleaseEscrow(ctx context.Context, actor domain.Actor, collaborationID, idempotencyKey string) (_ *domain.EscrowEntry, err error) {
	ctx, span := u.start(ctx, "ReleaseEscrow", attribute.String("collaboration.id", collaborationID))
	defer func() { finish(span, err) }()

	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey == "" {
		return nil, fmt.Errorf("idempotency key required: %w", domain.ErrInvalidInput)
	}
	current, err := u.repo.GetCollaboration(ctx, collaborationID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("collaboration %s: %w", collaborationID, domain.ErrNotFound)
	}
	if !actor.IsBrand(current.BrandID) && !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}

	if u.receipts != nil {
		cached, err := u.receipts.Get(ctx, idempotencyKey)
		if err != nil {
			u.logger.WarnContext(ctx, "release receipt lookup failed", slog.Any("error", err))
		} else if cached != nil && cached.CollaborationID == collaborationID {
			span.SetAttributes(attribute.Bool("escrow.receipt_hit", true))
			return cached, nil
		}
	}
	if current.Escrow != nil && current.Escrow.State == domain.EscrowReleased {
		return current.Escrow, nil
	}

	var out domain.EscrowEntry
	c, err := u.repo.MutateCollaboration(ctx, collaborationID, func(c *domain.Collaboration) error {
		e, err := c.ReleaseEscrow(idempotencyKey, u.now())
		if err != nil {
			return err
		}
		out = *e
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out.ReleaseKey != idempotencyKey {
		u.logger.WarnContext(ctx, "escrow already released under another key",
			slog.String("collaboration_id", collaborationID),
			slog.String("escrow_id", out.ID),
		)
	}
	if u.receipts != nil {
		if err := u.receipts.Put(ctx, idempotencyKey, out); err != nil {
			u.logger.WarnContext(ctx, "release receipt store failed", slog.Any("error", err))
		}
	}
	u.logState(ctx, "escrow released", c, "")
	return &out, nil
}

// FlagEscrowDispute freezes escrow on behalf of either party.
func (u *LifecycleUseCase) FlagEscrowDispute(ctx context.Context, actor domain.Actor, collaborationID, reason string) (_ *domain.EscrowEntry, err error) {
	ctx, span := u.start(ctx, "FlagEscrowDispute", attribute.String("collaboration.id", collaborationID))
	defer func() { finish(span, err) }()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("dispute reason required: %w", domain.ErrInvalidInput)
	}
	var out domain.EscrowEntry
	c, err := u.repo.MutateCollaboration(ctx, collaborationID, func(c *domain.Collaboration) error {
		if !isParty(actor, c) {
			return domain.ErrUnauthorized
		}
		e, err := c.FlagDispute(reason, u.now())
		if err != nil {
			return err
		}
		out = *e
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.logState(ctx, "escrow disputed", c, "")
	return &out, nil
}

// GetCollaboration returns a collaboration to either party or an admin.
func (u *LifecycleUseCase) GetCollaboration(ctx context.Context, actor domain.Actor, collaborationID string) (_ *domain.Collaboration, err error) {
	ctx, span := u.start(ctx, "GetCollaboration", attribute.String("collaboration.id", collaborationID))
	defer func() { finish(span, err) }()

	c, err := u.repo.GetCollaboration(ctx, collaborationID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("collaboration %s: %w", collaborationID, domain.ErrNotFound)
	}
	if !isParty(actor, c) && !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return c, nil
}

// GetCreatorDashboard returns the creator's dashboard to the creator or
// an admin.
func (u *LifecycleUseCase) GetCreatorDashboard(ctx context.Context, actor domain.Actor, creatorID string) (_ *port.CreatorDashboard, err error) {
	ctx, span := u.start(ctx, "GetCreatorDashboard")
	defer func() { finish(span, err) }()

	if !actor.IsCreator(creatorID) && !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	apps, err := u.repo.ListApplicationsByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	collabs, err := u.repo.ListCollaborationsByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	return projection.CreatorDashboard(creatorID, apps, collabs), nil
}

// GetBrandFunnel returns the campaign funnel to the owning brand or an
// admin.
func (u *LifecycleUseCase) GetBrandFunnel(ctx context.Context, actor domain.Actor, campaignID string) (_ *port.BrandFunnel, err error) {
	ctx, span := u.start(ctx, "GetBrandFunnel", attribute.String("campaign.id", campaignID))
	defer func() { finish(span, err) }()

	if err = u.authorizeCampaign(ctx, actor, campaignID); err != nil {
		return nil, err
	}
	apps, err := u.repo.ListApplicationsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	collabs, err := u.repo.ListCollaborationsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return projection.BrandFunnel(campaignID, apps, collabs), nil
}

// GetEscrowHistory lists escrow transactions for one creator or one
// campaign.
func (u *LifecycleUseCase) GetEscrowHistory(ctx context.Context, actor domain.Actor, filter port.EscrowHistoryFilter) (_ []port.EscrowTransaction, err error) {
	ctx, span := u.start(ctx, "GetEscrowHistory")
	defer func() { finish(span, err) }()

	var collabs []domain.Collaboration
	switch {
	case filter.CreatorID != "" && filter.CampaignID == "":
		if !actor.IsCreator(filter.CreatorID) && !actor.IsAdmin() {
			return nil, domain.ErrUnauthorized
		}
		collabs, err = u.repo.ListCollaborationsByCreator(ctx, filter.CreatorID)
	case filter.CampaignID != "" && filter.CreatorID == "":
		if err = u.authorizeCampaign(ctx, actor, filter.CampaignID); err != nil {
			return nil, err
		}
		collabs, err = u.repo.ListCollaborationsByCampaign(ctx, filter.CampaignID)
	default:
		return nil, fmt.Errorf("exactly one of creator or campaign required: %w", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	return projection.EscrowHistory(collabs), nil
}

func (u *LifecycleUseCase) authorizeCampaign(ctx context.Context, actor domain.Actor, campaignID string) error {
	camp, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if camp == nil {
		return fmt.Errorf("campaign %s: %w", campaignID, domain.ErrNotFound)
	}
	if !actor.IsBrand(camp.BrandID) && !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}
	return nil
}

func isParty(actor domain.Actor, c *domain.Collaboration) bool {
	return actor.IsCreator(c.CreatorID) || actor.IsBrand(c.BrandID)
}

func (u *LifecycleUseCase) logState(ctx context.Context, msg string, c *domain.Collaboration, deliverableID string) {
	attrs := []any{
		slog.String("collaboration_id", c.ID),
		slog.String("state", string(c.State)),
		slog.Int64("version", c.Version),
	}
	if deliverableID != "" {
		attrs = append(attrs, slog.String("deliverable_id", deliverableID))
	}
	if c.Escrow != nil {
		attrs = append(attrs, slog.String("escrow_state", string(c.Escrow.State)))
	}
	u.logger.InfoContext(ctx, msg, attrs...)
}
