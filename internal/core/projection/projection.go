// Package projection folds ledger records into read-only views. The
// functions are pure: the same ledger state always yields the same view,
// and nothing derived here is stored.
package projection

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
)

// CreatorDashboard groups a creator's applications and collaborations by
// lifecycle state and sums escrow amounts by escrow state. Accepted
// applications are represented by their collaboration.
func CreatorDashboard(creatorID string, apps []domain.Application, collabs []domain.Collaboration) *port.CreatorDashboard {
	out := &port.CreatorDashboard{
		CreatorID: creatorID,
		Groups:    make(map[domain.CollaborationState][]port.CollaborationSummary),
		Earnings:  make(map[domain.EscrowState]decimal.Decimal),
		Pending:   decimal.Zero,
		PaidOut:   decimal.Zero,
	}

	for _, a := range apps {
		var state domain.CollaborationState
		switch a.Decision {
		case domain.DecisionPending:
			state = domain.StateApplied
		case domain.DecisionRejected:
			state = domain.StateRejected
		default:
			continue
		}
		updated := a.SubmittedAt
		if a.DecidedAt != nil {
			updated = *a.DecidedAt
		}
		out.Groups[state] = append(out.Groups[state], port.CollaborationSummary{
			ApplicationID: a.ID,
			CampaignID:    a.CampaignID,
			State:         state,
			Amount:        a.Terms.Amount,
			UpdatedAt:     updated,
		})
	}

	for _, c := range collabs {
		s := summarize(c)
		out.Groups[c.State] = append(out.Groups[c.State], s)
		if c.Escrow == nil {
			continue
		}
		e := c.Escrow
		out.Earnings[e.State] = out.Earnings[e.State].Add(e.Amount)
		switch {
		case e.State.Outstanding():
			out.Pending = out.Pending.Add(e.Amount)
		case e.State == domain.EscrowReleased:
			out.PaidOut = out.PaidOut.Add(e.Amount)
		}
	}

	for state := range out.Groups {
		slices.SortStableFunc(out.Groups[state], func(a, b port.CollaborationSummary) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	}
	return out
}

func summarize(c domain.Collaboration) port.CollaborationSummary {
	s := port.CollaborationSummary{
		CollaborationID:   c.ID,
		ApplicationID:     c.ApplicationID,
		CampaignID:        c.CampaignID,
		State:             c.State,
		Amount:            c.Amount,
		Currency:          c.Currency,
		DeliverablesDone:  domain.CountStatus(c.Deliverables, domain.DeliverableApproved),
		DeliverablesTotal: len(c.Deliverables),
		UpdatedAt:         c.UpdatedAt,
	}
	if c.Escrow != nil {
		s.EscrowState = c.Escrow.State
	}
	return s
}

// BrandFunnel counts a campaign's progression. Approved counts every
// collaboration (each one was created by an acceptance), Submitted counts
// collaborations that entered review at least once.
func BrandFunnel(campaignID string, apps []domain.Application, collabs []domain.Collaboration) *port.BrandFunnel {
	out := &port.BrandFunnel{CampaignID: campaignID, Applied: len(apps)}
	for _, a := range apps {
		if a.Decision == domain.DecisionRejected {
			out.Rejected++
		}
	}
	for _, c := range collabs {
		out.Approved++
		if _, ok := c.EnteredAt(domain.StateSubmitted); ok {
			out.Submitted++
		}
		switch c.State {
		case domain.StatePaid:
			out.Paid++
		case domain.StateCancelled:
			out.Cancelled++
		}
	}
	return out
}

// EscrowHistory joins collaborations with their escrow entries, most
// recent transition first. Collaborations without escrow are skipped.
func EscrowHistory(collabs []domain.Collaboration) []port.EscrowTransaction {
	out := make([]port.EscrowTransaction, 0, len(collabs))
	for _, c := range collabs {
		if c.Escrow == nil {
			continue
		}
		e := c.Escrow
		last := e.LastTransitionAt()
		if n := len(c.Transitions); n > 0 && c.Transitions[n-1].At.After(last) {
			last = c.Transitions[n-1].At
		}
		out = append(out, port.EscrowTransaction{
			EscrowID:           e.ID,
			CollaborationID:    c.ID,
			CampaignID:         c.CampaignID,
			CreatorID:          c.CreatorID,
			BrandID:            c.BrandID,
			Amount:             e.Amount,
			Currency:           e.Currency,
			State:              e.State,
			CollaborationState: c.State,
			CreatedAt:          e.CreatedAt,
			LastTransitionAt:   last,
			ReleasedAt:         e.ReleasedAt,
		})
	}
	slices.SortStableFunc(out, func(a, b port.EscrowTransaction) int {
		if c := b.LastTransitionAt.Compare(a.LastTransitionAt); c != 0 {
			return c
		}
		return cmp.Compare(a.EscrowID, b.EscrowID)
	})
	return out
}
