package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the publication status of a campaign.
type CampaignStatus string

const (
	CampaignDraft  CampaignStatus = "draft"
	CampaignActive CampaignStatus = "active"
	CampaignClosed CampaignStatus = "closed"
)

// Compensation describes how creators are paid for a campaign. Barter
// campaigns pay in kind and never hold escrow.
type Compensation string

const (
	CompensationMonetary Compensation = "monetary"
	CompensationBarter   Compensation = "barter"
)

// DeliverableSpec is one content obligation of a campaign. DueOffset is
// measured from the moment the application is accepted.
type DeliverableSpec struct {
	Type      string        `json:"type"`
	Quantity  int           `json:"quantity"`
	DueOffset time.Duration `json:"due_offset"`
}

// Campaign represents a brand offer. Amounts are decimal values in
// Currency. A campaign is immutable once active except for Status.
type Campaign struct {
	ID                  string            `json:"id"`
	BrandID             string            `json:"brand_id"`
	Title               string            `json:"title"`
	BudgetMin           decimal.Decimal   `json:"budget_min"`
	BudgetMax           decimal.Decimal   `json:"budget_max"`
	Currency            string            `json:"currency"`
	Compensation        Compensation      `json:"compensation"`
	Deliverables        []DeliverableSpec `json:"deliverables"`
	ApplicationDeadline time.Time         `json:"application_deadline"`
	ContentDeadline     time.Time         `json:"content_deadline"`
	Status              CampaignStatus    `json:"status"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// IsBarter reports whether the campaign pays in kind.
func (c Campaign) IsBarter() bool {
	return c.Compensation == CompensationBarter
}

// AcceptsApplications returns ErrCampaignClosed unless the campaign is
// active and its application deadline (when set) has not passed.
func (c Campaign) AcceptsApplications(now time.Time) error {
	if c.Status != CampaignActive {
		return ErrCampaignClosed
	}
	if !c.ApplicationDeadline.IsZero() && now.After(c.ApplicationDeadline) {
		return ErrCampaignClosed
	}
	return nil
}

// ValidateTerms checks proposed terms against the campaign budget. Barter
// campaigns accept no amount; monetary campaigns require an amount within
// [BudgetMin, BudgetMax].
func (c Campaign) ValidateTerms(t Terms) error {
	if c.IsBarter() {
		if !t.Amount.IsZero() {
			return ErrInvalidInput
		}
		return nil
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidInput
	}
	if t.Amount.LessThan(c.BudgetMin) || t.Amount.GreaterThan(c.BudgetMax) {
		return ErrInvalidInput
	}
	return nil
}
