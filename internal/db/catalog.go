package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
)

type catalogFile struct {
	Campaigns []catalogCampaign `yaml:"campaigns"`
}

type catalogCampaign struct {
	ID                  string               `yaml:"id"`
	BrandID             string               `yaml:"brand_id"`
	Title               string               `yaml:"title"`
	BudgetMin           string               `yaml:"budget_min"`
	BudgetMax           string               `yaml:"budget_max"`
	Currency            string               `yaml:"currency"`
	Compensation        string               `yaml:"compensation"`
	Status              string               `yaml:"status"`
	ApplicationDeadline time.Time            `yaml:"application_deadline"`
	ContentDeadline     time.Time            `yaml:"content_deadline"`
	Deliverables        []catalogDeliverable `yaml:"deliverables"`
}

type catalogDeliverable struct {
	Type     string        `yaml:"type"`
	Quantity int           `yaml:"quantity"`
	DueIn    time.Duration `yaml:"due_in"`
}

// LoadCatalogFile reads a YAML campaign catalog from path.
func LoadCatalogFile(path string) ([]domain.Campaign, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog decodes and validates a YAML campaign catalog. Status
// defaults to active, compensation to monetary and currency to USD.
func LoadCatalog(r io.Reader) ([]domain.Campaign, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Campaigns))
	out := make([]domain.Campaign, 0, len(file.Campaigns))
	for i, raw := range file.Campaigns {
		c, err := raw.campaign()
		if err != nil {
			return nil, fmt.Errorf("catalog campaign %d (%s): %w", i, raw.ID, err)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("catalog campaign %s listed twice: %w", c.ID, domain.ErrInvalidInput)
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

func (raw catalogCampaign) campaign() (domain.Campaign, error) {
	c := domain.Campaign{
		ID:                  raw.ID,
		BrandID:             raw.BrandID,
		Title:               raw.Title,
		Currency:            raw.Currency,
		Compensation:        domain.Compensation(raw.Compensation),
		Status:              domain.CampaignStatus(raw.Status),
		ApplicationDeadline: raw.ApplicationDeadline,
		ContentDeadline:     raw.ContentDeadline,
	}
	if c.ID == "" || c.BrandID == "" {
		return c, fmt.Errorf("id and brand_id are required: %w", domain.ErrInvalidInput)
	}
	if c.Currency == "" {
		c.Currency = "USD"
	}
	switch c.Compensation {
	case "":
		c.Compensation = domain.CompensationMonetary
	case domain.CompensationMonetary, domain.CompensationBarter:
	default:
		return c, fmt.Errorf("compensation %q: %w", raw.Compensation, domain.ErrInvalidInput)
	}
	switch c.Status {
	case "":
		c.Status = domain.CampaignActive
	case domain.CampaignDraft, domain.CampaignActive, domain.CampaignClosed:
	default:
		return c, fmt.Errorf("status %q: %w", raw.Status, domain.ErrInvalidInput)
	}

	var err error
	if c.BudgetMin, err = parseAmount(raw.BudgetMin); err != nil {
		return c, err
	}
	if c.BudgetMax, err = parseAmount(raw.BudgetMax); err != nil {
		return c, err
	}
	if c.BudgetMin.GreaterThan(c.BudgetMax) {
		return c, fmt.Errorf("budget_min exceeds budget_max: %w", domain.ErrInvalidInput)
	}
	if !c.IsBarter() && !c.BudgetMax.IsPositive() {
		return c, fmt.Errorf("monetary campaign needs a positive budget: %w", domain.ErrInvalidInput)
	}

	if len(raw.Deliverables) == 0 {
		return c, fmt.Errorf("at least one deliverable is required: %w", domain.ErrInvalidInput)
	}
	for _, d := range raw.Deliverables {
		if d.Type == "" || d.DueIn < 0 {
			return c, fmt.Errorf("deliverable needs a type and a non-negative due_in: %w", domain.ErrInvalidInput)
		}
		if d.Quantity <= 0 {
			d.Quantity = 1
		}
		c.Deliverables = append(c.Deliverables, domain.DeliverableSpec{Type: d.Type, Quantity: d.Quantity, DueOffset: d.DueIn})
	}
	return c, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return d, fmt.Errorf("amount %q: %w", s, domain.ErrInvalidInput)
	}
	if d.IsNegative() {
		return d, fmt.Errorf("amount %q is negative: %w", s, domain.ErrInvalidInput)
	}
	return d, nil
}

// Seed upserts every campaign into the ledger.
func Seed(ctx context.Context, repo port.LedgerRepository, campaigns []domain.Campaign) error {
	for _, c := range campaigns {
		if err := repo.UpsertCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %s: %w", c.ID, err)
		}
	}
	return nil
}
