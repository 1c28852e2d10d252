package db

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port/mocks"
)

func TestLoadCatalogFile(t *testing.T) {
	campaigns, err := LoadCatalogFile("../../deploy/catalog.yaml")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	spring := campaigns[0]
	assert.Equal(t, "camp-spring-launch", spring.ID)
	assert.Equal(t, domain.CampaignActive, spring.Status)
	assert.True(t, decimal.NewFromInt(1000).Equal(spring.BudgetMin))
	assert.True(t, decimal.NewFromInt(5000).Equal(spring.BudgetMax))
	assert.Equal(t, time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), spring.ApplicationDeadline.UTC())
	require.Len(t, spring.Deliverables, 2)
	assert.Equal(t, domain.DeliverableSpec{Type: "story", Quantity: 3, DueOffset: 240 * time.Hour}, spring.Deliverables[1])

	barter := campaigns[1]
	assert.True(t, barter.IsBarter())
	assert.Equal(t, "USD", barter.Currency)
	assert.Equal(t, 1, barter.Deliverables[0].Quantity)
}

func TestLoadCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no deliverables",
			yaml: `campaigns: [{id: c1, brand_id: b1, budget_max: "10"}]`,
		},
		{
			name: "inverted budget",
			yaml: `campaigns: [{id: c1, brand_id: b1, budget_min: "20", budget_max: "10", deliverables: [{type: post}]}]`,
		},
		{
			name: "monetary without budget",
			yaml: `campaigns: [{id: c1, brand_id: b1, deliverables: [{type: post}]}]`,
		},
		{
			name: "bad amount",
			yaml: `campaigns: [{id: c1, brand_id: b1, budget_max: "ten", deliverables: [{type: post}]}]`,
		},
		{
			name: "missing brand",
			yaml: `campaigns: [{id: c1, budget_max: "10", deliverables: [{type: post}]}]`,
		},
		{
			name: "unknown status",
			yaml: `campaigns: [{id: c1, brand_id: b1, status: paused, budget_max: "10", deliverables: [{type: post}]}]`,
		},
		{
			name: "duplicate id",
			yaml: `campaigns: [{id: c1, brand_id: b1, compensation: barter, deliverables: [{type: post}]}, {id: c1, brand_id: b1, compensation: barter, deliverables: [{type: post}]}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.yaml))
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoadCatalogUnknownField(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader(`campaigns: [{id: c1, brand: b1}]`))
	require.Error(t, err)
}

func TestLoadCatalogEmpty(t *testing.T) {
	campaigns, err := LoadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestSeed(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	campaigns := []domain.Campaign{{ID: "c1"}, {ID: "c2"}}

	repo.EXPECT().UpsertCampaign(mock.Anything, campaigns[0]).Return(nil).Once()
	repo.EXPECT().UpsertCampaign(mock.Anything, campaigns[1]).Return(errors.New("db down")).Once()

	err := Seed(context.Background(), repo, campaigns)
	require.ErrorContains(t, err, "seed campaign c2")
}
