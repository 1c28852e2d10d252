package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"collabhub/internal/adapter/memory"
	"collabhub/internal/adapter/usecase"
	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
	"collabhub/internal/core/port/mocks"
)

const secret = "test-secret"

var (
	brand   = domain.Actor{ID: "brand-1", Role: domain.RoleBrand}
	creator = domain.Actor{ID: "creator-1", Role: domain.RoleCreator}
)

func newTestHandler(svc port.LifecycleUseCase) *Handler {
	return NewHandler(svc, NewAuthenticator(secret, "collabhub"), slog.New(slog.DiscardHandler), time.Second)
}

func token(t *testing.T, actor domain.Actor) string {
	t.Helper()
	raw, err := NewAuthenticator(secret, "collabhub").Sign(actor, time.Hour)
	require.NoError(t, err)
	return raw
}

func do(t *testing.T, h http.Handler, method, path string, actor *domain.Actor, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if actor != nil {
		req.Header.Set("Authorization", "Bearer "+token(t, *actor))
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error.Code
}

func TestHealthzNeedsNoToken(t *testing.T) {
	h := newTestHandler(mocks.NewMockLifecycleUseCase(t))
	rec := do(t, h.Router(), http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMissingOrInvalidToken(t *testing.T) {
	h := newTestHandler(mocks.NewMockLifecycleUseCase(t))

	rec := do(t, h.Router(), http.MethodGet, "/api/v1/collaborations/c1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/collaborations/c1", nil)
	other, err := NewAuthenticator("other-secret", "collabhub").Sign(brand, time.Hour)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+other)
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorRejectsUnknownRoleAndIssuer(t *testing.T) {
	auth := NewAuthenticator(secret, "collabhub")

	raw, err := auth.Sign(domain.Actor{ID: "x", Role: "guest"}, time.Hour)
	require.NoError(t, err)
	_, err = auth.Parse(raw)
	require.Error(t, err)

	raw, err = NewAuthenticator(secret, "elsewhere").Sign(brand, time.Hour)
	require.NoError(t, err)
	_, err = auth.Parse(raw)
	require.Error(t, err)

	raw, err = auth.Sign(brand, -time.Hour)
	require.NoError(t, err)
	_, err = auth.Parse(raw)
	require.Error(t, err)

	raw, err = auth.Sign(creator, time.Hour)
	require.NoError(t, err)
	actor, err := auth.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, creator, actor)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
		{"out of order", domain.ErrOutOfOrderRelease, http.StatusConflict, "out_of_order_release"},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
		{"unexpected", errors.New("db exploded"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLifecycleUseCase(t)
			svc.EXPECT().
				GetCollaboration(mock.Anything, brand, "c1").
				Return(nil, tt.err)

			rec := do(t, newTestHandler(svc).Router(), http.MethodGet, "/api/v1/collaborations/c1", &brand, "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestSubmitApplicationUsesCallerAsCreator(t *testing.T) {
	svc := mocks.NewMockLifecycleUseCase(t)
	svc.EXPECT().
		SubmitApplication(mock.Anything, creator, "camp-1", creator.ID, mock.AnythingOfType("domain.Terms")).
		RunAndReturn(func(_ context.Context, _ domain.Actor, campaignID, creatorID string, terms domain.Terms) (*domain.Application, error) {
			assert.True(t, terms.Amount.Equal(decimal.NewFromInt(2500)))
			return &domain.Application{ID: "app-1", CampaignID: campaignID, CreatorID: creatorID, Decision: domain.DecisionPending}, nil
		})

	rec := do(t, newTestHandler(svc).Router(), http.MethodPost, "/api/v1/campaigns/camp-1/applications", &creator,
		`{"amount":"2500","message":"hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var app domain.Application
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&app))
	assert.Equal(t, "app-1", app.ID)
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	h := newTestHandler(mocks.NewMockLifecycleUseCase(t))
	rec := do(t, h.Router(), http.MethodPost, "/api/v1/applications/app-1/decision", &brand, `{"decision":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", errorCode(t, rec))
}

func TestRejectionReturnsNoContent(t *testing.T) {
	svc := mocks.NewMockLifecycleUseCase(t)
	svc.EXPECT().
		DecideApplication(mock.Anything, brand, "app-1", domain.DecisionRejected).
		Return(nil, nil)

	rec := do(t, newTestHandler(svc).Router(), http.MethodPost, "/api/v1/applications/app-1/decision", &brand, `{"decision":"rejected"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReleasePassesIdempotencyKey(t *testing.T) {
	svc := mocks.NewMockLifecycleUseCase(t)
	svc.EXPECT().
		ReleaseEscrow(mock.Anything, brand, "c1", "key-1").
		Return(&domain.EscrowEntry{ID: "e1", State: domain.EscrowReleased}, nil)

	rec := do(t, newTestHandler(svc).Router(), http.MethodPost, "/api/v1/collaborations/c1/escrow/release", &brand, "",
		"Idempotency-Key", "key-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"released"`)
}

func TestEscrowHistoryQuery(t *testing.T) {
	svc := mocks.NewMockLifecycleUseCase(t)
	svc.EXPECT().
		GetEscrowHistory(mock.Anything, creator, port.EscrowHistoryFilter{CreatorID: creator.ID}).
		Return([]port.EscrowTransaction{{EscrowID: "e1"}}, nil)

	rec := do(t, newTestHandler(svc).Router(), http.MethodGet, "/api/v1/escrow/history?creator_id=creator-1", &creator, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"e1"`)
}

func TestPanicIsRecovered(t *testing.T) {
	svc := mocks.NewMockLifecycleUseCase(t)
	svc.EXPECT().
		GetBrandFunnel(mock.Anything, brand, "camp-1").
		RunAndReturn(func(context.Context, domain.Actor, string) (*port.BrandFunnel, error) {
			panic("boom")
		})

	rec := do(t, newTestHandler(svc).Router(), http.MethodGet, "/api/v1/campaigns/camp-1/funnel", &brand, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestLifecycleOverHTTP drives the full flow through the router against
// the in-memory ledger.
func TestLifecycleOverHTTP(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.UpsertCampaign(context.Background(), domain.Campaign{
		ID:           "camp-1",
		BrandID:      brand.ID,
		BudgetMin:    decimal.NewFromInt(1000),
		BudgetMax:    decimal.NewFromInt(5000),
		Currency:     "USD",
		Compensation: domain.CompensationMonetary,
		Status:       domain.CampaignActive,
		Deliverables: []domain.DeliverableSpec{{Type: "reel", Quantity: 1}},
	}))
	router := newTestHandler(usecase.NewLifecycleUseCase(store)).Router()

	rec := do(t, router, http.MethodPost, "/api/v1/campaigns/camp-1/applications", &creator, `{"amount":2500}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var app domain.Application
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&app))

	rec = do(t, router, http.MethodPost, "/api/v1/campaigns/camp-1/applications", &creator, `{"amount":2500}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/applications/"+app.ID+"/decision", &brand, `{"decision":"accepted"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var collab domain.Collaboration
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&collab))
	require.Len(t, collab.Deliverables, 1)
	base := "/api/v1/collaborations/" + collab.ID
	deliverable := base + "/deliverables/" + collab.Deliverables[0].ID

	rec = do(t, router, http.MethodPost, base+"/escrow/release", &brand, "", "Idempotency-Key", "k1")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPost, deliverable+"/submission", &creator, `{"content_ref":"https://cdn.example/reel.mp4"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, deliverable+"/review", &brand, `{"decision":"approve"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for i := 0; i < 2; i++ {
		rec = do(t, router, http.MethodPost, base+"/escrow/release", &brand, "", "Idempotency-Key", "k1")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = do(t, router, http.MethodGet, base, &creator, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&collab))
	assert.Equal(t, domain.StatePaid, collab.State)
	assert.Equal(t, domain.EscrowReleased, collab.Escrow.State)

	rec = do(t, router, http.MethodGet, "/api/v1/creators/creator-1/dashboard", &creator, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var dash port.CreatorDashboard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dash))
	assert.True(t, dash.PaidOut.Equal(decimal.NewFromInt(2500)))
}
