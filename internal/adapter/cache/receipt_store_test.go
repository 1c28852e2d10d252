package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabhub/internal/core/domain"
)

// Set REDIS_TEST_ADDR (for example localhost:6379) to run against a live
// server.
func testClientAddr(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	return addr
}

func TestReceiptStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	client, err := Connect(ctx, testClientAddr(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := NewReceiptStore(client, time.Minute)
	key := uuid.NewString()

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	released := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	entry := domain.EscrowEntry{
		ID:              "esc-1",
		CollaborationID: "c1",
		Amount:          decimal.RequireFromString("2500.00"),
		Currency:        "USD",
		State:           domain.EscrowReleased,
		ReleaseKey:      key,
		ReleasedAt:      &released,
	}
	require.NoError(t, store.Put(ctx, key, entry))

	second := entry
	second.ID = "esc-2"
	require.NoError(t, store.Put(ctx, key, second))

	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "esc-1", got.ID)
	assert.True(t, got.Amount.Equal(entry.Amount))
	assert.True(t, got.ReleasedAt.Equal(released))
}

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(context.Background(), "redis://:bad@host:notaport/0")
	require.Error(t, err)
}
