// Package cache keeps escrow release receipts in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"collabhub/internal/core/domain"
)

const receiptPrefix = "collabhub:release:"

// Connect initializes a Redis client from a redis:// URL or host:port and
// checks that the server answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// ReceiptStore implements port.ReleaseReceipts with one JSON string per
// idempotency key.
type ReceiptStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReceiptStore returns a store whose receipts expire after ttl. A zero
// ttl keeps receipts forever.
func NewReceiptStore(client *redis.Client, ttl time.Duration) *ReceiptStore {
	return &ReceiptStore{client: client, ttl: ttl}
}

func (s *ReceiptStore) Get(ctx context.Context, key string) (*domain.EscrowEntry, error) {
	raw, err := s.client.Get(ctx, receiptPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entry domain.EscrowEntry
	if err = json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode release receipt %s: %w", key, err)
	}
	return &entry, nil
}

// Put stores the receipt unless one already exists for key.
func (s *ReceiptStore) Put(ctx context.Context, key string, entry domain.EscrowEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.SetNX(ctx, receiptPrefix+key, raw, s.ttl).Err()
}
