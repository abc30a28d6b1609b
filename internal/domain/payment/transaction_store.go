package payment

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const pendingKeyPrefix = "payment:pending:"

// TransactionStore keeps the transaction id issued at initiation so that
// confirmation can be checked against it. Backed by Redis with a TTL; with a
// nil client every method is a no-op and confirmation skips the check.
type TransactionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTransactionStore creates a transaction store. client may be nil.
func NewTransactionStore(client *redis.Client, ttl time.Duration) *TransactionStore {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TransactionStore{client: client, ttl: ttl}
}

// Save records the pending transaction id for a booking.
func (s *TransactionStore) Save(ctx context.Context, bookingID, transactionID string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Set(ctx, pendingKeyPrefix+bookingID, transactionID, s.ttl).Err()
}

// Get returns the pending transaction id for a booking, or "" when none is
// recorded (or no Redis is configured).
func (s *TransactionStore) Get(ctx context.Context, bookingID string) (string, error) {
	if s.client == nil {
		return "", nil
	}
	val, err := s.client.Get(ctx, pendingKeyPrefix+bookingID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

// Clear drops the pending transaction record after confirmation.
func (s *TransactionStore) Clear(ctx context.Context, bookingID string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, pendingKeyPrefix+bookingID).Err()
}
