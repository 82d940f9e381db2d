// Package idempotency binds client-supplied idempotency keys to committed orders.
package idempotency

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"
)

// ErrInFlight is returned by Claim when another request holds the key but has
// not finished yet.
var ErrInFlight = errors.New("request with this idempotency key is in progress")

const pendingMarker = "pending"

// Store claims keys before an order is committed and records the order id after.
type Store interface {
	// Claim reserves key. It returns (0, nil) when the caller now owns the key,
	// (orderID, nil) when the key is already bound to a committed order, and
	// ErrInFlight when another request still owns it.
	Claim(ctx context.Context, key string) (uint, error)
	// Complete binds a claimed key to the committed order.
	Complete(ctx context.Context, key string, orderID uint) error
	// Release forgets a claimed key so the request may be retried.
	Release(ctx context.Context, key string) error
}

func parseValue(v string) (uint, error) {
	if v == pendingMarker {
		return 0, ErrInFlight
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore keeps keys in process memory. It is used when no Redis is configured.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an in-process store whose keys expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Claim(_ context.Context, key string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.entries[key]; ok && now.Before(e.expiresAt) {
		return parseValue(e.value)
	}
	s.entries[key] = memoryEntry{value: pendingMarker, expiresAt: now.Add(s.ttl)}
	return 0, nil
}

func (s *MemoryStore) Complete(_ context.Context, key string, orderID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{
		value:     strconv.FormatUint(uint64(orderID), 10),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
