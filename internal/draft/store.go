package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Snapshot is the contact/address draft written at submission start and read
// back to seed the next checkout session.
type Snapshot struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	DetailedAddress string `json:"detailed_address"`
	PaymentMethod   string `json:"payment_method"`
	District        string `json:"district"`
	City            string `json:"city"`
	SavedAt         int64  `json:"saved_at"`
}

// Store is the durable key-value boundary for draft snapshots.
type Store interface {
	Put(ctx context.Context, userID uint, snap Snapshot) error
	Get(ctx context.Context, userID uint) (Snapshot, bool, error)
}

const keyPrefix = "checkout:draft:"

// Drafts are kept long enough to span sessions, not forever.
const snapshotTTL = 30 * 24 * time.Hour

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (s *RedisStore) Put(ctx context.Context, userID uint, snap Snapshot) error {
	snap.SavedAt = time.Now().Unix()
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, key(userID), data, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, userID uint) (Snapshot, bool, error) {
	data, err := s.client.Get(ctx, key(userID)).Bytes()
	if err == redis.Nil {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to load draft: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to decode draft: %w", err)
	}
	return snap, true, nil
}

func key(userID uint) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

// MemoryStore backs tests and local runs without redis.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[uint]Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[uint]Snapshot)}
}

func (s *MemoryStore) Put(_ context.Context, userID uint, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap.SavedAt = time.Now().Unix()
	s.snaps[userID] = snap
	return nil
}

func (s *MemoryStore) Get(_ context.Context, userID uint) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[userID]
	return snap, ok, nil
}
