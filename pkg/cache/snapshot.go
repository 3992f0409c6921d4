package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jordanlanch/realtycrm/pkg/models"
)

const snapshotKey = "leads:snapshot"

// SnapshotStore keeps the last successfully fetched lead set so the
// dashboard survives store outages. Write policy is overwrite on
// successful fetch only; a failed fetch never touches the snapshot.
type SnapshotStore struct {
	cache *Client
}

// NewSnapshotStore creates a snapshot store on top of the Redis client
func NewSnapshotStore(cache *Client) *SnapshotStore {
	return &SnapshotStore{cache: cache}
}

// Save overwrites the snapshot with a freshly fetched lead set. Snapshots
// never expire; they are only replaced by the next successful fetch.
func (s *SnapshotStore) Save(ctx context.Context, leads []models.Lead) error {
	payload, err := json.Marshal(leads)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return s.cache.Set(ctx, snapshotKey, payload, 0)
}

// Load returns the last known-good lead set. A missing snapshot is not an
// error; it returns an empty set with ok=false.
func (s *SnapshotStore) Load(ctx context.Context) ([]models.Lead, bool, error) {
	raw, err := s.cache.Get(ctx, snapshotKey)
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var leads []models.Lead
	if err := json.Unmarshal([]byte(raw), &leads); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return leads, true, nil
}
