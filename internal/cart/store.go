package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront-be/internal/kvstore"
)

// Store persists one aggregate per user in the keyed storage collaborator.
type Store struct {
	kv kvstore.Store
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// Load returns the user's aggregate, empty when nothing was saved yet.
func (s *Store) Load(ctx context.Context, userID string) (*Aggregate, error) {
	raw, err := s.kv.Get(ctx, cartKey(userID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return NewAggregate(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}

	return NewAggregate(lines), nil
}

func (s *Store) Save(ctx context.Context, userID string, agg *Aggregate) error {
	raw, err := json.Marshal(agg.Lines())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}

	if err := s.kv.Set(ctx, cartKey(userID), raw); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	return nil
}

// Clear discards the persisted cart, used at checkout success and logout.
func (s *Store) Clear(ctx context.Context, userID string) error {
	return s.kv.Remove(ctx, cartKey(userID))
}
