package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront-be/internal/catalog"
	"storefront-be/internal/kvstore"
)

var ErrUserNotAuthenticated = errors.New("user not authenticated")

// Entry snapshots the product display fields so the wishlist renders even if
// the product is later edited or removed from the catalog.
type Entry struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

// Service manages the per-user saved-for-later set. Unlike the cart, the
// persisted wishlist survives logout.
type Service interface {
	List(ctx context.Context, userID string) ([]Entry, error)
	Toggle(ctx context.Context, userID string, product catalog.Product) ([]Entry, error)
}

type service struct {
	kv kvstore.Store
}

func NewService(kv kvstore.Store) Service {
	return &service{kv: kv}
}

func wishlistKey(userID string) string {
	return fmt.Sprintf("wishlist:%s", userID)
}

func (s *service) List(ctx context.Context, userID string) ([]Entry, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}
	return s.load(ctx, userID)
}

// Toggle removes the product when present, adds a snapshot when absent.
// Two toggles in a row restore the original set.
func (s *service) Toggle(ctx context.Context, userID string, product catalog.Product) ([]Entry, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}

	entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	next := make([]Entry, 0, len(entries)+1)
	for _, e := range entries {
		if e.ProductID == product.ID {
			found = true
			continue
		}
		next = append(next, e)
	}

	if !found {
		next = append(next, Entry{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Category:  product.Category,
		})
	}

	if err := s.save(ctx, userID, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *service) load(ctx context.Context, userID string) ([]Entry, error) {
	raw, err := s.kv.Get(ctx, wishlistKey(userID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *service) save(ctx context.Context, userID string, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, wishlistKey(userID), raw)
}
