package cart

import (
	"context"
	"errors"

	"storefront-be/internal/catalog"
	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

// View is the cart as returned to clients, with derived fields attached.
type View struct {
	Lines     []Line  `json:"lines"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// Service defines the business logic for carts.
type Service interface {
	Get(ctx context.Context, userID string) (*View, error)
	Add(ctx context.Context, userID, productID string) (*View, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (*View, error)
	Remove(ctx context.Context, userID, productID string) (*View, error)
	Clear(ctx context.Context, userID string) error
}

type service struct {
	store       *Store
	catalogRepo catalog.Repository
}

func NewService(store *Store, catalogRepo catalog.Repository) Service {
	return &service{store: store, catalogRepo: catalogRepo}
}

func (s *service) Get(ctx context.Context, userID string) (*View, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}

	agg, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return viewOf(agg), nil
}

// Add snapshots the product at add time; later catalog price changes do not
// touch lines already in the cart.
func (s *service) Add(ctx context.Context, userID, productID string) (*View, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}

	product, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if product.Stock < 1 {
		return nil, ErrOutOfStock
	}

	return s.mutate(ctx, userID, func(agg *Aggregate) {
		agg.Add(*product)
	})
}

func (s *service) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*View, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}

	return s.mutate(ctx, userID, func(agg *Aggregate) {
		agg.SetQuantity(productID, quantity)
	})
}

func (s *service) Remove(ctx context.Context, userID, productID string) (*View, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}

	return s.mutate(ctx, userID, func(agg *Aggregate) {
		agg.Remove(productID)
	})
}

func (s *service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUserNotAuthenticated
	}
	return s.store.Clear(ctx, userID)
}

// mutate runs a load-modify-save cycle. On save failure the persisted state
// is untouched, so a retry sees the pre-mutation cart.
func (s *service) mutate(ctx context.Context, userID string, fn func(*Aggregate)) (*View, error) {
	agg, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	fn(agg)

	if err := s.store.Save(ctx, userID, agg); err != nil {
		logger.FromCtx(ctx).Error("failed to persist cart",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	return viewOf(agg), nil
}

func viewOf(agg *Aggregate) *View {
	return &View{
		Lines:     agg.Lines(),
		Total:     agg.Total(),
		ItemCount: agg.ItemCount(),
	}
}
