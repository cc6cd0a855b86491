package catalog

import (
	"context"
	"strings"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, q Query) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, input NewProduct, sellerID string) (Product, error)
	Update(ctx context.Context, id string, input UpdateProduct, sellerID string) (Product, error)
	Delete(ctx context.Context, id, sellerID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List fetches the catalog and applies the query projection in memory.
func (s *service) List(ctx context.Context, q Query) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch products",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	result := FilterAndSort(products, q)

	log.Info("product list success",
		zap.Int("fetched", len(products)),
		zap.Int("returned", len(result)),
		zap.String("category", q.Category),
		zap.String("sort", string(q.Sort)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *service) Create(ctx context.Context, input NewProduct, sellerID string) (Product, error) {
	if err := validateNewProduct(input); err != nil {
		return Product{}, err
	}

	return s.repo.Create(ctx, input, sellerID)
}

func (s *service) Update(ctx context.Context, id string, input UpdateProduct, sellerID string) (Product, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return Product{}, ErrNameRequired
	}
	if input.Price != nil && *input.Price < 0 {
		return Product{}, ErrNegativePrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return Product{}, ErrNegativeStock
	}

	return s.repo.Update(ctx, id, input, sellerID)
}

func (s *service) Delete(ctx context.Context, id, sellerID string) error {
	return s.repo.Delete(ctx, id, sellerID)
}

func validateNewProduct(input NewProduct) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrNameRequired
	}
	if input.Price < 0 {
		return ErrNegativePrice
	}
	if input.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
