package dashboard

import (
	"context"
	"time"

	"storefront-be/internal/catalog"
	"storefront-be/internal/logger"
	"storefront-be/internal/order"

	"go.uber.org/zap"
)

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	orderRepo   order.Repository
	catalogRepo catalog.Repository
}

func NewService(orderRepo order.Repository, catalogRepo catalog.Repository) Service {
	return &service{orderRepo: orderRepo, catalogRepo: catalogRepo}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DashboardStats"),
	)

	start := time.Now()

	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch orders", zap.Error(err))
		return nil, err
	}

	products, err := s.catalogRepo.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch products", zap.Error(err))
		return nil, err
	}

	stats := Summarize(orders, products)

	log.Info("dashboard stats computed",
		zap.Int("orders", len(orders)),
		zap.Int("products", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return &stats, nil
}
