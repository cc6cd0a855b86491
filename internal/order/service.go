package order

import (
	"context"
	"time"

	"storefront-be/internal/cart"
	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/money"

	"go.uber.org/zap"
)

type Service interface {
	// Checkout snapshots the user's cart, derives an order and persists it.
	// The cart is cleared only after the order is stored; any failure leaves
	// it untouched.
	Checkout(ctx context.Context, userID string, info CustomerInfo) (*Order, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrderDetail(ctx context.Context, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*Order, error)
}

type service struct {
	repo    Repository
	cartSvc cart.Service
	metrics *metrics.Registry
}

func NewService(repo Repository, cartSvc cart.Service, reg *metrics.Registry) Service {
	return &service{repo: repo, cartSvc: cartSvc, metrics: reg}
}

func (s *service) Checkout(ctx context.Context, userID string, info CustomerInfo) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("user_id", userID),
	)

	start := time.Now()

	if userID == "" {
		return nil, ErrUnauthorized
	}

	view, err := s.cartSvc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub, err := Derive(view.Lines, info)
	if err != nil {
		s.metrics.CheckoutsFailed.Inc()
		log.Debug("checkout rejected", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		s.metrics.CheckoutsFailed.Inc()
		log.Error("failed to persist order",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	// Cart is cleared only on success. A failed clear is logged but does not
	// fail the checkout; the order already exists.
	if err := s.cartSvc.Clear(ctx, userID); err != nil {
		log.Warn("order created but cart not cleared",
			zap.String("order_id", created.ID),
			zap.Error(err),
		)
	}

	s.metrics.OrdersCreated.Inc()

	log.Info("checkout completed",
		zap.String("order_id", created.ID),
		zap.String("total", money.Format(created.Total)),
		zap.Int("items", len(created.Items)),
		zap.Duration("duration", time.Since(start)),
	)

	return created, nil
}

func (s *service) GetOrders(ctx context.Context) ([]Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetOrderDetail(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

// UpdateStatus is the only mutation allowed on a stored order.
func (s *service) UpdateStatus(ctx context.Context, orderID, status string) (*Order, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateStatus(ctx, orderID, st)
}
