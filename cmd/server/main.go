package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/catalog"
	"storefront-be/internal/config"
	"storefront-be/internal/dashboard"
	"storefront-be/internal/db"
	"storefront-be/internal/httpx"
	"storefront-be/internal/kvstore"
	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/order"
	"storefront-be/internal/user"
	"storefront-be/internal/wishlist"
)

// Swappable for tests.
var (
	initDBFunc = db.InitDB
	newKVFunc  = func(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
		return kvstore.NewRedis(ctx, cfg.RedisAddr)
	}
	startServerFunc = http.ListenAndServe
)

func newServer(database *sql.DB, kv kvstore.Store) http.Handler {
	reg := metrics.NewRegistry()

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	cartSvc := cart.NewService(cart.NewStore(kv), catalogRepo)
	wishlistSvc := wishlist.NewService(kv)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartSvc, reg)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, reg)

	h := &httpx.Handler{
		Catalog:   catalogSvc,
		Cart:      cartSvc,
		Wishlist:  wishlistSvc,
		Orders:    orderSvc,
		Dashboard: dashboard.NewService(orderRepo, catalogRepo),
		Users:     userSvc,
		Metrics:   reg,
	}

	return httpx.NewRouter(h)
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	kv, err := newKVFunc(context.Background(), cfg)
	if err != nil {
		return err
	}

	router := newServer(database, kv)

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
