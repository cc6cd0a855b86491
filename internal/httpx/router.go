package httpx

import (
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/catalog"
	"storefront-be/internal/dashboard"
	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/user"
	"storefront-be/internal/wishlist"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Catalog   catalog.Service
	Cart      cart.Service
	Wishlist  wishlist.Service
	Orders    order.Service
	Dashboard dashboard.Service
	Users     user.Service
	Metrics   *metrics.Registry
}

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recover)
	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.Authenticate)
	r.Use(middleware.RateLimit)
	r.Use(middleware.Logging(h.Metrics))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/categories", h.listCategories)

		r.Get("/metrics", h.metricsSnapshot)

		// Customer routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/auth/logout", h.logout)

			r.Get("/cart", h.getCart)
			r.Post("/cart/items", h.addToCart)
			r.Put("/cart/items/{productId}", h.setCartQuantity)
			r.Delete("/cart/items/{productId}", h.removeFromCart)
			r.Delete("/cart", h.clearCart)

			r.Get("/wishlist", h.getWishlist)
			r.Post("/wishlist/toggle", h.toggleWishlist)

			r.Post("/orders", h.checkout)
		})

		// Seller routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSeller)

			r.Post("/products", h.createProduct)
			r.Put("/products/{id}", h.updateProduct)
			r.Delete("/products/{id}", h.deleteProduct)

			r.Get("/orders", h.listOrders)
			r.Get("/orders/{id}", h.getOrderDetail)
			r.Patch("/orders/{id}/status", h.updateOrderStatus)

			r.Get("/dashboard/stats", h.dashboardStats)
		})
	})

	return r
}

func (h *Handler) metricsSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Metrics.Snapshot())
}
