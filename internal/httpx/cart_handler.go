package httpx

import (
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/middleware"
	"storefront-be/internal/money"

	"github.com/go-chi/chi/v5"
)

type addToCartReq struct {
	ProductID string `json:"productId"`
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	view, err := h.Cart.Get(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeCartView(w, http.StatusOK, view)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	view, err := h.Cart.Add(r.Context(), userID, req.ProductID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeCartView(w, http.StatusOK, view)
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityReq
	if !decodeBody(w, r, &req) {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	view, err := h.Cart.SetQuantity(r.Context(), userID, chi.URLParam(r, "productId"), req.Quantity)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeCartView(w, http.StatusOK, view)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	view, err := h.Cart.Remove(r.Context(), userID, chi.URLParam(r, "productId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeCartView(w, http.StatusOK, view)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	if err := h.Cart.Clear(r.Context(), userID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func writeCartView(w http.ResponseWriter, code int, view *cart.View) {
	view.Total = money.Round2(view.Total)
	writeJSON(w, code, view)
}
