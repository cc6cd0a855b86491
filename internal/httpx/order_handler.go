package httpx

import (
	"net/http"

	"storefront-be/internal/middleware"
	"storefront-be/internal/money"
	"storefront-be/internal/order"

	"github.com/go-chi/chi/v5"
)

type updateStatusReq struct {
	Status string `json:"status"`
}

// checkout derives an order from the caller's cart and the shipping form.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var info order.CustomerInfo
	if !decodeBody(w, r, &info) {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	created, err := h.Orders.Checkout(r.Context(), userID, info)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeOrder(w, http.StatusCreated, created)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.GetOrders(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]order.Order, len(orders))
	for i, o := range orders {
		o.Total = money.Round2(o.Total)
		out[i] = o
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getOrderDetail(w http.ResponseWriter, r *http.Request) {
	o, err := h.Orders.GetOrderDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeOrder(w, http.StatusOK, o)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusReq
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.Orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeOrder(w, http.StatusOK, updated)
}

func writeOrder(w http.ResponseWriter, code int, o *order.Order) {
	o.Total = money.Round2(o.Total)
	writeJSON(w, code, o)
}
