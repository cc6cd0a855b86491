package httpx

import (
	"net/http"

	"storefront-be/internal/middleware"
)

type toggleWishlistReq struct {
	ProductID string `json:"productId"`
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	entries, err := h.Wishlist.List(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req toggleWishlistReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	product, err := h.Catalog.GetByID(r.Context(), req.ProductID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	entries, err := h.Wishlist.Toggle(r.Context(), userID, *product)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
