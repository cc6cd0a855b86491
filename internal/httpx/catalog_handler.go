package httpx

import (
	"net/http"

	"storefront-be/internal/catalog"
	"storefront-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Sort:     catalog.SortKey(r.URL.Query().Get("sort")),
	}

	products, err := h.Catalog.List(r.Context(), q)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Catalog.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// "All" leads the list, matching the storefront's category bar.
	writeJSON(w, http.StatusOK, append([]string{catalog.CategoryAll}, categories...))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var input catalog.NewProduct
	if !decodeBody(w, r, &input) {
		return
	}

	sellerID := middleware.UserIDFromContext(r.Context())

	product, err := h.Catalog.Create(r.Context(), input, sellerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var input catalog.UpdateProduct
	if !decodeBody(w, r, &input) {
		return
	}

	sellerID := middleware.UserIDFromContext(r.Context())

	product, err := h.Catalog.Update(r.Context(), chi.URLParam(r, "id"), input, sellerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.UserIDFromContext(r.Context())

	if err := h.Catalog.Delete(r.Context(), chi.URLParam(r, "id"), sellerID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
