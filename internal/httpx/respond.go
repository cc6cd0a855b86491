package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/catalog"
	"storefront-be/internal/order"
	"storefront-be/internal/user"
	"storefront-be/internal/wishlist"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeDomainError maps domain errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic body.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case order.IsValidation(err),
		errors.Is(err, catalog.ErrNameRequired),
		errors.Is(err, catalog.ErrNegativePrice),
		errors.Is(err, catalog.ErrNegativeStock),
		errors.Is(err, catalog.ErrNoFields),
		errors.Is(err, cart.ErrOutOfStock),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, user.ErrNameRequired),
		errors.Is(err, user.ErrEmailRequired),
		errors.Is(err, user.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, cart.ErrUserNotAuthenticated),
		errors.Is(err, wishlist.ErrUserNotAuthenticated),
		errors.Is(err, order.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, user.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())

	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}
