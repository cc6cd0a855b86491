package httpx

import (
	"net/http"

	"storefront-be/internal/money"
)

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.Stats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	stats.TotalRevenue = money.Round2(stats.TotalRevenue)
	writeJSON(w, http.StatusOK, stats)
}
