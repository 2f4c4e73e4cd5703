package httpadapter

import (
	"net/http"
)

// handleStatsOverview returns the summary cards of the dashboard: total
// clicks, cost, earnings and profit over every stored campaign.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Aggregate())
}
