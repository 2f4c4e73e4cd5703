package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"campaign-ledger/internal/core/domain"
)

// handleListCampaigns returns the campaign table. Without query parameters
// rows follow the tracked sort state. `sort` and optional `direction`
// (default asc) request a one-off ordering that leaves the tracked state
// alone. Unknown fields or directions result in HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("sort") == "" && q.Get("direction") == "" {
		h.writeJSON(w, http.StatusOK, toViewResponse(h.svc.View()))
		return
	}

	state := domain.SortState{Field: h.svc.SortState().Field, Direction: domain.Ascending}
	var err error
	if v := q.Get("sort"); v != "" {
		if state.Field, err = domain.ParseSortField(v); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("direction"); v != "" {
		if state.Direction, err = domain.ParseSortDirection(v); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	rows, err := h.svc.SortBy(state.Field, state.Direction)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, toViewResponse(state, rows))
}

// handleCreateCampaign adds a campaign from a JSON body. Numeric fields may
// be strings or numbers; anything unparseable is stored as zero. A missing
// name or date results in HTTP 400 with the offending field in the body.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.Add(r.Context(), req.candidate())
	if errors.Is(err, domain.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("add campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.logger.Debug("campaign added", slog.String("id", c.ID.String()), slog.String("name", c.Name))
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleGetCampaign returns a single campaign or HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	c, found := h.svc.Get(id)
	if !found {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleDeleteCampaign removes a campaign. Deleting an unknown id still
// answers 204; only malformed ids are rejected.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	h.svc.Remove(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// handleToggleSort applies a column-header click to the tracked sort state
// and returns the reordered table.
func (h *Handler) handleToggleSort(w http.ResponseWriter, r *http.Request) {
	field, err := domain.ParseSortField(chi.URLParam(r, "field"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	state, rows, err := h.svc.ToggleSort(field)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, toViewResponse(state, rows))
}

func campaignID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
