package httpadapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"campaign-ledger/internal/core/domain"
)

// campaignResponse is a campaign with its derived metrics.
type campaignResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Clicks        int64   `json:"clicks"`
	Cost          float64 `json:"cost"`
	Earnings      float64 `json:"earnings"`
	Profit        float64 `json:"profit"`
	ReturnPercent float64 `json:"returnPercent"`
}

type viewResponse struct {
	Sort      domain.SortState   `json:"sort"`
	Campaigns []campaignResponse `json:"campaigns"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		StartDate:     c.StartDate.String(),
		EndDate:       c.EndDate.String(),
		Clicks:        c.Clicks,
		Cost:          c.Cost,
		Earnings:      c.Earnings,
		Profit:        c.Profit(),
		ReturnPercent: c.ReturnPercent(),
	}
}

func toViewResponse(state domain.SortState, campaigns []domain.Campaign) viewResponse {
	rows := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		rows = append(rows, toCampaignResponse(c))
	}
	return viewResponse{Sort: state, Campaigns: rows}
}

// formValue is a form field that clients may send either as a JSON string
// or as a bare number. Numbers keep their literal text so the ledger
// coerces both forms the same way.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = formValue(n.String())
	return nil
}

type createCampaignRequest struct {
	Name      string    `json:"name"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Clicks    formValue `json:"clicks"`
	Cost      formValue `json:"cost"`
	Earnings  formValue `json:"earnings"`
}

func (r createCampaignRequest) candidate() domain.Candidate {
	return domain.Candidate{
		Name:      r.Name,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Clicks:    string(r.Clicks),
		Cost:      string(r.Cost),
		Earnings:  string(r.Earnings),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
