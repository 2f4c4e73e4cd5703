package domain

import "github.com/google/uuid"

// Campaign represents a tracked marketing campaign. Records are immutable
// once created; profit and return percent are derived on demand and never
// stored. JSON tags define the snapshot format written to persistence
// sinks.
type Campaign struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate Date      `json:"startDate"`
	EndDate   Date      `json:"endDate"`
	Clicks    int64     `json:"clicks"`
	Cost      float64   `json:"cost"`
	Earnings  float64   `json:"earnings"`
}

// Profit returns earnings minus cost.
func (c Campaign) Profit() float64 {
	return c.Earnings - c.Cost
}

// ReturnPercent returns profit as a percentage of cost, or zero when the
// campaign has no cost.
func (c Campaign) ReturnPercent() float64 {
	if c.Cost <= 0 {
		return 0
	}
	return c.Profit() / c.Cost * 100
}

// Totals aggregates metrics across all campaigns in a ledger.
type Totals struct {
	Clicks   int64   `json:"totalClicks"`
	Cost     float64 `json:"totalCost"`
	Earnings float64 `json:"totalEarnings"`
	Profit   float64 `json:"totalProfit"`
}

// Add folds a single campaign into the totals.
func (t Totals) Add(c Campaign) Totals {
	t.Clicks += c.Clicks
	t.Cost += c.Cost
	t.Earnings += c.Earnings
	t.Profit += c.Profit()
	return t
}
