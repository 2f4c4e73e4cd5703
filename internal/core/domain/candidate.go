package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Candidate is the unvalidated input for a new campaign, as typed into a
// form. Name and both dates are required; the numeric fields are optional
// and coerced leniently.
type Candidate struct {
	Name      string `json:"name" yaml:"name"`
	StartDate string `json:"startDate" yaml:"startDate"`
	EndDate   string `json:"endDate" yaml:"endDate"`
	Clicks    string `json:"clicks" yaml:"clicks"`
	Cost      string `json:"cost" yaml:"cost"`
	Earnings  string `json:"earnings" yaml:"earnings"`
}

// Build validates the candidate and turns it into a Campaign with the
// given id. End date is not checked against start date.
func (c Candidate) Build(id uuid.UUID) (Campaign, error) {
	// blank names count as missing; the stored name keeps its spacing
	if strings.TrimSpace(c.Name) == "" {
		return Campaign{}, &ValidationError{Field: "name", Reason: "is required"}
	}
	start, err := requiredDate("startDate", c.StartDate)
	if err != nil {
		return Campaign{}, err
	}
	end, err := requiredDate("endDate", c.EndDate)
	if err != nil {
		return Campaign{}, err
	}
	return Campaign{
		ID:        id,
		Name:      c.Name,
		StartDate: start,
		EndDate:   end,
		Clicks:    ParseClicks(c.Clicks),
		Cost:      ParseAmount(c.Cost),
		Earnings:  ParseAmount(c.Earnings),
	}, nil
}

func requiredDate(field, value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}, &ValidationError{Field: field, Reason: "is required"}
	}
	d, err := ParseDate(value)
	if err != nil {
		return Date{}, &ValidationError{Field: field, Reason: "must be a YYYY-MM-DD date"}
	}
	return d, nil
}
