package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateBuildCoercesNumbers(t *testing.T) {
	id := uuid.New()
	c, err := Candidate{
		Name:      "X",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
		Clicks:    "abc",
		Cost:      "",
		Earnings:  "10",
	}.Build(id)
	require.NoError(t, err)

	assert.Equal(t, id, c.ID)
	assert.Equal(t, int64(0), c.Clicks)
	assert.Zero(t, c.Cost)
	assert.Equal(t, 10.0, c.Earnings)
	assert.Equal(t, 10.0, c.Profit())
	assert.Zero(t, c.ReturnPercent())
	assert.Equal(t, "2024-01-01", c.StartDate.String())
}

func TestCandidateBuildRequiredFields(t *testing.T) {
	valid := Candidate{Name: "X", StartDate: "2024-01-01", EndDate: "2024-01-02"}

	tests := []struct {
		name  string
		edit  func(*Candidate)
		field string
	}{
		{"empty name", func(c *Candidate) { c.Name = "" }, "name"},
		{"blank name", func(c *Candidate) { c.Name = "   " }, "name"},
		{"empty start", func(c *Candidate) { c.StartDate = "" }, "startDate"},
		{"empty end", func(c *Candidate) { c.EndDate = "" }, "endDate"},
		{"malformed start", func(c *Candidate) { c.StartDate = "01/02/2024" }, "startDate"},
		{"impossible end", func(c *Candidate) { c.EndDate = "2024-02-30" }, "endDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.edit(&c)
			_, err := c.Build(uuid.New())
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCandidateBuildKeepsNameAsTyped(t *testing.T) {
	c, err := Candidate{Name: "  Summer Sale ", StartDate: "2024-06-01", EndDate: "2024-08-31"}.Build(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "  Summer Sale ", c.Name)
}

func TestCandidateBuildAllowsEndBeforeStart(t *testing.T) {
	_, err := Candidate{Name: "X", StartDate: "2024-02-01", EndDate: "2024-01-01"}.Build(uuid.New())
	assert.NoError(t, err)
}

func TestReturnPercent(t *testing.T) {
	c := Campaign{Cost: 25, Earnings: 50}
	assert.Equal(t, 100.0, c.ReturnPercent())

	c = Campaign{Cost: 50, Earnings: 25}
	assert.Equal(t, -50.0, c.ReturnPercent())
}
