package domain

import (
	"cmp"
	"fmt"
	"strings"
)

// SortField names a column campaigns can be ordered by.
type SortField string

const (
	SortByName      SortField = "name"
	SortByStartDate SortField = "startDate"
	SortByClicks    SortField = "clicks"
	SortByCost      SortField = "cost"
	SortByEarnings  SortField = "earnings"
	SortByProfit    SortField = "profit"
)

// SortDirection is either ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortField accepts the canonical field names, case-insensitively.
func ParseSortField(s string) (SortField, error) {
	for _, f := range []SortField{SortByName, SortByStartDate, SortByClicks, SortByCost, SortByEarnings, SortByProfit} {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown field %q", ErrInvalidSort, s)
}

// ParseSortDirection accepts "asc"/"ascending" and "desc"/"descending".
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(s) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, s)
}

// Compare orders a before b by the field in ascending order. Numeric
// fields and profit compare numerically, name lexicographically and start
// date chronologically.
func (f SortField) Compare(a, b Campaign) int {
	switch f {
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByStartDate:
		return a.StartDate.Compare(b.StartDate)
	case SortByClicks:
		return cmp.Compare(a.Clicks, b.Clicks)
	case SortByCost:
		return cmp.Compare(a.Cost, b.Cost)
	case SortByEarnings:
		return cmp.Compare(a.Earnings, b.Earnings)
	case SortByProfit:
		return cmp.Compare(a.Profit(), b.Profit())
	}
	return 0
}

// SortState is the active column and direction of a campaign view.
type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortState orders by name, ascending.
func DefaultSortState() SortState {
	return SortState{Field: SortByName, Direction: Ascending}
}

// Toggle returns the state after selecting field: the active field flips
// direction, any other field becomes active in ascending order.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == Ascending {
			return SortState{Field: field, Direction: Descending}
		}
		return SortState{Field: field, Direction: Ascending}
	}
	return SortState{Field: field, Direction: Ascending}
}

// Comparator returns a comparison function for slices.SortStableFunc.
// Descending order negates the comparison rather than reversing the
// result, so ties keep their original order in both directions.
func (s SortState) Comparator() func(a, b Campaign) int {
	if s.Direction == Descending {
		return func(a, b Campaign) int { return s.Field.Compare(b, a) }
	}
	return func(a, b Campaign) int { return s.Field.Compare(a, b) }
}
