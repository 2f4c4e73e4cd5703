package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClicks(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"abc", 0},
		{"42", 42},
		{"  7", 7},
		{"12abc", 12},
		{"12.9", 12},
		{"1e3", 1},
		{"-3", -3},
		{"+5", 5},
		{"-", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseClicks(tt.in), "input %q", tt.in)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"10", 10},
		{"3.5kg", 3.5},
		{".5", 0.5},
		{"5.", 5},
		{".", 0},
		{"1.5e2x", 150},
		{"2e", 2},
		{"2e+", 2},
		{" -1.25", -1.25},
		{"1e999", 0},
		{"Infinity", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ParseAmount(tt.in), 1e-9, "input %q", tt.in)
	}
}
