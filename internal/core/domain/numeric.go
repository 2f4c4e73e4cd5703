package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseClicks reads the leading integer of s. Trailing garbage is ignored
// ("12abc" is 12) and input without a leading integer yields zero.
func ParseClicks(s string) int64 {
	prefix := leadingInteger(strings.TrimLeftFunc(s, unicode.IsSpace))
	if prefix == "" {
		return 0
	}
	n, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return n
}

// ParseAmount reads the leading decimal number of s. Trailing garbage is
// ignored ("3.5kg" is 3.5); empty, non-numeric and non-finite input yields
// zero.
func ParseAmount(s string) float64 {
	prefix := strings.TrimSuffix(leadingDecimal(strings.TrimLeftFunc(s, unicode.IsSpace)), ".")
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

func leadingInteger(s string) string {
	i := skipSign(s, 0)
	start := i
	i = skipDigits(s, i)
	if i == start {
		return ""
	}
	return s[:i]
}

func leadingDecimal(s string) string {
	i := skipSign(s, 0)
	intStart := i
	i = skipDigits(s, i)
	intDigits := i - intStart

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := skipDigits(s, i+1)
		fracDigits = j - (i + 1)
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	// exponent only counts when it carries digits
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := skipSign(s, i+1)
		if k := skipDigits(s, j); k > j {
			i = k
		}
	}
	return s[:i]
}

func skipSign(s string, i int) int {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		return i + 1
	}
	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
