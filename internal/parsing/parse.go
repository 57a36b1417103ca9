// Package parsing normalizes raw document strings into signed numbers and
// flattens tree-shaped extractions into dotted-path leaves. It is the
// lowest-level component of the verification core and has no
// dependency on any other package in this module.
package parsing

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber normalizes a raw string (as printed on a source document) into
// a signed, finite number. It handles leading "$", thousands separators,
// parenthesized negatives, and trailing "%" (converted to a fraction).
// Returns (0, false) for anything that isn't a valid finite decimal once
// those markers are stripped.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
		s = strings.TrimSpace(s)
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	percent := false
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSuffix(s, "%")
		s = strings.TrimSpace(s)
	}

	// A second leading '-' can legitimately appear on otherwise-unparenthesized
	// negative values, e.g. "-$1,234.56" after the "$"/"," strip above.
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	if negative {
		value = -value
	}
	if percent {
		value = value / 100
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
