package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{name: "plain integer", raw: "1234", expected: 1234, ok: true},
		{name: "dollar with commas", raw: "$1,234.56", expected: 1234.56, ok: true},
		{name: "parenthesized negative", raw: "(1,234)", expected: -1234, ok: true},
		{name: "percent", raw: "12.5%", expected: 0.125, ok: true},
		{name: "negative percent", raw: "-2.5%", expected: -0.025, ok: true},
		{name: "whitespace padded", raw: "  42.00  ", expected: 42, ok: true},
		{name: "empty string", raw: "", expected: 0, ok: false},
		{name: "non numeric", raw: "N/A", expected: 0, ok: false},
		{name: "dash only", raw: "-", expected: 0, ok: false},
		{name: "dollar in parens with commas", raw: "($1,200.00)", expected: -1200, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ParseNumber(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, value, 1e-9)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	tree := map[string]any{
		"income": map[string]any{
			"wages_line1": float64(185000),
			"notes":       "ignored",
		},
		"scheduleC": []any{
			map[string]any{"netProfit_line31": float64(50000)},
			map[string]any{"netProfit_line31": float64(-1200)},
		},
	}

	leaves := Flatten(tree)

	byPath := map[string]float64{}
	for _, leaf := range leaves {
		byPath[leaf.Path] = leaf.Value
	}

	assert.Equal(t, float64(185000), byPath["income.wages_line1"])
	assert.Equal(t, float64(50000), byPath["scheduleC[0].netProfit_line31"])
	assert.Equal(t, float64(-1200), byPath["scheduleC[1].netProfit_line31"])
	assert.NotContains(t, byPath, "income.notes")
}

func TestGet(t *testing.T) {
	tree := map[string]any{
		"scheduleC": []any{
			map[string]any{"netProfit_line31": float64(50000)},
		},
	}

	value, ok := Get(tree, "scheduleC[0].netProfit_line31")
	assert.True(t, ok)
	assert.Equal(t, float64(50000), value)

	_, ok = Get(tree, "scheduleC[5].netProfit_line31")
	assert.False(t, ok)

	_, ok = Get(tree, "unknown.path")
	assert.False(t, ok)
}
