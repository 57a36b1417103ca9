package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		fieldPath string
		ocrKey    string
		want      bool
	}{
		{name: "tax dictionary line number", fieldPath: "income.totalIncome_line9", ocrKey: "Line 9", want: true},
		{name: "tax dictionary label text", fieldPath: "income.wages_line1", ocrKey: "Wages, salaries, tips, etc.", want: true},
		{name: "w2 box label", fieldPath: "w2Summary[0].wages_box1", ocrKey: "Box 1", want: true},
		{name: "fuzzy phrase revenue", fieldPath: "netRevenue", ocrKey: "Total Revenue", want: true},
		{name: "fuzzy phrase deposits", fieldPath: "totalDeposits", ocrKey: "Total Deposits", want: true},
		{name: "direct substring long segment", fieldPath: "occupancyRate", ocrKey: "Occupancy Rate (%)", want: true},
		{name: "direct substring too short", fieldPath: "properties[0].noi", ocrKey: "NOI", want: false},
		{name: "no match", fieldPath: "totalAssets", ocrKey: "Borrower Name", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.fieldPath, tt.ocrKey))
		})
	}
}
