package verification

import (
	"testing"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCheck(checks []domain.MathCheck, fieldPath string) (domain.MathCheck, bool) {
	for _, c := range checks {
		if c.FieldPath == fieldPath {
			return c, true
		}
	}
	return domain.MathCheck{}, false
}

// S1 - clean 1040 arithmetic: all three Form-1040 checks pass.
func TestVerify_Form1040_CleanArithmetic(t *testing.T) {
	tree := map[string]any{
		"income": map[string]any{
			"wages_line1":              185000.0,
			"taxableInterest_line2b":   3450.0,
			"ordinaryDividends_line3b": 2800.0,
			"capitalGain_line7":        8500.0,
			"otherIncome_line8":        0.0,
			"taxableIra_line4b":        0.0,
			"taxablePensions_line5b":   0.0,
			"taxableSocialSecurity_line6b": 0.0,
			"totalIncome_line9":        199750.0,
			"adjustments_line10":       6000.0,
			"agi_line11":               193750.0,
			"standardOrItemized_line12": 27700.0,
			"qbi_line13a":              0.0,
			"taxableIncome_line15":     166050.0,
		},
	}

	result := Verify(domain.VerificationRequest{
		DocType:        domain.DocForm1040,
		StructuredData: tree,
	})

	for _, path := range []string{"income.totalIncome_line9", "income.agi_line11", "income.taxableIncome_line15"} {
		check, ok := findCheck(result.MathChecks, path)
		require.True(t, ok, "expected check for %s", path)
		assert.True(t, check.Passed, "%s: expected %v actual %v diff %v", path, check.Expected, check.Actual, check.Difference)
	}
}

// S2 - cross-doc mismatch: W-2 box 1 wages disagree with 1040 line 1 by more
// than the relative tolerance.
func TestVerify_Form1040_W2Mismatch(t *testing.T) {
	tree := map[string]any{
		"income": map[string]any{
			"wages_line1": 150000.0,
		},
		"w2Summary": []any{
			map[string]any{"wages_box1": 120000.0},
		},
	}

	checks := checkForm1040(tree)
	check, ok := findCheck(checks, "income.wages_line1")
	require.True(t, ok)
	assert.False(t, check.Passed)
	assert.InDelta(t, 30000.0, check.Difference, 0.01)
}

// S6 - balance sheet fundamental identity.
func TestVerify_BalanceSheet_Fundamental(t *testing.T) {
	passingTree := map[string]any{
		"totalAssets":               448500.0,
		"totalLiabilities":          131500.0,
		"totalEquity":               317000.0,
		"totalLiabilitiesAndEquity": 448500.0,
	}
	result := Verify(domain.VerificationRequest{DocType: domain.DocBalanceSheet, StructuredData: passingTree})
	check, ok := findCheck(result.MathChecks, "totalAssets.fundamental")
	require.True(t, ok)
	assert.True(t, check.Passed)

	failingTree := map[string]any{
		"totalAssets":               448500.0,
		"totalLiabilities":          131500.0,
		"totalEquity":               316500.0,
		"totalLiabilitiesAndEquity": 448000.0,
	}
	result = Verify(domain.VerificationRequest{DocType: domain.DocBalanceSheet, StructuredData: failingTree})
	check, ok = findCheck(result.MathChecks, "totalAssets.fundamental")
	require.True(t, ok)
	assert.False(t, check.Passed)
	assert.InDelta(t, 500.0, check.Difference, 0.01)
}

func TestVerify_Reconciliation_UnknownDocTypeStillReconciles(t *testing.T) {
	tree := map[string]any{"netRevenue": 50000.0}
	ocr := []domain.KVPair{{Key: "Net Revenue", Value: "50,000", Confidence: 0.98, Page: 1}}

	result := Verify(domain.VerificationRequest{DocType: domain.DocOther, StructuredData: tree, OCR: ocr})
	require.Len(t, result.Comparisons, 1)
	assert.True(t, result.Comparisons[0].Matched)
	assert.Empty(t, result.MathChecks)
}

// The 2% relative tolerance is based on the reported actual value, not the
// derived expected value: a difference within 2% of actual passes even when
// it exceeds 2% of expected.
func TestRelativeCheck_ToleranceBasedOnActual(t *testing.T) {
	check := relativeCheck("x", "desc", 980000.0, 1000000.0, 1.0)
	assert.True(t, check.Passed, "tolerance should be 2%% of actual (20000), not 2%% of expected (19600)")
}

// a difference of 30000 against max($1, 2% of 150000 = 3000) fails. 2% of
// the W-2 sum (120000 = 2400) would also fail here, so a second example with
// a smaller gap pins down that the tolerance is specifically 2% of the
// reported wages_line1, not the W-2 sum.
func TestVerify_Form1040_W2NearMiss_ToleranceUsesActualWages(t *testing.T) {
	tree := map[string]any{
		"income": map[string]any{
			"wages_line1": 150000.0,
		},
		"w2Summary": []any{
			map[string]any{"wages_box1": 147050.0},
		},
	}
	checks := checkForm1040(tree)
	check, ok := findCheck(checks, "income.wages_line1")
	require.True(t, ok)
	assert.True(t, check.Passed, "2%% of actual 150000 = 3000, difference is 2950 (2%% of the W-2 sum would be 2941)")
}

func TestCheckRentRoll_OccupiedFlagOverridesVacantStatus(t *testing.T) {
	tree := map[string]any{
		"units": []any{
			map[string]any{"status": "vacant", "occupied": true, "monthlyRent": 900.0},
		},
		"totalMonthlyRent": 900.0,
	}
	rentCheck, ok := findCheck(checkRentRoll(tree), "totalMonthlyRent")
	require.True(t, ok)
	assert.True(t, rentCheck.Passed, "a unit with occupied==true should count as occupied even when status is \"vacant\"")

	assert.True(t, isOccupied(map[string]any{"status": "vacant", "occupied": true}))
	assert.False(t, isOccupied(map[string]any{"status": "vacant"}))
	assert.True(t, isOccupied(map[string]any{"occupied": true}))
	assert.True(t, isOccupied(map[string]any{}))
}

func TestCheckForm1040_ZeroDerivedSubtotalsAreSkippedNotFailed(t *testing.T) {
	tree := map[string]any{
		"income": map[string]any{
			"totalIncome_line9": 0.0,
			"agi_line11":        0.0,
		},
	}
	checks := checkForm1040(tree)
	_, ok := findCheck(checks, "income.totalIncome_line9")
	assert.False(t, ok, "a zero reported subtotal should be skipped, not emitted as a failing check")
	_, ok = findCheck(checks, "income.agi_line11")
	assert.False(t, ok, "a zero reported subtotal should be skipped, not emitted as a failing check")
}

func TestCheckBalanceSheet_ZeroDerivedSubtotalsAreSkippedNotFailed(t *testing.T) {
	tree := map[string]any{
		"totalAssets":      0.0,
		"totalLiabilities": 0.0,
		"netFixedAssets":   0.0,
	}
	checks := checkBalanceSheet(tree)
	for _, path := range []string{"totalAssets", "totalLiabilities", "netFixedAssets"} {
		_, ok := findCheck(checks, path)
		assert.False(t, ok, "%s: a zero reported subtotal should be skipped, not emitted as a failing check", path)
	}
	// the fundamental identity is mandatory and still fires even at zero.
	_, ok := findCheck(checks, "totalAssets.fundamental")
	assert.True(t, ok)
}

func TestCheckRentRoll_OccupancyAndUnitCount(t *testing.T) {
	tree := map[string]any{
		"units": []any{
			map[string]any{"status": "occupied", "monthlyRent": 1200.0},
			map[string]any{"status": "occupied", "monthlyRent": 1100.0},
			map[string]any{"status": "vacant", "monthlyRent": 0.0},
		},
		"totalMonthlyRent": 2300.0,
		"totalAnnualRent":  27600.0,
		"occupiedUnits":    2.0,
		"vacantUnits":      1.0,
		"totalUnits":       3.0,
		"occupancyRate":    0.6667,
	}

	checks := checkRentRoll(tree)

	rentCheck, ok := findCheck(checks, "totalMonthlyRent")
	require.True(t, ok)
	assert.True(t, rentCheck.Passed)

	unitsCheck, ok := findCheck(checks, "totalUnits")
	require.True(t, ok)
	assert.True(t, unitsCheck.Passed)
}
