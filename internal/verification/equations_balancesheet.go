package verification

import "github.com/huuhoait/credit-structuring-core/domain"

// checkBalanceSheet evaluates the standalone balance-sheet invariants from
// the asset and liability roll-ups, the fundamental accounting
// identity, and the net fixed asset derivation.
func checkBalanceSheet(tree any) []domain.MathCheck {
	var checks []domain.MathCheck

	if actual, present := fieldPresent(tree, "totalAssets"); present && actual != 0 {
		expected := field(tree, "totalCurrentAssets") + field(tree, "netFixedAssets") + field(tree, "otherAssets")
		checks = append(checks, absoluteCheck("totalAssets", "Total assets equals current assets plus net fixed assets plus other assets", expected, actual, moneyTolerance))
	}

	if actual, present := fieldPresent(tree, "totalLiabilities"); present && actual != 0 {
		expected := field(tree, "totalCurrentLiabilities") + field(tree, "totalLongTermLiabilities")
		checks = append(checks, absoluteCheck("totalLiabilities", "Total liabilities equals current liabilities plus long-term liabilities", expected, actual, moneyTolerance))
	}

	if actual, present := fieldPresent(tree, "totalLiabilitiesAndEquity"); present && actual != 0 {
		expected := field(tree, "totalLiabilities") + field(tree, "totalEquity")
		checks = append(checks, absoluteCheck("totalLiabilitiesAndEquity", "Total liabilities and equity equals total liabilities plus total equity", expected, actual, moneyTolerance))
	}

	checks = append(checks, absoluteCheck(
		"totalAssets.fundamental",
		"Total assets equals total liabilities and equity",
		field(tree, "totalLiabilitiesAndEquity"),
		field(tree, "totalAssets"),
		moneyTolerance,
	))

	if actual, present := fieldPresent(tree, "netFixedAssets"); present && actual != 0 {
		expected := field(tree, "propertyEquipment") - field(tree, "accumulatedDepreciation")
		checks = append(checks, absoluteCheck("netFixedAssets", "Net fixed assets equals property and equipment minus accumulated depreciation", expected, actual, moneyTolerance))
	}

	return checks
}
