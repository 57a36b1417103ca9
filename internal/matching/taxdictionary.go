package matching

import "strings"

// taxFormLabels is the static tax-form label dictionary (strategy 1): for a
// known structured field path, the set of labels that are likely to appear,
// verbatim or close to it, on the printed form. Matching is a
// normalized-containment test against the OCR key.
var taxFormLabels = map[string][]string{
	// Form 1040
	"income.wages_line1":              {"1", "Line 1", "Wages", "Wages, salaries, tips"},
	"income.taxableInterest_line2b":   {"2b", "Line 2b", "Taxable interest"},
	"income.ordinaryDividends_line3b": {"3b", "Line 3b", "Ordinary dividends"},
	"income.taxableIra_line4b":        {"4b", "Line 4b", "IRA distributions"},
	"income.taxablePensions_line5b":   {"5b", "Line 5b", "Pensions and annuities"},
	"income.taxableSocialSecurity_line6b": {"6b", "Line 6b", "Social security benefits"},
	"income.capitalGain_line7":        {"7", "Line 7", "Capital gain"},
	"income.otherIncome_line8":        {"8", "Line 8", "Other income"},
	"income.totalIncome_line9":        {"9", "Line 9", "Total income"},
	"income.adjustments_line10":       {"10", "Line 10", "Adjustments to income"},
	"income.agi_line11":               {"11", "Line 11", "Adjusted gross income"},
	"income.standardOrItemized_line12": {"12", "Line 12", "Standard deduction"},
	"income.qbi_line13a":              {"13a", "Line 13", "Qualified business income deduction"},
	"income.taxableIncome_line15":     {"15", "Line 15", "Taxable income"},
	"tax.totalTax_line24":             {"24", "Line 24", "Total tax"},
	"wages_box1":                      {"Box 1", "Wages, tips, other compensation"},
	"income.totalPayments_line33":     {"33", "Line 33", "Total payments"},
	"income.overpaid_line34":          {"34", "Line 34", "Overpayment", "Refund"},
	"income.amountOwed_line37":        {"37", "Line 37", "Amount you owe"},

	// Schedule C
	"grossReceipts_line1":    {"1", "Line 1", "Gross receipts"},
	"cogs_line4":             {"4", "Line 4", "Cost of goods sold"},
	"grossProfit_line5":      {"5", "Line 5", "Gross profit"},
	"otherIncome_line6":      {"6", "Line 6", "Other income"},
	"grossIncome_line7":      {"7", "Line 7", "Gross income"},
	"totalExpenses_line28":   {"28", "Line 28", "Total expenses"},
	"depreciation_line13":    {"13", "Line 13", "Depletion and depreciation"},
	"netProfit_line31":       {"31", "Line 31", "Net profit or (loss)"},

	// Form 1120 / 1120S / 1065 shared
	"grossReceipts_1a":        {"1a", "Line 1a", "Gross receipts or sales"},
	"returnsAllowances_1b":     {"1b", "Line 1b", "Returns and allowances"},
	"balanceAfterReturns_1c":   {"1c", "Line 1c", "Balance"},
	"totalIncome":              {"Total income"},
	"totalDeductions":          {"Total deductions"},
	"taxableIncomeBeforeNOL":   {"Taxable income before net operating loss"},
	"ordinaryBusinessIncome":   {"Ordinary business income"},
	"nol":                      {"Net operating loss deduction"},
	"specialDeductions":        {"Special deductions"},
	"taxableIncome_30":         {"30", "Line 30", "Taxable income"},

	// Schedule L / balance sheet
	"totalAssets":                 {"Total assets"},
	"totalLiabilities":            {"Total liabilities"},
	"totalEquity":                 {"Total equity", "Shareholders equity", "Total stockholders equity"},
	"totalLiabilitiesAndEquity":   {"Total liabilities and equity", "Total liabilities and shareholders equity"},
	"netFixedAssets":              {"Net fixed assets", "Net property and equipment"},
	"accumulatedDepreciation":     {"Accumulated depreciation"},
}

// lookupTaxFormLabels returns the dictionary labels for a field path, trying
// the path verbatim and falling back to its last segment.
func lookupTaxFormLabels(fieldPath string) ([]string, bool) {
	if labels, ok := taxFormLabels[fieldPath]; ok {
		return labels, true
	}
	labels, ok := taxFormLabels[lastSegment(fieldPath)]
	return labels, ok
}

// matchTaxFormDictionary implements strategy 1: normalized-containment test
// against the OCR key for every known label of fieldPath.
func matchTaxFormDictionary(fieldPath, ocrKey string) bool {
	labels, ok := lookupTaxFormLabels(fieldPath)
	if !ok {
		return false
	}
	normalizedKey := normalize(ocrKey)
	if normalizedKey == "" {
		return false
	}
	for _, label := range labels {
		if normalizedLabel := normalize(label); normalizedLabel != "" && strings.Contains(normalizedKey, normalizedLabel) {
			return true
		}
	}
	return false
}
