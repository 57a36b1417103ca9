package verification

import (
	"math"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// incomeLineRanges gives the income-statement lines summed into totalIncome
// for each corporate return ("lines 3-10 for 1120, 3-5 for
// 1120S, 3-7 for 1065").
var incomeLineRanges = map[domain.DocType][]string{
	domain.DocForm1120: {"income_3", "income_4", "income_5", "income_6", "income_7", "income_8", "income_9", "income_10"},
	domain.DocForm1120S: {"income_3", "income_4", "income_5"},
	domain.DocForm1065:  {"income_3", "income_4", "income_5", "income_6", "income_7"},
}

// checkCorporateReturn evaluates the shared Form 1120 / 1120S / 1065
// invariants, plus the embedded Schedule L balance-sheet checks.
// The three forms share a line-numbering convention on the income
// statement; Schedule L is present on all three when the entity files one.
func checkCorporateReturn(docType domain.DocType, tree any) []domain.MathCheck {
	var checks []domain.MathCheck

	if c, ok := checkBalanceAfterReturns(tree); ok {
		checks = append(checks, c)
	}
	if c, ok := checkGrossProfit(tree); ok {
		checks = append(checks, c)
	}
	if c, ok := checkTotalIncome(docType, tree); ok {
		checks = append(checks, c)
	}
	if c, ok := checkTaxableIncomeBeforeNOL(tree); ok {
		checks = append(checks, c)
	}
	if docType == domain.DocForm1120 {
		if c, ok := checkTaxableIncome30(tree); ok {
			checks = append(checks, c)
		}
	}
	if docType == domain.DocForm1065 {
		checks = append(checks, checkPartnerShares(tree)...)
	}
	checks = append(checks, checkScheduleL(tree)...)

	return checks
}

func checkBalanceAfterReturns(tree any) (domain.MathCheck, bool) {
	actual, present := fieldPresent(tree, "balanceAfterReturns_1c")
	if !present || actual == 0 {
		return domain.MathCheck{}, false
	}
	expected := field(tree, "grossReceipts_1a") - field(tree, "returnsAllowances_1b")
	return absoluteCheck("balanceAfterReturns_1c", "Balance equals gross receipts minus returns and allowances", expected, actual, moneyTolerance), true
}

func checkGrossProfit(tree any) (domain.MathCheck, bool) {
	actual, present := fieldPresent(tree, "grossProfit")
	if !present || actual == 0 {
		return domain.MathCheck{}, false
	}
	expected := field(tree, "balanceAfterReturns_1c") - field(tree, "cogs")
	return absoluteCheck("grossProfit", "Gross profit equals balance after returns minus cost of goods sold", expected, actual, moneyTolerance), true
}

func checkTotalIncome(docType domain.DocType, tree any) (domain.MathCheck, bool) {
	lines, ok := incomeLineRanges[docType]
	if !ok {
		return domain.MathCheck{}, false
	}
	actual, present := fieldPresent(tree, "totalIncome")
	if !present || actual == 0 {
		return domain.MathCheck{}, false
	}
	values := make([]float64, 0, len(lines))
	for _, line := range lines {
		values = append(values, field(tree, line))
	}
	return absoluteCheck("totalIncome", "Total income equals the sum of the reported income lines", sum(values...), actual, moneyTolerance), true
}

func checkTaxableIncomeBeforeNOL(tree any) (domain.MathCheck, bool) {
	actual, present := fieldPresent(tree, "taxableIncomeBeforeNOL")
	if !present || actual == 0 {
		actual, present = fieldPresent(tree, "ordinaryBusinessIncome")
		if !present || actual == 0 {
			return domain.MathCheck{}, false
		}
	}
	expected := field(tree, "totalIncome") - field(tree, "totalDeductions")
	return absoluteCheck("taxableIncomeBeforeNOL", "Taxable income before NOL equals total income minus total deductions", expected, actual, moneyTolerance), true
}

func checkTaxableIncome30(tree any) (domain.MathCheck, bool) {
	actual, present := fieldPresent(tree, "taxableIncome_30")
	if !present || actual == 0 {
		return domain.MathCheck{}, false
	}
	expected := field(tree, "taxableIncomeBeforeNOL") - field(tree, "nol") - field(tree, "specialDeductions")
	return absoluteCheck("taxableIncome_30", "Taxable income equals taxable income before NOL minus NOL and special deductions", expected, actual, moneyTolerance), true
}

// checkPartnerShares enforces the 1065 partner profit/loss-share
// reconciliation: both columns must sum to 100%, tolerance 0.5 points.
func checkPartnerShares(tree any) []domain.MathCheck {
	m, ok := tree.(map[string]any)
	if !ok {
		return nil
	}
	partners, ok := m["partners"].([]any)
	if !ok || len(partners) == 0 {
		return nil
	}

	profitTotal, lossTotal := 0.0, 0.0
	for _, p := range partners {
		profitTotal += field(p, "profitSharePercent")
		lossTotal += field(p, "lossSharePercent")
	}

	return []domain.MathCheck{
		percentageCheck("partners.profitSharePercent", "Partner profit shares must sum to 100%", profitTotal),
		percentageCheck("partners.lossSharePercent", "Partner loss shares must sum to 100%", lossTotal),
	}
}

func percentageCheck(fieldPath, description string, total float64) domain.MathCheck {
	diff := math.Abs(100 - total)
	return domain.MathCheck{
		FieldPath:   fieldPath,
		Description: description,
		Expected:    100,
		Actual:      total,
		Difference:  diff,
		Passed:      diff <= 0.5,
	}
}

var scheduleLAssetComponents = []string{
	"cash", "tradeNotes", "inventories", "governmentObligations", "taxExemptSecurities",
	"otherCurrentAssets", "loansToShareholders", "mortgageLoans", "otherInvestments",
	"buildingsAndDepreciation", "depletableAssets", "land", "intangibleAssets", "otherAssets",
}

// checkScheduleL evaluates the Schedule L beginning-of-year/end-of-year asset
// composition and the fundamental balance-sheet identity.
func checkScheduleL(tree any) []domain.MathCheck {
	m, ok := tree.(map[string]any)
	if !ok {
		return nil
	}
	scheduleL, ok := m["scheduleL"].(map[string]any)
	if !ok {
		return nil
	}

	var checks []domain.MathCheck
	for _, period := range []string{"beginningOfYear", "endOfYear"} {
		periodData, ok := scheduleL[period].(map[string]any)
		if !ok {
			continue
		}
		checks = append(checks, checkScheduleLPeriod(period, periodData)...)
	}
	return checks
}

func checkScheduleLPeriod(period string, periodData map[string]any) []domain.MathCheck {
	var checks []domain.MathCheck

	if totalAssets, present := fieldPresent(periodData, "totalAssets"); present {
		values := make([]float64, 0, len(scheduleLAssetComponents))
		anyPresent := false
		for _, component := range scheduleLAssetComponents {
			if v, ok := fieldPresent(periodData, component); ok {
				anyPresent = true
				values = append(values, v)
			}
		}
		if anyPresent {
			checks = append(checks, absoluteCheck(
				"scheduleL."+period+".totalAssets",
				"Total assets equals the sum of the reported asset components",
				sum(values...), totalAssets, moneyTolerance))
		}
	}

	checks = append(checks, absoluteCheck(
		"scheduleL."+period+".totalAssets.fundamental",
		"Total assets equals total liabilities and equity",
		field(periodData, "totalLiabilitiesAndEquity"),
		field(periodData, "totalAssets"),
		moneyTolerance,
	))

	return checks
}
