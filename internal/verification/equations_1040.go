package verification

import (
	"strconv"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// checkForm1040 evaluates the Form 1040 invariants, plus the
// embedded Schedule C (per instance) and Schedule E (per property) checks
// that live inside a 1040 extraction tree.
func checkForm1040(tree any) []domain.MathCheck {
	var checks []domain.MathCheck

	if c, ok := checkTotalIncomeLine9(tree); ok {
		checks = append(checks, c)
	}
	if c, ok := checkAGILine11(tree); ok {
		checks = append(checks, c)
	}
	if c, ok := checkTaxableIncomeLine15(tree); ok {
		checks = append(checks, c)
	}
	if c, ok := checkOverpaidLine34(tree); ok {
		checks = append(checks, c)
	}
	if c, ok := checkAmountOwedLine37(tree); ok {
		checks = append(checks, c)
	}
	if c, ok := checkW2WagesMatchLine1(tree); ok {
		checks = append(checks, c)
	}

	checks = append(checks, checkScheduleCInstances(tree)...)
	checks = append(checks, checkScheduleEInstances(tree)...)

	return checks
}

func checkTotalIncomeLine9(tree any) (domain.MathCheck, bool) {
	actual, present := fieldPresent(tree, "income.totalIncome_line9")
	if !present || actual == 0 {
		return domain.MathCheck{}, false
	}
	expected := sum(
		field(tree, "income.wages_line1"),
		field(tree, "income.taxableInterest_line2b"),
		field(tree, "income.ordinaryDividends_line3b"),
		field(tree, "income.taxableIra_line4b"),
		field(tree, "income.taxablePensions_line5b"),
		field(tree, "income.taxableSocialSecurity_line6b"),
		field(tree, "income.capitalGain_line7"),
		field(tree, "income.otherIncome_line8"),
	)
	return absoluteCheck("income.totalIncome_line9", "Total income equals sum of income lines 1-8", expected, actual, moneyTolerance), true
}

func checkAGILine11(tree any) (domain.MathCheck, bool) {
	actual, present := fieldPresent(tree, "income.agi_line11")
	if !present || actual == 0 {
		return domain.MathCheck{}, false
	}
	expected := field(tree, "income.totalIncome_line9") - field(tree, "income.adjustments_line10")
	return absoluteCheck("income.agi_line11", "AGI equals total income minus adjustments", expected, actual, moneyTolerance), true
}

func checkTaxableIncomeLine15(tree any) (domain.MathCheck, bool) {
	actual, present := fieldPresent(tree, "income.taxableIncome_line15")
	if !present {
		return domain.MathCheck{}, false
	}
	expected := field(tree, "income.agi_line11") - field(tree, "income.standardOrItemized_line12") - field(tree, "income.qbi_line13a")
	return absoluteCheck("income.taxableIncome_line15", "Taxable income equals AGI minus standard/itemized and QBI deductions", expected, actual, moneyTolerance), true
}

func checkOverpaidLine34(tree any) (domain.MathCheck, bool) {
	actual, present := fieldPresent(tree, "income.overpaid_line34")
	if !present || actual == 0 {
		return domain.MathCheck{}, false
	}
	expected := field(tree, "income.totalPayments_line33") - field(tree, "tax.totalTax_line24")
	return absoluteCheck("income.overpaid_line34", "Overpayment equals total payments minus total tax", expected, actual, moneyTolerance), true
}

func checkAmountOwedLine37(tree any) (domain.MathCheck, bool) {
	actual, present := fieldPresent(tree, "income.amountOwed_line37")
	if !present || actual == 0 {
		return domain.MathCheck{}, false
	}
	expected := field(tree, "tax.totalTax_line24") - field(tree, "income.totalPayments_line33")
	return absoluteCheck("income.amountOwed_line37", "Amount owed equals total tax minus total payments", expected, actual, moneyTolerance), true
}

func checkW2WagesMatchLine1(tree any) (domain.MathCheck, bool) {
	m, ok := tree.(map[string]any)
	if !ok {
		return domain.MathCheck{}, false
	}
	items, ok := m["w2Summary"].([]any)
	if !ok || len(items) == 0 {
		return domain.MathCheck{}, false
	}
	total := 0.0
	for _, item := range items {
		total += field(item, "wages_box1")
	}
	actual := field(tree, "income.wages_line1")
	return relativeCheck("income.wages_line1", "Sum of W-2 box 1 wages approximately matches line 1 wages", total, actual, 1.0), true
}

func checkScheduleCInstances(tree any) []domain.MathCheck {
	m, ok := tree.(map[string]any)
	if !ok {
		return nil
	}
	instances, ok := m["scheduleC"].([]any)
	if !ok {
		return nil
	}
	var checks []domain.MathCheck
	for i, instance := range instances {
		checks = append(checks, checkScheduleCInstance(instance, i)...)
	}
	return checks
}

func checkScheduleCInstance(instance any, index int) []domain.MathCheck {
	var checks []domain.MathCheck

	grossProfit := field(instance, "grossReceipts_line1") - field(instance, "cogs_line4")
	checks = append(checks, absoluteCheck(
		indexedPath("scheduleC", index, "grossProfit_line5"),
		"Gross profit equals gross receipts minus cost of goods sold",
		grossProfit, field(instance, "grossProfit_line5"), moneyTolerance))

	if otherIncome, present := fieldPresent(instance, "otherIncome_line6"); present {
		expected := field(instance, "grossProfit_line5") + otherIncome
		checks = append(checks, absoluteCheck(
			indexedPath("scheduleC", index, "grossIncome_line7"),
			"Gross income equals gross profit plus other income",
			expected, field(instance, "grossIncome_line7"), moneyTolerance))
	}

	netProfit := field(instance, "grossIncome_line7") - field(instance, "totalExpenses_line28")
	checks = append(checks, absoluteCheck(
		indexedPath("scheduleC", index, "netProfit_line31"),
		"Net profit equals gross income minus total expenses",
		netProfit, field(instance, "netProfit_line31"), moneyTolerance))

	expenseSum := sum(
		field(instance, "advertising"), field(instance, "carAndTruck"), field(instance, "commissions"),
		field(instance, "contractLabor"), field(instance, "depletion"), field(instance, "depreciation_line13"),
		field(instance, "employeeBenefits"), field(instance, "insurance"), field(instance, "interestMortgage"),
		field(instance, "interestOther"), field(instance, "legal"), field(instance, "officeExpense"),
		field(instance, "pensionPlans"), field(instance, "rent"), field(instance, "repairs"),
		field(instance, "supplies"), field(instance, "taxes"), field(instance, "travel"),
		field(instance, "meals"), field(instance, "utilities"), field(instance, "wages"),
		field(instance, "otherExpenses"),
	)
	if expenseSum > 0 {
		checks = append(checks, absoluteCheck(
			indexedPath("scheduleC", index, "totalExpenses_line28"),
			"Sum of expense line items equals total expenses",
			expenseSum, field(instance, "totalExpenses_line28"), moneyTolerance))
	}

	return checks
}

func checkScheduleEInstances(tree any) []domain.MathCheck {
	m, ok := tree.(map[string]any)
	if !ok {
		return nil
	}
	scheduleE, ok := m["scheduleE"].(map[string]any)
	if !ok {
		return nil
	}
	properties, ok := scheduleE["properties"].([]any)
	if !ok {
		return nil
	}
	var checks []domain.MathCheck
	for i, property := range properties {
		checks = append(checks, checkScheduleEProperty(property, i)...)
	}
	return checks
}

func checkScheduleEProperty(property any, index int) []domain.MathCheck {
	var checks []domain.MathCheck

	expenseItems := flattenExpenseItems(property)
	expenseSum := sum(expenseItems...)

	net := field(property, "rentsReceived") - field(property, "totalExpenses")
	checks = append(checks, absoluteCheck(
		indexedPath("scheduleE.properties", index, "netRentalIncome"),
		"Net rental income equals rents received minus total expenses",
		net, field(property, "netRentalIncome"), moneyTolerance))

	if expenseSum > 0 {
		checks = append(checks, absoluteCheck(
			indexedPath("scheduleE.properties", index, "totalExpenses"),
			"Sum of rental expense line items equals total expenses",
			expenseSum, field(property, "totalExpenses"), moneyTolerance))
	}

	return checks
}

func flattenExpenseItems(property any) []float64 {
	names := []string{
		"advertising", "cleaning", "insurance", "legal", "management",
		"mortgageInterest", "repairs", "supplies", "taxes", "utilities", "depreciation", "other",
	}
	values := make([]float64, 0, len(names))
	for _, name := range names {
		values = append(values, field(property, name))
	}
	return values
}

func indexedPath(base string, index int, suffix string) string {
	return base + "[" + strconv.Itoa(index) + "]." + suffix
}
