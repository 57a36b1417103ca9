package verification

import "github.com/huuhoait/credit-structuring-core/domain"

// checkBankStatement evaluates the bank-statement invariants:
// the ending-balance roll-forward is mandatory whenever either balance is
// present, and the deposit/withdrawal line items reconcile to their
// reported totals within relative tolerance.
func checkBankStatement(tree any) []domain.MathCheck {
	var checks []domain.MathCheck

	if c, ok := checkEndingBalance(tree); ok {
		checks = append(checks, c)
	}

	if deposits, ok := sumAmounts(tree, "deposits"); ok {
		checks = append(checks, relativeCheck("totalDeposits", "Sum of itemized deposits approximately matches total deposits", deposits, field(tree, "totalDeposits"), moneyTolerance))
	}

	if withdrawals, ok := sumAbsAmounts(tree, "withdrawals"); ok {
		checks = append(checks, relativeCheck("totalWithdrawals", "Sum of itemized withdrawals approximately matches total withdrawals", withdrawals, field(tree, "totalWithdrawals"), moneyTolerance))
	}

	return checks
}

func checkEndingBalance(tree any) (domain.MathCheck, bool) {
	_, beginningPresent := fieldPresent(tree, "beginningBalance")
	_, endingPresent := fieldPresent(tree, "endingBalance")
	if !beginningPresent && !endingPresent {
		return domain.MathCheck{}, false
	}
	expected := field(tree, "beginningBalance") + field(tree, "totalDeposits") - field(tree, "totalWithdrawals")
	actual := field(tree, "endingBalance")
	return absoluteCheck("endingBalance", "Ending balance equals beginning balance plus deposits minus withdrawals", expected, actual, moneyTolerance), true
}

func sumAmounts(tree any, key string) (float64, bool) {
	m, ok := tree.(map[string]any)
	if !ok {
		return 0, false
	}
	items, ok := m[key].([]any)
	if !ok || len(items) == 0 {
		return 0, false
	}
	total := 0.0
	for _, item := range items {
		total += field(item, "amount")
	}
	return total, true
}

func sumAbsAmounts(tree any, key string) (float64, bool) {
	m, ok := tree.(map[string]any)
	if !ok {
		return 0, false
	}
	items, ok := m[key].([]any)
	if !ok || len(items) == 0 {
		return 0, false
	}
	total := 0.0
	for _, item := range items {
		v := field(item, "amount")
		if v < 0 {
			v = -v
		}
		total += v
	}
	return total, true
}
