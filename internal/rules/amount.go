package rules

// approvedAmountAndLTV computes the approved amount: it is
// never inflated above the requested amount, and is further capped by the
// program's maximum loan amount and by the collateral-value × max-LTV
// ceiling when a collateral value is known.
func approvedAmountAndLTV(requestedAmount float64, maxLoanAmount *float64, collateralValue *float64, maxLTV float64) (approvedAmount float64, ltv *float64) {
	approvedAmount = requestedAmount

	if maxLoanAmount != nil && *maxLoanAmount < approvedAmount {
		approvedAmount = *maxLoanAmount
	}

	if collateralValue != nil && *collateralValue > 0 && maxLTV > 0 {
		ceiling := *collateralValue * maxLTV
		if ceiling < approvedAmount {
			approvedAmount = ceiling
		}
	}

	approvedAmount = round2(approvedAmount)

	if collateralValue != nil && *collateralValue > 0 {
		v := round4(approvedAmount / *collateralValue)
		ltv = &v
	}

	return approvedAmount, ltv
}
