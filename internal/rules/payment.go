package rules

import "math"

// termAndAmortization caps the requested term and derives the amortization period.
func termAndAmortization(requestedTermMonths *int, maxTermMonths int, interestOnly bool, maxAmortizationMonths int) (termMonths, amortizationMonths int) {
	termMonths = maxTermMonths
	if requestedTermMonths != nil && *requestedTermMonths < maxTermMonths {
		termMonths = *requestedTermMonths
	}

	if interestOnly {
		return termMonths, 0
	}
	return termMonths, maxAmortizationMonths
}

// MonthlyPayment computes the closed-form amortization payment,
// computed internally at 4-decimal precision and exposed at 2 decimals.
// Exported so the final-check re-derivation (component I) recomputes the
// payment through the identical formula rather than a second copy of it.
func MonthlyPayment(principal, totalRate float64, amortizationMonths int, interestOnly bool) float64 {
	if principal <= 0 {
		return 0
	}
	if interestOnly || amortizationMonths <= 0 {
		return round2(round4(principal * totalRate / 12))
	}

	monthlyRate := round4(totalRate / 12)
	n := float64(amortizationMonths)

	if monthlyRate == 0 {
		return round2(round4(principal / n))
	}

	factor := math.Pow(1+monthlyRate, n)
	payment := principal * monthlyRate * factor / (factor - 1)
	return round2(round4(payment))
}
