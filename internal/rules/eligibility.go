// Package rules implements the deterministic loan-structuring rules engine
// eligibility, approved amount, rate, term/amortization,
// monthly payment, fees, covenants/conditions, and projected coverage.
package rules

import (
	"fmt"

	"github.com/huuhoait/credit-structuring-core/domain"
)

func evaluateEligibility(program domain.LoanProgram, analysis domain.Analysis, requestedAmount float64, propertyValue *float64) domain.Eligibility {
	var failures, warnings []domain.EligibilityIssue

	rules := program.StructuringRules

	if rules.MinDSCR > 0 {
		if analysis.Summary.GlobalDSCR == nil {
			warnings = append(warnings, domain.EligibilityIssue{
				Code:        "dscr_unknown",
				Description: "Global DSCR is not available for a program that requires one.",
			})
		} else {
			dscr := *analysis.Summary.GlobalDSCR
			if dscr < rules.MinDSCR {
				failures = append(failures, domain.EligibilityIssue{
					Code:        "dscr_below_minimum",
					Description: "Global DSCR is below the program minimum.",
					Required:    fmt.Sprintf("%.2f", rules.MinDSCR),
					Actual:      fmt.Sprintf("%.2f", dscr),
				})
			} else if dscr < 1.1*rules.MinDSCR {
				warnings = append(warnings, domain.EligibilityIssue{
					Code:        "dscr_limited_cushion",
					Description: "Global DSCR clears the minimum but has limited cushion.",
					Required:    fmt.Sprintf("%.2f", rules.MinDSCR),
					Actual:      fmt.Sprintf("%.2f", dscr),
				})
			}
		}
	}

	if rules.MaxDTI > 0 {
		if analysis.Summary.BackEndDTI == nil {
			warnings = append(warnings, domain.EligibilityIssue{
				Code:        "dti_unknown",
				Description: "Back-end DTI is not available for a program that requires one.",
			})
		} else if dti := *analysis.Summary.BackEndDTI; dti > rules.MaxDTI {
			failures = append(failures, domain.EligibilityIssue{
				Code:        "dti_above_maximum",
				Description: "Back-end DTI exceeds the program maximum.",
				Required:    fmt.Sprintf("%.2f", rules.MaxDTI),
				Actual:      fmt.Sprintf("%.2f", dti),
			})
		}
	}

	if requestedAmount < rules.MinLoanAmount {
		failures = append(failures, domain.EligibilityIssue{
			Code:        "amount_below_minimum",
			Description: "Requested amount is below the program minimum.",
			Required:    fmt.Sprintf("%.2f", rules.MinLoanAmount),
			Actual:      fmt.Sprintf("%.2f", requestedAmount),
		})
	}
	if rules.MaxLoanAmount != nil && requestedAmount > *rules.MaxLoanAmount {
		failures = append(failures, domain.EligibilityIssue{
			Code:        "amount_above_maximum",
			Description: "Requested amount exceeds the program maximum.",
			Required:    fmt.Sprintf("%.2f", *rules.MaxLoanAmount),
			Actual:      fmt.Sprintf("%.2f", requestedAmount),
		})
	}

	if rules.MaxLTV > 0 && propertyValue != nil && *propertyValue > 0 {
		ltv := requestedAmount / *propertyValue
		if ltv > rules.MaxLTV {
			failures = append(failures, domain.EligibilityIssue{
				Code:        "ltv_above_maximum",
				Description: "Requested loan-to-value exceeds the program maximum.",
				Required:    fmt.Sprintf("%.4f", rules.MaxLTV),
				Actual:      fmt.Sprintf("%.4f", ltv),
			})
		}
	}

	if analysis.Summary.RiskRating == domain.RiskRatingElevated || analysis.Summary.RiskRating == domain.RiskRatingHigh {
		warnings = append(warnings, domain.EligibilityIssue{
			Code:        "elevated_risk_rating",
			Description: "Borrower risk rating is elevated or high.",
			Actual:      string(analysis.Summary.RiskRating),
		})
	}

	if analysis.Summary.MonthsOfReserves < 3 {
		warnings = append(warnings, domain.EligibilityIssue{
			Code:        "low_reserves",
			Description: "Borrower has fewer than three months of reserves.",
			Required:    "3",
			Actual:      fmt.Sprintf("%.1f", analysis.Summary.MonthsOfReserves),
		})
	}

	return domain.Eligibility{
		Passed:   len(failures) == 0,
		Failures: failures,
		Warnings: warnings,
	}
}
