// Package finalcheck implements the pure math re-derivation:
// independent of the rules engine's own bookkeeping, it recomputes every
// load-bearing number and flags any divergence.
package finalcheck

import (
	"fmt"
	"math"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/huuhoait/credit-structuring-core/internal/rules"
)

const moneyTolerance = 1.00
const feeTolerance = 0.01
const rateTolerance = 0.0001
const ltvTolerance = 0.001

// Run recomputes RulesEngineOutput's numbers from scratch and cross-checks
// the compliance result's critical issues.
func Run(program domain.LoanProgram, output domain.RulesEngineOutput, compliance domain.ComplianceResult) domain.FinalCheckResult {
	var issues []domain.FinalCheckIssue

	issues = append(issues, checkMonthlyPayment(output)...)
	issues = append(issues, checkTotalRate(output)...)
	issues = append(issues, checkSpreadRange(program, output)...)
	issues = append(issues, checkApprovedAmountRange(program, output)...)
	issues = append(issues, checkTermAndAmortization(program, output)...)
	issues = append(issues, checkLTV(program, output)...)
	issues = append(issues, checkTotalFees(output)...)
	issues = append(issues, checkInterestOnlyAmortization(output)...)
	issues = append(issues, checkPositivity(output)...)
	issues = append(issues, mirrorCriticalComplianceIssues(compliance)...)
	issues = append(issues, checkProjectedDSCR(program, output)...)

	passed := true
	for _, issue := range issues {
		if issue.Severity == domain.SeverityError {
			passed = false
			break
		}
	}

	return domain.FinalCheckResult{Passed: passed, Issues: issues}
}

func checkMonthlyPayment(output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	recomputed := rules.MonthlyPayment(output.ApprovedAmount, output.Rate.TotalRate, output.AmortizationMonths, output.InterestOnly)
	diff := math.Abs(recomputed - output.MonthlyPayment)
	if diff <= moneyTolerance {
		return nil
	}
	return []domain.FinalCheckIssue{{
		Field:    "monthly_payment",
		Expected: fmt.Sprintf("%.2f", recomputed),
		Actual:   fmt.Sprintf("%.2f", output.MonthlyPayment),
		Severity: domain.SeverityError,
		Message:  "Recomputed monthly payment does not match the reported value.",
	}}
}

func checkTotalRate(output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	expected := output.Rate.BaseRateValue + output.Rate.Spread
	diff := math.Abs(output.Rate.TotalRate - expected)
	if diff <= rateTolerance {
		return nil
	}
	return []domain.FinalCheckIssue{{
		Field:    "rate.total_rate",
		Expected: fmt.Sprintf("%.4f", expected),
		Actual:   fmt.Sprintf("%.4f", output.Rate.TotalRate),
		Severity: domain.SeverityError,
		Message:  "Total rate does not equal base rate plus spread.",
	}}
}

func checkSpreadRange(program domain.LoanProgram, output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	min := program.StructuringRules.SpreadRange.Min - rateTolerance
	max := program.StructuringRules.SpreadRange.Max + rateTolerance
	if output.Rate.Spread >= min && output.Rate.Spread <= max {
		return nil
	}
	return []domain.FinalCheckIssue{{
		Field:    "rate.spread",
		Expected: fmt.Sprintf("[%.4f, %.4f]", program.StructuringRules.SpreadRange.Min, program.StructuringRules.SpreadRange.Max),
		Actual:   fmt.Sprintf("%.4f", output.Rate.Spread),
		Severity: domain.SeverityError,
		Message:  "Spread falls outside the program's allowed spread range.",
	}}
}

func checkApprovedAmountRange(program domain.LoanProgram, output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	rulesConfig := program.StructuringRules
	if output.ApprovedAmount < rulesConfig.MinLoanAmount {
		return []domain.FinalCheckIssue{{
			Field:    "approved_amount",
			Expected: fmt.Sprintf(">= %.2f", rulesConfig.MinLoanAmount),
			Actual:   fmt.Sprintf("%.2f", output.ApprovedAmount),
			Severity: domain.SeverityError,
			Message:  "Approved amount is below the program minimum.",
		}}
	}
	if rulesConfig.MaxLoanAmount != nil && output.ApprovedAmount > *rulesConfig.MaxLoanAmount {
		return []domain.FinalCheckIssue{{
			Field:    "approved_amount",
			Expected: fmt.Sprintf("<= %.2f", *rulesConfig.MaxLoanAmount),
			Actual:   fmt.Sprintf("%.2f", output.ApprovedAmount),
			Severity: domain.SeverityError,
			Message:  "Approved amount exceeds the program maximum.",
		}}
	}
	return nil
}

func checkTermAndAmortization(program domain.LoanProgram, output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	var issues []domain.FinalCheckIssue
	rulesConfig := program.StructuringRules

	if output.TermMonths > rulesConfig.MaxTermMonths {
		issues = append(issues, domain.FinalCheckIssue{
			Field:    "term_months",
			Expected: fmt.Sprintf("<= %d", rulesConfig.MaxTermMonths),
			Actual:   fmt.Sprintf("%d", output.TermMonths),
			Severity: domain.SeverityError,
			Message:  "Term exceeds the program maximum.",
		})
	}

	if !output.InterestOnly && output.AmortizationMonths > rulesConfig.MaxAmortizationMonths {
		issues = append(issues, domain.FinalCheckIssue{
			Field:    "amortization_months",
			Expected: fmt.Sprintf("<= %d", rulesConfig.MaxAmortizationMonths),
			Actual:   fmt.Sprintf("%d", output.AmortizationMonths),
			Severity: domain.SeverityError,
			Message:  "Amortization exceeds the program maximum.",
		})
	}

	return issues
}

func checkLTV(program domain.LoanProgram, output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	if output.LTV == nil {
		return nil
	}
	maxLTV := program.StructuringRules.MaxLTV
	if maxLTV <= 0 || *output.LTV <= maxLTV+ltvTolerance {
		return nil
	}
	return []domain.FinalCheckIssue{{
		Field:    "ltv",
		Expected: fmt.Sprintf("<= %.4f", maxLTV),
		Actual:   fmt.Sprintf("%.4f", *output.LTV),
		Severity: domain.SeverityError,
		Message:  "LTV exceeds the program maximum.",
	}}
}

func checkTotalFees(output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	sum := 0.0
	for _, f := range output.Fees {
		sum += f.Amount
	}
	if math.Abs(output.TotalFees-sum) <= feeTolerance {
		return nil
	}
	return []domain.FinalCheckIssue{{
		Field:    "total_fees",
		Expected: fmt.Sprintf("%.2f", sum),
		Actual:   fmt.Sprintf("%.2f", output.TotalFees),
		Severity: domain.SeverityError,
		Message:  "Total fees does not equal the sum of individual fee amounts.",
	}}
}

func checkInterestOnlyAmortization(output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	if output.InterestOnly && output.AmortizationMonths > 0 {
		return []domain.FinalCheckIssue{{
			Field:    "amortization_months",
			Expected: "0",
			Actual:   fmt.Sprintf("%d", output.AmortizationMonths),
			Severity: domain.SeverityWarning,
			Message:  "Interest-only deal carries a non-zero amortization schedule.",
		}}
	}
	return nil
}

func checkPositivity(output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	var issues []domain.FinalCheckIssue
	if output.ApprovedAmount <= 0 {
		issues = append(issues, nonPositiveIssue("approved_amount", output.ApprovedAmount))
	}
	if output.Rate.TotalRate <= 0 {
		issues = append(issues, nonPositiveIssue("rate.total_rate", output.Rate.TotalRate))
	}
	if output.TermMonths <= 0 {
		issues = append(issues, domain.FinalCheckIssue{
			Field:    "term_months",
			Expected: "> 0",
			Actual:   fmt.Sprintf("%d", output.TermMonths),
			Severity: domain.SeverityError,
			Message:  "Term months must be positive.",
		})
	}
	return issues
}

func nonPositiveIssue(field string, value float64) domain.FinalCheckIssue {
	return domain.FinalCheckIssue{
		Field:    field,
		Expected: "> 0",
		Actual:   fmt.Sprintf("%.4f", value),
		Severity: domain.SeverityError,
		Message:  field + " must be positive.",
	}
}

func mirrorCriticalComplianceIssues(compliance domain.ComplianceResult) []domain.FinalCheckIssue {
	var issues []domain.FinalCheckIssue
	for _, issue := range compliance.Issues {
		if issue.Severity != domain.SeverityCritical {
			continue
		}
		issues = append(issues, domain.FinalCheckIssue{
			Field:    "compliance." + issue.Regulation,
			Expected: "no critical compliance issues",
			Actual:   issue.Description,
			Severity: domain.SeverityError,
			Message:  "Critical compliance issue mirrored as a final-check error.",
		})
	}
	return issues
}

func checkProjectedDSCR(program domain.LoanProgram, output domain.RulesEngineOutput) []domain.FinalCheckIssue {
	minDSCR := program.StructuringRules.MinDSCR
	if minDSCR <= 0 || output.ProjectedDSCRWithProposedPayment == nil {
		return nil
	}
	if *output.ProjectedDSCRWithProposedPayment >= minDSCR {
		return nil
	}
	return []domain.FinalCheckIssue{{
		Field:    "projected_dscr_with_proposed_payment",
		Expected: fmt.Sprintf(">= %.2f", minDSCR),
		Actual:   fmt.Sprintf("%.2f", *output.ProjectedDSCRWithProposedPayment),
		Severity: domain.SeverityWarning,
		Message:  "Projected DSCR with the proposed payment falls below the program minimum.",
	}}
}
