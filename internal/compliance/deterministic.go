package compliance

import (
	"fmt"

	"github.com/huuhoait/credit-structuring-core/domain"
)

const sbaLoanCap = 5_000_000.0
const sba504LoanCap = 5_000_000.0

// runDeterministicChecks implements the always-run deterministic
// layer. It never calls out; every issue here is pure arithmetic/lookup.
func runDeterministicChecks(program domain.LoanProgram, rulesOutput domain.RulesEngineOutput, stateAbbr *string) []domain.ComplianceIssue {
	var issues []domain.ComplianceIssue
	isCommercial := program.Category != domain.CategoryResidential

	issues = append(issues, checkStateUsury(stateAbbr, rulesOutput.Rate.TotalRate, rulesOutput.ApprovedAmount, isCommercial)...)
	issues = append(issues, checkSBACaps(program, rulesOutput)...)
	issues = append(issues, checkTILA(program, rulesOutput)...)
	issues = append(issues, checkStateDisclosures(stateAbbr)...)
	issues = append(issues, checkPrepaymentPenalty(program, rulesOutput)...)
	issues = append(issues, ecoaReminder())

	return issues
}

func checkStateUsury(stateAbbr *string, totalRate, loanAmount float64, isCommercial bool) []domain.ComplianceIssue {
	if stateAbbr == nil {
		return nil
	}
	limit, ok := usuryLimit(*stateAbbr, isCommercial)
	if !ok || totalRate <= limit {
		return nil
	}
	return []domain.ComplianceIssue{{
		Severity:       domain.SeverityCritical,
		Regulation:     "State Usury Law",
		Description:    fmt.Sprintf("Total rate %.4f exceeds the %s statutory limit of %.4f for a loan of $%.2f.", totalRate, *stateAbbr, limit, loanAmount),
		Recommendation: "Reduce the rate below the statutory ceiling or restructure under an exempt loan class.",
	}}
}

func checkSBACaps(program domain.LoanProgram, rulesOutput domain.RulesEngineOutput) []domain.ComplianceIssue {
	var issues []domain.ComplianceIssue

	switch program.ID {
	case domain.ProgramSBA7a:
		if rulesOutput.ApprovedAmount > sbaLoanCap {
			issues = append(issues, domain.ComplianceIssue{
				Severity:       domain.SeverityCritical,
				Regulation:     "SBA 7(a) Program Limit",
				Description:    fmt.Sprintf("Approved amount $%.2f exceeds the $%.2f SBA 7(a) program cap.", rulesOutput.ApprovedAmount, sbaLoanCap),
				Recommendation: "Reduce the approved amount or split financing across multiple facilities.",
			})
		}
		if cap, ok := sba7aRateCap(rulesOutput.ApprovedAmount, rulesOutput.Rate.BaseRateValue); ok && rulesOutput.Rate.TotalRate > cap {
			issues = append(issues, domain.ComplianceIssue{
				Severity:       domain.SeverityCritical,
				Regulation:     "SBA 7(a) Rate Cap",
				Description:    fmt.Sprintf("Total rate %.4f exceeds the SBA 7(a) tier rate cap of %.4f.", rulesOutput.Rate.TotalRate, cap),
				Recommendation: "Reduce spread to bring the total rate within the applicable SBA tier cap.",
			})
		}
	case domain.ProgramSBA504:
		if rulesOutput.ApprovedAmount > sba504LoanCap {
			issues = append(issues, domain.ComplianceIssue{
				Severity:       domain.SeverityCritical,
				Regulation:     "SBA 504 Program Limit",
				Description:    fmt.Sprintf("Approved amount $%.2f exceeds the $%.2f SBA 504 program cap.", rulesOutput.ApprovedAmount, sba504LoanCap),
				Recommendation: "Verify eligibility for the manufacturing/energy-project exception allowing up to $5.5M before proceeding.",
			})
		}
	}

	return issues
}

// sba7aRateCap is the SBA 7(a) rate-cap tier table: <=$50k -> prime +
// 6.5%, <=$250k -> prime + 6.0%, >$250k -> prime + 2.75% (variable-rate).
func sba7aRateCap(approvedAmount, baseRateValue float64) (float64, bool) {
	switch {
	case approvedAmount <= 50_000:
		return baseRateValue + 0.065, true
	case approvedAmount <= 250_000:
		return baseRateValue + 0.060, true
	default:
		return baseRateValue + 0.0275, true
	}
}

func checkTILA(program domain.LoanProgram, rulesOutput domain.RulesEngineOutput) []domain.ComplianceIssue {
	if program.Category != domain.CategoryResidential {
		return nil
	}
	if rulesOutput.TermMonths <= 0 || rulesOutput.ApprovedAmount <= 0 {
		return nil
	}

	years := float64(rulesOutput.TermMonths) / 12
	estimatedAPR := rulesOutput.Rate.TotalRate + rulesOutput.TotalFees/rulesOutput.ApprovedAmount/years

	if estimatedAPR > 1.5*rulesOutput.Rate.TotalRate {
		return []domain.ComplianceIssue{{
			Severity:       domain.SeverityWarning,
			Regulation:     "TILA / Reg Z",
			Description:    fmt.Sprintf("Estimated APR %.4f is more than 1.5x the note rate %.4f.", estimatedAPR, rulesOutput.Rate.TotalRate),
			Recommendation: "Review fee structure; a large fee-to-rate spread may require additional consumer disclosures.",
		}}
	}
	return nil
}

func checkStateDisclosures(stateAbbr *string) []domain.ComplianceIssue {
	if stateAbbr == nil {
		return nil
	}
	disclosures, ok := stateDisclosures[*stateAbbr]
	if !ok || len(disclosures) == 0 {
		return nil
	}
	description := "Required state disclosures:"
	for _, d := range disclosures {
		description += " " + d + ";"
	}
	return []domain.ComplianceIssue{{
		Severity:       domain.SeverityInfo,
		Regulation:     "State Commercial Financing Disclosure Law",
		Description:    description,
		Recommendation: "Provide the listed disclosures to the borrower prior to or at closing.",
	}}
}

func checkPrepaymentPenalty(program domain.LoanProgram, rulesOutput domain.RulesEngineOutput) []domain.ComplianceIssue {
	if !rulesOutput.PrepaymentPenalty {
		return nil
	}
	for _, reg := range program.ApplicableRegulations {
		if reg == "Dodd-Frank" || reg == "ATR" {
			return []domain.ComplianceIssue{{
				Severity:       domain.SeverityWarning,
				Regulation:     "Dodd-Frank / ATR",
				Description:    "Program carries a prepayment penalty and is subject to Dodd-Frank covered-mortgage rules.",
				Recommendation: "Confirm the prepayment penalty structure qualifies under the covered-transaction exceptions before closing.",
			}}
		}
	}
	return nil
}

func ecoaReminder() domain.ComplianceIssue {
	return domain.ComplianceIssue{
		Severity:       domain.SeverityInfo,
		Regulation:     "ECOA / Reg B",
		Description:    "Fair-lending reminder: all applicants must be evaluated without regard to a protected characteristic.",
		Recommendation: "Confirm adverse-action notice procedures are followed if the deal is declined or countered.",
	}
}
