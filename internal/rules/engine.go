package rules

import (
	"context"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// Run executes the full deterministic rules engine. Every
// numeric field on RulesEngineOutput is derived here and nowhere else.
func Run(ctx context.Context, rateSource domain.RateSource, input domain.StructureDealInput) (domain.RulesEngineOutput, error) {
	program := input.Program
	rules := program.StructuringRules

	eligibility := evaluateEligibility(program, input.Analysis, input.RequestedAmount, input.PropertyValue)

	approvedAmount, ltv := approvedAmountAndLTV(input.RequestedAmount, rules.MaxLoanAmount, input.CollateralValue, rules.MaxLTV)

	// requestedRate is accepted on the input, but the pricing algorithm is
	// fully determined by program and risk rating; a borrower-requested rate
	// does not override the computed rate.
	rate, err := computeRate(ctx, rateSource, program.ID, rules.SpreadRange, rules.BaseRate, input.Analysis.Summary.RiskRating, approvedAmount)
	if err != nil {
		return domain.RulesEngineOutput{}, err
	}

	termMonths, amortizationMonths := termAndAmortization(input.RequestedTermMonths, rules.MaxTermMonths, rules.InterestOnly, rules.MaxAmortizationMonths)

	payment := MonthlyPayment(approvedAmount, rate.TotalRate, amortizationMonths, rules.InterestOnly)

	fees, totalFees := computeFees(program.StandardFees, approvedAmount)

	covenants := copyStandardCovenants(program.StandardCovenants)
	conditions := buildConditions(program)

	var projectedDSCR *float64
	if payment > 0 && input.Analysis.Summary.QualifyingIncome > 0 {
		v := round4(input.Analysis.Summary.QualifyingIncome / 12 / payment)
		projectedDSCR = &v
	}

	return domain.RulesEngineOutput{
		ProgramID:                        program.ID,
		Eligibility:                      eligibility,
		ApprovedAmount:                   approvedAmount,
		LTV:                              ltv,
		Rate:                             rate,
		TermMonths:                       termMonths,
		AmortizationMonths:               amortizationMonths,
		MonthlyPayment:                   payment,
		InterestOnly:                     rules.InterestOnly,
		PrepaymentPenalty:                rules.PrepaymentPenalty,
		PersonalGuaranty:                 rules.RequiresPersonalGuaranty,
		RequiresAppraisal:                rules.RequiresAppraisal,
		Covenants:                        covenants,
		Conditions:                       conditions,
		Fees:                             fees,
		TotalFees:                        totalFees,
		ProjectedDSCRWithProposedPayment: projectedDSCR,
	}, nil
}
