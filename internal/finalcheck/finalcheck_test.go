package finalcheck

import (
	"testing"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/huuhoait/credit-structuring-core/internal/catalog"
	"github.com/huuhoait/credit-structuring-core/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanOutput(program domain.LoanProgram) domain.RulesEngineOutput {
	rate := domain.Rate{BaseRateValue: 0.0675, Spread: 0.025, TotalRate: 0.0925}
	payment := rules.MonthlyPayment(250_000, rate.TotalRate, 240, false)
	return domain.RulesEngineOutput{
		ProgramID:          program.ID,
		ApprovedAmount:     250_000,
		Rate:               rate,
		TermMonths:         120,
		AmortizationMonths: 240,
		MonthlyPayment:     payment,
		Fees:               []domain.FeeLineItem{{Name: "origination", Amount: 2_500}},
		TotalFees:          2_500,
	}
}

// General math-check property: a deal built entirely by the rules engine's
// own formulas must pass its own final check.
func TestRun_CleanDeal_Passes(t *testing.T) {
	cat := catalog.New()
	program, ok := cat.Get(domain.ProgramCommercialCRE)
	require.True(t, ok)

	output := cleanOutput(program)
	compliance := domain.ComplianceResult{Compliant: true}

	result := Run(program, output, compliance)

	assert.True(t, result.Passed)
	assert.Empty(t, result.Issues)
}

func TestRun_MonthlyPaymentMismatch_Errors(t *testing.T) {
	cat := catalog.New()
	program, ok := cat.Get(domain.ProgramCommercialCRE)
	require.True(t, ok)

	output := cleanOutput(program)
	output.MonthlyPayment += 50

	result := Run(program, output, domain.ComplianceResult{})

	assert.False(t, result.Passed)
	var found bool
	for _, issue := range result.Issues {
		if issue.Field == "monthly_payment" && issue.Severity == domain.SeverityError {
			found = true
		}
	}
	assert.True(t, found)
}

// S5 - interest-only line of credit: zero amortization, no warning about a
// stray amortization schedule, and the recomputed payment must still match.
func TestRun_InterestOnlyLineOfCredit_Passes(t *testing.T) {
	cat := catalog.New()
	program, ok := cat.Get(domain.ProgramLineOfCredit)
	require.True(t, ok)

	rate := domain.Rate{BaseRateValue: 0.0675, Spread: 0.025, TotalRate: 0.0925}
	payment := rules.MonthlyPayment(250_000, rate.TotalRate, 0, true)
	output := domain.RulesEngineOutput{
		ProgramID:          program.ID,
		ApprovedAmount:     250_000,
		Rate:               rate,
		TermMonths:         program.StructuringRules.MaxTermMonths,
		AmortizationMonths: 0,
		MonthlyPayment:     payment,
		InterestOnly:       true,
	}

	result := Run(program, output, domain.ComplianceResult{})

	assert.True(t, result.Passed)
}

func TestRun_CriticalComplianceIssueMirroredAsError(t *testing.T) {
	cat := catalog.New()
	program, ok := cat.Get(domain.ProgramCommercialCRE)
	require.True(t, ok)

	output := cleanOutput(program)
	compliance := domain.ComplianceResult{
		Issues: []domain.ComplianceIssue{{Severity: domain.SeverityCritical, Regulation: "State Usury Law", Description: "rate exceeds state cap"}},
	}

	result := Run(program, output, compliance)

	assert.False(t, result.Passed)
}

func TestRun_ProjectedDSCRBelowMinimum_Warns(t *testing.T) {
	cat := catalog.New()
	program, ok := cat.Get(domain.ProgramDSCR)
	require.True(t, ok)

	output := cleanOutput(program)
	output.ProgramID = program.ID
	low := program.StructuringRules.MinDSCR - 0.1
	output.ProjectedDSCRWithProposedPayment = &low

	result := Run(program, output, domain.ComplianceResult{})

	var foundWarning bool
	for _, issue := range result.Issues {
		if issue.Field == "projected_dscr_with_proposed_payment" && issue.Severity == domain.SeverityWarning {
			foundWarning = true
		}
	}
	assert.True(t, foundWarning)
	assert.True(t, result.Passed)
}
