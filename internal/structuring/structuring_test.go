package structuring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/huuhoait/credit-structuring-core/internal/catalog"
)

type fixedRateSource struct{ rate float64 }

func (f fixedRateSource) GetBaseRate(_ context.Context, _ domain.BaseRateKind) (float64, error) {
	return f.rate, nil
}

type stubGenerator struct{}

func (stubGenerator) GenerateJSON(_ context.Context, _, _ string) ([]byte, error) {
	return []byte(`{"issues":[]}`), nil
}

func baseInput(program domain.LoanProgram) domain.StructureDealInput {
	return domain.StructureDealInput{
		Program:         program,
		BorrowerName:    "Acme Holdings LLC",
		RequestedAmount: 500_000,
		Analysis: domain.Analysis{
			BorrowerName: "Acme Holdings LLC",
			Summary: domain.AnalysisSummary{
				QualifyingIncome: 200_000,
				GlobalDSCR:       floatPtr(1.5),
				MonthsOfReserves: 6,
				RiskRating:       domain.RiskRatingLow,
			},
		},
	}
}

func TestStructureDeal_CleanDealApproves(t *testing.T) {
	cat := catalog.New()
	program, ok := cat.Get(domain.ProgramConventionalBusiness)
	require.True(t, ok)

	orch := New(zap.NewNop(), fixedRateSource{rate: 0.0750}, stubGenerator{})

	output, err := orch.StructureDeal(context.Background(), baseInput(program))

	require.NoError(t, err)
	assert.Empty(t, output.DeclineReasons)
	assert.Equal(t, domain.DealApproved, output.Status)
	assert.True(t, output.FinalCheck.Passed)
}

// S3-adjacent: eligibility failure (DSCR far below minimum) must surface as
// a decline reason and force needs_review, never an auto-decline.
func TestStructureDeal_EligibilityFailureForcesNeedsReview(t *testing.T) {
	cat := catalog.New()
	program, ok := cat.Get(domain.ProgramDSCR)
	require.True(t, ok)

	input := baseInput(program)
	lowDSCR := 0.5
	input.Analysis.Summary.GlobalDSCR = &lowDSCR
	input.PropertyValue = floatPtr(700_000)

	orch := New(zap.NewNop(), fixedRateSource{rate: 0.0750}, stubGenerator{})

	output, err := orch.StructureDeal(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, output.DeclineReasons)
	assert.Equal(t, domain.DealNeedsReview, output.Status)
}

func floatPtr(v float64) *float64 { return &v }
