package rules

import (
	"context"
	"testing"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRateSource struct {
	rates map[domain.BaseRateKind]float64
}

func (f fixedRateSource) GetBaseRate(_ context.Context, kind domain.BaseRateKind) (float64, error) {
	return f.rates[kind], nil
}

// S3 - SBA tier cap: approvedAmount=200_000, riskRating=high, prime=0.0675.
// tierMaxSpread for <=250k is 0.06; high risk snaps to the max of the tier.
func TestRun_SBA7aTierCap(t *testing.T) {
	program := domain.LoanProgram{
		ID: domain.ProgramSBA7a,
		StructuringRules: domain.StructuringRules{
			BaseRate:      domain.BaseRatePrime,
			SpreadRange:   domain.SpreadRange{Min: 0.0, Max: 0.0675},
			MaxTermMonths: 120,
			MinLoanAmount: 25_000,
			MaxLoanAmount: floatPtr(200_000),
		},
	}
	input := domain.StructureDealInput{
		Program:         program,
		RequestedAmount: 200_000,
		Analysis: domain.Analysis{
			Summary: domain.AnalysisSummary{RiskRating: domain.RiskRatingHigh, QualifyingIncome: 100_000},
		},
	}
	rateSource := fixedRateSource{rates: map[domain.BaseRateKind]float64{domain.BaseRatePrime: 0.0675}}

	output, err := Run(context.Background(), rateSource, input)
	require.NoError(t, err)

	assert.Equal(t, 200_000.0, output.ApprovedAmount)
	assert.InDelta(t, 0.06, output.Rate.Spread, 0.0001)
	assert.InDelta(t, 0.0675+0.06, output.Rate.TotalRate, 0.0001)
}

// S5 - interest-only line of credit: monthlyPayment = principal*rate/12.
func TestRun_InterestOnlyLineOfCredit(t *testing.T) {
	program := domain.LoanProgram{
		ID: domain.ProgramLineOfCredit,
		StructuringRules: domain.StructuringRules{
			BaseRate:      domain.BaseRatePrime,
			SpreadRange:   domain.SpreadRange{Min: 0.02, Max: 0.02},
			MaxTermMonths: 36,
			InterestOnly:  true,
			MinLoanAmount: 25_000,
			MaxLoanAmount: floatPtr(500_000),
		},
	}
	input := domain.StructureDealInput{
		Program:         program,
		RequestedAmount: 250_000,
		Analysis: domain.Analysis{
			Summary: domain.AnalysisSummary{RiskRating: domain.RiskRatingLow},
		},
	}
	rateSource := fixedRateSource{rates: map[domain.BaseRateKind]float64{domain.BaseRatePrime: 0.075}}

	output, err := Run(context.Background(), rateSource, input)
	require.NoError(t, err)

	assert.Equal(t, 0, output.AmortizationMonths)
	assert.InDelta(t, 250_000*0.095/12, output.MonthlyPayment, 0.01)
}

func floatPtr(v float64) *float64 { return &v }
