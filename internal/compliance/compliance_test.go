package compliance

import (
	"context"
	"testing"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response []byte
	err      error
}

func (s stubGenerator) GenerateJSON(_ context.Context, _, _ string) ([]byte, error) {
	return s.response, s.err
}

// S4 - usury violation: commercial_cre, stateAbbr=AR, totalRate=0.22 (above
// AR commercial limit). Expected: critical issue, compliant=false.
func TestRun_UsuryViolation(t *testing.T) {
	program := domain.LoanProgram{ID: domain.ProgramCommercialCRE, Category: domain.CategoryCommercial}
	rulesOutput := domain.RulesEngineOutput{
		ApprovedAmount: 1_000_000,
		Rate:           domain.Rate{TotalRate: 0.22},
	}
	state := "AR"

	result := Run(context.Background(), zap.NewNop(), stubGenerator{response: []byte(`{"issues":[]}`)}, program, rulesOutput, &state)

	assert.False(t, result.Compliant)

	var foundCritical bool
	for _, issue := range result.Issues {
		if issue.Severity == domain.SeverityCritical && issue.Regulation == "State Usury Law" {
			foundCritical = true
		}
	}
	assert.True(t, foundCritical)
}

func TestRun_NarrativeFailureAddsManualReviewWarning(t *testing.T) {
	program := domain.LoanProgram{ID: domain.ProgramConventionalBusiness, Category: domain.CategoryCommercial}
	rulesOutput := domain.RulesEngineOutput{ApprovedAmount: 100_000, Rate: domain.Rate{TotalRate: 0.08}}

	result := Run(context.Background(), zap.NewNop(), stubGenerator{err: assertError("boom")}, program, rulesOutput, nil)

	require.NotEmpty(t, result.AiReviewIssues)
	assert.Equal(t, manualReviewRequiredMessage, result.AiReviewIssues[0].Description)
}

type assertError string

func (e assertError) Error() string { return string(e) }
