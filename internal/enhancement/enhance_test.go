package enhancement

import (
	"context"
	"errors"
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

func TestEnhance_ValidResponse(t *testing.T) {
	gen := stubGenerator{response: []byte(`{"custom_covenants":["Maintain insurance"],"justification":"borrower has strong cash reserves"}`)}
	result := Enhance(context.Background(), zap.NewNop(), gen, domain.RulesEngineOutput{}, domain.Analysis{})

	require.Len(t, result.CustomCovenants, 1)
	assert.Equal(t, "Maintain insurance", result.CustomCovenants[0])
	assert.Empty(t, result.AdditionalConditions)
	assert.Equal(t, "borrower has strong cash reserves", result.Justification)
}

func TestEnhance_GeneratorErrorFallsBackToEmpty(t *testing.T) {
	gen := stubGenerator{err: errors.New("timeout")}
	result := Enhance(context.Background(), zap.NewNop(), gen, domain.RulesEngineOutput{}, domain.Analysis{})

	assert.Equal(t, unavailableJustification, result.Justification)
	assert.Empty(t, result.CustomCovenants)
}

func TestEnhance_MalformedJSONFallsBackToEmpty(t *testing.T) {
	gen := stubGenerator{response: []byte(`not json`)}
	result := Enhance(context.Background(), zap.NewNop(), gen, domain.RulesEngineOutput{}, domain.Analysis{})

	assert.Equal(t, unavailableJustification, result.Justification)
}
