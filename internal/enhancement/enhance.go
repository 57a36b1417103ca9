// Package enhancement implements the narrative enhancer: it
// consumes the rules engine output and the credit analysis and asks an
// external generator for prose-only additions. The generator's output is
// validated against the AiEnhancement shape before use; on failure or
// timeout the pipeline continues with an empty enhancement.
package enhancement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/huuhoait/credit-structuring-core/domain"
)

const unavailableJustification = "unavailable — rules engine only"

const systemPrompt = `You are a credit memo narrative assistant. You add prose only: custom covenants, additional conditions, special terms, and a justification. You never restate or imply numeric values that should override the rules engine. Respond with strict JSON matching the requested schema.`

// Enhance calls the narrative generator and returns a validated
// AiEnhancement. On any external failure it returns the empty enhancement
// (not an error) so the structuring pipeline can proceed.
func Enhance(ctx context.Context, logger *zap.Logger, generator domain.NarrativeGenerator, rulesOutput domain.RulesEngineOutput, analysis domain.Analysis) domain.AiEnhancement {
	userPrompt, err := buildUserPrompt(rulesOutput, analysis)
	if err != nil {
		logger.Warn("failed to build narrative enhancer prompt", zap.Error(err))
		return emptyEnhancement()
	}

	raw, err := generator.GenerateJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		logger.Warn("narrative enhancer unavailable", zap.Error(err))
		return emptyEnhancement()
	}

	return validate(raw)
}

func buildUserPrompt(rulesOutput domain.RulesEngineOutput, analysis domain.Analysis) (string, error) {
	payload := struct {
		ProgramID  string               `json:"program_id"`
		Status     string               `json:"eligibility_status"`
		RiskRating domain.RiskRating    `json:"risk_rating"`
		RiskFlags  []domain.RiskFlag    `json:"risk_flags"`
		Conditions []domain.Condition   `json:"conditions"`
	}{
		ProgramID:  rulesOutput.ProgramID,
		RiskRating: analysis.Summary.RiskRating,
		RiskFlags:  analysis.RiskFlags,
		Conditions: rulesOutput.Conditions,
	}
	if rulesOutput.Eligibility.Passed {
		payload.Status = "eligible"
	} else {
		payload.Status = "ineligible"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal enhancer context: %w", err)
	}
	return string(body), nil
}

// validate parses raw into an AiEnhancement, dropping unknown/malformed
// fields, defaulting arrays to empty, and defaulting justification to "".
func validate(raw []byte) domain.AiEnhancement {
	var parsed struct {
		CustomCovenants      []string `json:"custom_covenants"`
		AdditionalConditions []string `json:"additional_conditions"`
		SpecialTerms         []string `json:"special_terms"`
		Justification        string   `json:"justification"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// A field of the wrong type is skipped by Unmarshal, which still
		// decodes the others; only a response that is not JSON is discarded.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return emptyEnhancement()
		}
	}

	enhancement := domain.AiEnhancement{
		CustomCovenants:      parsed.CustomCovenants,
		AdditionalConditions: parsed.AdditionalConditions,
		SpecialTerms:         parsed.SpecialTerms,
		Justification:        parsed.Justification,
	}
	if enhancement.CustomCovenants == nil {
		enhancement.CustomCovenants = []string{}
	}
	if enhancement.AdditionalConditions == nil {
		enhancement.AdditionalConditions = []string{}
	}
	if enhancement.SpecialTerms == nil {
		enhancement.SpecialTerms = []string{}
	}
	return enhancement
}

func emptyEnhancement() domain.AiEnhancement {
	return domain.AiEnhancement{
		CustomCovenants:      []string{},
		AdditionalConditions: []string{},
		SpecialTerms:         []string{},
		Justification:        unavailableJustification,
	}
}
