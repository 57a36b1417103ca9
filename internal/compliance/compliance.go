// Package compliance implements the two-layer compliance review: an
// always-run deterministic layer, and an external narrative review
// merged into the same issues list.
package compliance

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/huuhoait/credit-structuring-core/domain"
)

const manualReviewRequiredMessage = "manual compliance review required"

var deterministicCheckNames = []string{
	"state_usury", "sba_7a_cap", "sba_504_cap", "tila_reg_z", "state_disclosures",
	"dodd_frank_prepayment", "ecoa_reg_b",
}

// Run executes the compliance review for a structured deal.
func Run(ctx context.Context, logger *zap.Logger, generator domain.NarrativeGenerator, program domain.LoanProgram, rulesOutput domain.RulesEngineOutput, stateAbbr *string) domain.ComplianceResult {
	deterministic := runDeterministicChecks(program, rulesOutput, stateAbbr)
	aiIssues := runExternalReview(ctx, logger, generator, program, rulesOutput)

	allIssues := make([]domain.ComplianceIssue, 0, len(deterministic)+len(aiIssues))
	allIssues = append(allIssues, deterministic...)
	allIssues = append(allIssues, aiIssues...)

	compliant := true
	for _, issue := range allIssues {
		if issue.Severity == domain.SeverityCritical {
			compliant = false
			break
		}
	}

	return domain.ComplianceResult{
		Compliant:           compliant,
		Issues:              allIssues,
		DeterministicChecks: deterministicCheckNames,
		AiReviewIssues:      aiIssues,
		ReviewedAt:          time.Now(),
	}
}

type narrativeReviewIssue struct {
	Severity       string `json:"severity"`
	Regulation     string `json:"regulation"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

func runExternalReview(ctx context.Context, logger *zap.Logger, generator domain.NarrativeGenerator, program domain.LoanProgram, rulesOutput domain.RulesEngineOutput) []domain.ComplianceIssue {
	payload := struct {
		ProgramID string            `json:"program_id"`
		Rate      domain.Rate       `json:"rate"`
		Amount    float64           `json:"approved_amount"`
		Fees      float64           `json:"total_fees"`
	}{
		ProgramID: program.ID,
		Rate:      rulesOutput.Rate,
		Amount:    rulesOutput.ApprovedAmount,
		Fees:      rulesOutput.TotalFees,
	}
	userPrompt, err := json.Marshal(payload)
	if err != nil {
		return manualReviewWarning()
	}

	raw, err := generator.GenerateJSON(ctx, narrativeReviewSystemPrompt, string(userPrompt))
	if err != nil {
		logger.Warn("compliance narrative review unavailable", zap.Error(err))
		return manualReviewWarning()
	}

	var parsed struct {
		Issues []narrativeReviewIssue `json:"issues"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		logger.Warn("compliance narrative review returned malformed JSON", zap.Error(err))
		return manualReviewWarning()
	}

	issues := make([]domain.ComplianceIssue, 0, len(parsed.Issues))
	for _, i := range parsed.Issues {
		severity := domain.IssueSeverity(i.Severity)
		switch severity {
		case domain.SeverityCritical, domain.SeverityWarning, domain.SeverityInfo:
		default:
			continue
		}
		issues = append(issues, domain.ComplianceIssue{
			Severity:       severity,
			Regulation:     i.Regulation,
			Description:    i.Description,
			Recommendation: i.Recommendation,
		})
	}
	return issues
}

func manualReviewWarning() []domain.ComplianceIssue {
	return []domain.ComplianceIssue{{
		Severity:    domain.SeverityWarning,
		Regulation:  "External Compliance Review",
		Description: manualReviewRequiredMessage,
	}}
}

const narrativeReviewSystemPrompt = `You are a compliance review assistant. Given the deal's term sheet, return JSON {"issues":[{"severity":"critical|warning|info","regulation":"...","description":"...","recommendation":"..."}]} naming any additional regulatory concerns. Do not restate deterministic checks already covered elsewhere.`
