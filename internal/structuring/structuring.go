// Package structuring implements the orchestrator that runs the
// rules engine, narrative enhancer, compliance review, and final check
// strictly in that order for a single deal.
package structuring

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/huuhoait/credit-structuring-core/internal/compliance"
	"github.com/huuhoait/credit-structuring-core/internal/enhancement"
	"github.com/huuhoait/credit-structuring-core/internal/finalcheck"
	"github.com/huuhoait/credit-structuring-core/internal/rules"
)

// Orchestrator wires the four structuring components together behind their
// ports. It holds no per-deal state; every call is independent.
type Orchestrator struct {
	logger     *zap.Logger
	rateSource domain.RateSource
	generator  domain.NarrativeGenerator
}

// New constructs an Orchestrator.
func New(logger *zap.Logger, rateSource domain.RateSource, generator domain.NarrativeGenerator) *Orchestrator {
	return &Orchestrator{logger: logger, rateSource: rateSource, generator: generator}
}

// StructureDeal runs F → G → H → I in order and assembles the decision
// It never returns a half-processed output: either every
// component ran (possibly with degraded external results) or it returns an
// error and the caller must treat the deal as unchanged.
func (o *Orchestrator) StructureDeal(ctx context.Context, input domain.StructureDealInput) (*domain.StructureDealOutput, error) {
	rulesOutput, err := rules.Run(ctx, o.rateSource, input)
	if err != nil {
		return nil, fmt.Errorf("rules engine failed: %w", err)
	}

	enhancementOutput := enhancement.Enhance(ctx, o.logger, o.generator, rulesOutput, input.Analysis)

	complianceResult := compliance.Run(ctx, o.logger, o.generator, input.Program, rulesOutput, input.StateAbbr)

	finalCheckResult := finalcheck.Run(input.Program, rulesOutput, complianceResult)

	declineReasons := assembleDeclineReasons(rulesOutput, complianceResult, finalCheckResult)

	status := decideStatus(declineReasons, rulesOutput, complianceResult, finalCheckResult)

	return &domain.StructureDealOutput{
		RulesOutput:    rulesOutput,
		Enhancement:    enhancementOutput,
		Compliance:     complianceResult,
		FinalCheck:     finalCheckResult,
		Status:         status,
		DeclineReasons: declineReasons,
	}, nil
}

func assembleDeclineReasons(rulesOutput domain.RulesEngineOutput, complianceResult domain.ComplianceResult, finalCheckResult domain.FinalCheckResult) []string {
	var reasons []string

	for _, failure := range rulesOutput.Eligibility.Failures {
		reasons = append(reasons, failure.Description)
	}

	for _, issue := range complianceResult.Issues {
		if issue.Severity == domain.SeverityCritical {
			reasons = append(reasons, issue.Description)
		}
	}

	for _, issue := range finalCheckResult.Issues {
		if issue.Severity == domain.SeverityError {
			reasons = append(reasons, issue.Message)
		}
	}

	return reasons
}

func decideStatus(declineReasons []string, rulesOutput domain.RulesEngineOutput, complianceResult domain.ComplianceResult, finalCheckResult domain.FinalCheckResult) domain.DealStatus {
	if len(declineReasons) > 0 {
		return domain.DealNeedsReview
	}

	if len(rulesOutput.Eligibility.Warnings) > 0 {
		return domain.DealNeedsReview
	}

	for _, issue := range complianceResult.Issues {
		if issue.Severity == domain.SeverityWarning {
			return domain.DealNeedsReview
		}
	}

	for _, issue := range finalCheckResult.Issues {
		if issue.Severity == domain.SeverityWarning {
			return domain.DealNeedsReview
		}
	}

	return domain.DealApproved
}
