package creditmemo

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huuhoait/credit-structuring-core/domain"
)

func sampleInput() Input {
	dscr := 1.35
	ltv := 0.72
	return Input{
		BorrowerName:    "Acme Holdings LLC",
		RequestedAmount: 500_000,
		LoanPurpose:     "Acquisition of commercial property",
		AnalystName:     "J. Rivera",
		PreparedDate:    "2026-07-31",
		Analysis: domain.Analysis{
			BorrowerName: "Acme Holdings LLC",
			Summary: domain.AnalysisSummary{
				QualifyingIncome: 250_000,
				GlobalDSCR:       &dscr,
				MonthsOfReserves: 6,
				RiskRating:       domain.RiskRatingModerate,
			},
			RiskScore: 62,
			RiskFlags: []domain.RiskFlag{
				{Severity: "high", Category: "income", Title: "Seasonal revenue", Description: "Revenue is concentrated in Q4.", Recommendation: "Request 13 months of bank statements."},
				{Severity: "critical", Category: "collateral", Title: "Appraisal stale", Description: "Appraisal is over 12 months old.", Recommendation: "Order a new appraisal."},
			},
			IncomeSources: []domain.IncomeSource{{Source: "Rental income", Amount: 120_000, Period: "annual", Verified: true}},
			DebtItems:     []domain.DebtItem{{Creditor: "Existing mortgage", Type: "mortgage", MonthlyPayment: 2_100, RemainingMonths: 180}},
		},
		Structuring: domain.StructureDealOutput{
			RulesOutput: domain.RulesEngineOutput{
				ProgramID:      domain.ProgramCommercialCRE,
				ApprovedAmount: 500_000,
				LTV:            &ltv,
			},
			Status: domain.DealNeedsReview,
		},
		Verification: domain.VerificationResult{
			MathChecks:  []domain.MathCheck{{Passed: true}, {Passed: true}, {Passed: false}},
			Comparisons: []domain.Comparison{{Matched: true}, {Matched: true}},
		},
	}
}

func TestBuild_ProducesValidDocxArchive(t *testing.T) {
	docx, err := Build(sampleInput())
	require.NoError(t, err)
	require.NotEmpty(t, docx)

	r, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range r.File {
		names[f.Name] = true
	}

	for _, expected := range []string{
		"[Content_Types].xml", "_rels/.rels", "word/document.xml",
		"word/_rels/document.xml.rels", "word/header1.xml", "word/footer1.xml",
	} {
		assert.True(t, names[expected], "missing part %s", expected)
	}
}

func TestBuild_SectionOrderIsFixed(t *testing.T) {
	docx, err := Build(sampleInput())
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err)

	var documentXML string
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			buf := new(bytes.Buffer)
			_, err = buf.ReadFrom(rc)
			require.NoError(t, err)
			rc.Close()
			documentXML = buf.String()
		}
	}
	require.NotEmpty(t, documentXML)

	sections := []string{
		"Acme Holdings LLC", "Borrower Summary", "Executive Summary", "Financial Ratios",
		"Income Analysis", "DTI Detail", "Risk Assessment", "Verification Summary",
		"Document Inventory", "Disclaimer",
	}

	lastIndex := -1
	for _, s := range sections {
		idx := strings.Index(documentXML, s)
		require.Greater(t, idx, lastIndex, "section %q out of order", s)
		lastIndex = idx
	}
}

func TestBuild_OmitsBusinessAnalysisWhenAbsent(t *testing.T) {
	docx, err := Build(sampleInput())
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err)

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(rc)
		rc.Close()
		assert.NotContains(t, buf.String(), "Business Analysis")
	}
}

func TestRatingColor_MapsKeywordsToPalette(t *testing.T) {
	assert.Equal(t, colorGreen, ratingColor("Strong"))
	assert.Equal(t, colorAmber, ratingColor("Moderate"))
	assert.Equal(t, colorOrange, ratingColor("Below Minimum"))
	assert.Equal(t, colorRed, ratingColor("Poor"))
	assert.Equal(t, colorDarkRed, ratingColor("Critical"))
}

func TestSeverityRank_OrdersCriticalFirst(t *testing.T) {
	assert.Less(t, severityRank("critical"), severityRank("high"))
	assert.Less(t, severityRank("high"), severityRank("moderate"))
	assert.Less(t, severityRank("moderate"), severityRank("low"))
	assert.Less(t, severityRank("low"), severityRank("info"))
}
