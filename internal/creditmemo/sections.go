package creditmemo

import (
	"fmt"
	"sort"

	"github.com/huuhoait/credit-structuring-core/domain"
)

const confidentialityBanner = "CONFIDENTIAL - INTERNAL CREDIT COMMITTEE USE ONLY"

// Input is everything the memo builder needs; it never computes anything
// itself, it only lays out what the structuring and verification cores
// already produced.
type Input struct {
	BorrowerName     string
	RequestedAmount  float64
	LoanPurpose      string
	AnalystName      string
	PreparedDate     string
	Analysis         domain.Analysis
	Structuring      domain.StructureDealOutput
	Verification     domain.VerificationResult
}

func titlePageBlocks(in Input) []block {
	return []block{
		paragraph{alignCenter: true, runs: []any{run{Text: confidentialityBanner, Bold: true, Color: colorDarkRed, Size: 20}}},
		paragraph{alignCenter: true, runs: []any{run{Text: "CREDIT MEMORANDUM", Bold: true, Size: 36}}},
		paragraph{alignCenter: true, runs: []any{run{Text: in.BorrowerName, Bold: true, Size: 28}}},
		paragraph{alignCenter: true, runs: []any{run{Text: fmt.Sprintf("Requested Amount: %s", formatMoney(in.RequestedAmount))}}},
		paragraph{alignCenter: true, runs: []any{run{Text: fmt.Sprintf("Purpose: %s", in.LoanPurpose)}}},
		paragraph{alignCenter: true, runs: []any{run{Text: fmt.Sprintf("Date: %s", in.PreparedDate)}}},
		paragraph{alignCenter: true, runs: []any{run{Text: fmt.Sprintf("Analyst: %s", in.AnalystName)}}},
		paragraph{alignCenter: true, runs: []any{run{Text: fmt.Sprintf("Risk Rating: %s", in.Analysis.Summary.RiskRating), Color: ratingColor(string(in.Analysis.Summary.RiskRating)), Bold: true}}},
		paragraph{pageBreakBefore: true, runs: []any{}},
	}
}

func borrowerSummaryBlocks(in Input) []block {
	rows := []tableRow{
		{header: true, cells: []tableCell{{text: "Field", bold: true}, {text: "Value", bold: true}}},
		{cells: []tableCell{{text: "Borrower"}, {text: in.BorrowerName}}},
		{cells: []tableCell{{text: "Requested Amount"}, {text: formatMoney(in.RequestedAmount)}}},
		{cells: []tableCell{{text: "Approved Amount"}, {text: formatMoney(in.Structuring.RulesOutput.ApprovedAmount)}}},
		{cells: []tableCell{{text: "Program"}, {text: in.Structuring.RulesOutput.ProgramID}}},
		{cells: []tableCell{{text: "Status"}, {text: string(in.Structuring.Status)}}},
	}
	return []block{
		sectionHeading("Borrower Summary"),
		memoTable{widths: []int{3000, 6000}, rows: rows},
	}
}

func executiveSummaryBlocks(in Input) []block {
	summary := in.Analysis.Summary
	text := fmt.Sprintf(
		"%s requests %s for %s. Qualifying income is %s with a %s risk rating. The deal carries a risk score of %.0f/100 across %d flagged observations.",
		in.BorrowerName, formatMoney(in.RequestedAmount), in.LoanPurpose,
		formatMoney(summary.QualifyingIncome), summary.RiskRating, in.Analysis.RiskScore, len(in.Analysis.RiskFlags),
	)
	return []block{
		sectionHeading("Executive Summary"),
		paragraph{runs: []any{run{Text: text}}},
	}
}

func financialRatiosBlocks(in Input) []block {
	summary := in.Analysis.Summary
	rows := []tableRow{
		{header: true, cells: []tableCell{{text: "Ratio", bold: true}, {text: "Value", bold: true}, {text: "Rating", bold: true}}},
	}

	if summary.GlobalDSCR != nil {
		rating := ratingForRatio(*summary.GlobalDSCR, 1.5, 1.2, 1.0)
		rows = append(rows, tableRow{cells: []tableCell{
			{text: "Global DSCR"},
			{text: fmt.Sprintf("%.2f", *summary.GlobalDSCR)},
			{text: rating, color: ratingColor(rating), bold: true},
		}})
	}
	if summary.BackEndDTI != nil {
		rating := ratingForDTI(*summary.BackEndDTI)
		rows = append(rows, tableRow{cells: []tableCell{
			{text: "Back-End DTI"},
			{text: fmt.Sprintf("%.1f%%", *summary.BackEndDTI*100)},
			{text: rating, color: ratingColor(rating), bold: true},
		}})
	}
	if in.Structuring.RulesOutput.LTV != nil {
		rating := ratingForLTV(*in.Structuring.RulesOutput.LTV)
		rows = append(rows, tableRow{cells: []tableCell{
			{text: "LTV"},
			{text: fmt.Sprintf("%.1f%%", *in.Structuring.RulesOutput.LTV*100)},
			{text: rating, color: ratingColor(rating), bold: true},
		}})
	}

	return []block{
		sectionHeading("Financial Ratios"),
		memoTable{widths: []int{3000, 3000, 3000}, rows: rows},
	}
}

func ratingForRatio(value, strongAt, goodAt, adequateAt float64) string {
	switch {
	case value >= strongAt:
		return "Strong"
	case value >= goodAt:
		return "Good"
	case value >= adequateAt:
		return "Adequate"
	default:
		return "Below Minimum"
	}
}

func ratingForDTI(dti float64) string {
	switch {
	case dti <= 0.36:
		return "Excellent"
	case dti <= 0.43:
		return "Acceptable"
	default:
		return "Weak"
	}
}

func ratingForLTV(ltv float64) string {
	switch {
	case ltv <= 0.65:
		return "Strong"
	case ltv <= 0.80:
		return "Acceptable"
	default:
		return "Marginal"
	}
}

func incomeAnalysisBlocks(in Input) []block {
	rows := []tableRow{
		{header: true, cells: []tableCell{{text: "Source", bold: true}, {text: "Amount", bold: true}, {text: "Period", bold: true}, {text: "Verified", bold: true}}},
	}
	var total float64
	for _, src := range in.Analysis.IncomeSources {
		verified := "No"
		if src.Verified {
			verified = "Yes"
		}
		rows = append(rows, tableRow{cells: []tableCell{
			{text: src.Source}, {text: formatMoney(src.Amount)}, {text: src.Period}, {text: verified},
		}})
		total += src.Amount
	}
	rows = append(rows, tableRow{cells: []tableCell{
		{text: "Total", bold: true}, {text: formatMoney(total), bold: true}, {text: ""}, {text: ""},
	}})

	blocks := []block{
		sectionHeading("Income Analysis"),
		memoTable{widths: []int{3000, 2500, 2000, 1500}, rows: rows},
	}
	for _, note := range in.Analysis.IncomeNotes {
		blocks = append(blocks, bulletParagraph(note))
	}
	return blocks
}

func dtiDetailBlocks(in Input) []block {
	rows := []tableRow{
		{header: true, cells: []tableCell{{text: "Creditor", bold: true}, {text: "Type", bold: true}, {text: "Monthly Payment", bold: true}, {text: "Remaining Months", bold: true}}},
	}
	var totalMonthly float64
	for _, d := range in.Analysis.DebtItems {
		rows = append(rows, tableRow{cells: []tableCell{
			{text: d.Creditor}, {text: d.Type}, {text: formatMoney(d.MonthlyPayment)}, {text: fmt.Sprintf("%d", d.RemainingMonths)},
		}})
		totalMonthly += d.MonthlyPayment
	}
	rows = append(rows, tableRow{cells: []tableCell{
		{text: "Total", bold: true}, {text: ""}, {text: formatMoney(totalMonthly), bold: true}, {text: ""},
	}})

	blocks := []block{sectionHeading("DTI Detail"), memoTable{widths: []int{3000, 2000, 2500, 2000}, rows: rows}}
	if in.Analysis.Summary.BackEndDTI != nil {
		rating := ratingForDTI(*in.Analysis.Summary.BackEndDTI)
		blocks = append(blocks, paragraph{runs: []any{
			run{Text: fmt.Sprintf("Back-end DTI rating: %s (%.1f%%)", rating, *in.Analysis.Summary.BackEndDTI*100), Color: ratingColor(rating), Bold: true},
		}})
	}
	return blocks
}

func cashFlowBlocks(in Input) []block {
	blocks := []block{sectionHeading("Cash Flow Analysis")}

	if len(in.Analysis.LargeDeposits) > 0 {
		rows := []tableRow{
			{header: true, cells: []tableCell{{text: "Date", bold: true}, {text: "Amount", bold: true}, {text: "Description", bold: true}}},
		}
		for _, d := range in.Analysis.LargeDeposits {
			rows = append(rows, tableRow{cells: []tableCell{{text: d.Date}, {text: formatMoney(d.Amount)}, {text: d.Description}}})
		}
		blocks = append(blocks, memoTable{widths: []int{2000, 2500, 4500}, rows: rows})
	}

	for _, note := range in.Analysis.CashFlowNotes {
		blocks = append(blocks, bulletParagraph(note))
	}
	return blocks
}

// businessAnalysisBlocks returns no blocks when BusinessYears is empty, so the
// Business Analysis section is omitted from the memo.
func businessAnalysisBlocks(in Input) []block {
	if len(in.Analysis.BusinessYears) == 0 {
		return nil
	}

	rows := []tableRow{
		{header: true, cells: []tableCell{{text: "Year", bold: true}, {text: "Revenue", bold: true}, {text: "Net Income", bold: true}, {text: "Add-Backs", bold: true}, {text: "Adjusted Income", bold: true}}},
	}
	for _, y := range in.Analysis.BusinessYears {
		rows = append(rows, tableRow{cells: []tableCell{
			{text: fmt.Sprintf("%d", y.Year)}, {text: formatMoney(y.Revenue)}, {text: formatMoney(y.NetIncome)},
			{text: formatMoney(y.AddBacks)}, {text: formatMoney(y.AdjustedIncome)},
		}})
	}

	blocks := []block{sectionHeading("Business Analysis"), memoTable{widths: []int{1500, 2500, 2500, 2000, 2500}, rows: rows}}
	for _, note := range in.Analysis.BusinessNotes {
		blocks = append(blocks, bulletParagraph(note))
	}
	return blocks
}

func riskAssessmentBlocks(in Input) []block {
	blocks := []block{
		sectionHeading("Risk Assessment"),
		paragraph{runs: []any{run{Text: fmt.Sprintf("Risk Score: %.0f / 100", in.Analysis.RiskScore), Bold: true, Size: 28}}},
	}

	flags := append([]domain.RiskFlag(nil), in.Analysis.RiskFlags...)
	sort.SliceStable(flags, func(i, j int) bool {
		return severityRank(flags[i].Severity) < severityRank(flags[j].Severity)
	})

	for _, flag := range flags {
		color := severityColor(flag.Severity)
		blocks = append(blocks,
			paragraph{runs: []any{run{Text: fmt.Sprintf("[%s] %s", upperSeverity(flag.Severity), flag.Title), Bold: true, Color: color}}},
			paragraph{runs: []any{run{Text: fmt.Sprintf("Category: %s", flag.Category)}}},
			paragraph{runs: []any{run{Text: flag.Description}}},
			paragraph{runs: []any{run{Text: fmt.Sprintf("Recommendation: %s", flag.Recommendation)}}},
		)
	}

	return blocks
}

func upperSeverity(s string) string {
	if s == "" {
		return "INFO"
	}
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 32
		}
	}
	return string(out)
}

func verificationSummaryBlocks(in Input) []block {
	total := len(in.Verification.MathChecks)
	passed := 0
	for _, c := range in.Verification.MathChecks {
		if c.Passed {
			passed++
		}
	}
	var passRate float64
	if total > 0 {
		passRate = float64(passed) / float64(total)
	}

	matchedComparisons := 0
	for _, c := range in.Verification.Comparisons {
		if c.Matched {
			matchedComparisons++
		}
	}
	var matchRate float64
	if len(in.Verification.Comparisons) > 0 {
		matchRate = float64(matchedComparisons) / float64(len(in.Verification.Comparisons))
	}

	return []block{
		sectionHeading("Verification Summary"),
		paragraph{runs: []any{
			run{Text: fmt.Sprintf("Arithmetic checks: %d/%d passed (%.0f%%)", passed, total, passRate*100), Color: passRateColor(passRate), Bold: true},
		}},
		paragraph{runs: []any{
			run{Text: fmt.Sprintf("OCR reconciliation: %d/%d matched (%.0f%%)", matchedComparisons, len(in.Verification.Comparisons), matchRate*100), Color: passRateColor(matchRate), Bold: true},
		}},
	}
}

func documentInventoryBlocks(in Input) []block {
	rows := []tableRow{
		{header: true, cells: []tableCell{{text: "Document", bold: true}, {text: "Year", bold: true}, {text: "Status", bold: true}}},
	}
	for _, doc := range in.Analysis.DocumentsOnFile {
		year := "—"
		if doc.Year != nil {
			year = fmt.Sprintf("%d", *doc.Year)
		}
		rows = append(rows, tableRow{cells: []tableCell{{text: fmt.Sprintf("%s (%s)", doc.FileName, doc.DocType)}, {text: year}, {text: doc.Status}}})
	}
	return []block{sectionHeading("Document Inventory"), memoTable{widths: []int{5000, 2000, 2000}, rows: rows}}
}

const disclaimerText = "This credit memorandum is generated from borrower-submitted financial documents and automated arithmetic verification. It does not constitute a final credit decision. All figures are subject to independent underwriter review prior to loan closing."

func disclaimerBlocks() []block {
	return []block{
		sectionHeading("Disclaimer"),
		paragraph{runs: []any{run{Text: disclaimerText, Color: colorNeutral}}},
	}
}

func sectionHeading(title string) block {
	return paragraph{bold: true, runs: []any{run{Text: title, Bold: true, Size: 24}}}
}

func bulletParagraph(text string) block {
	return paragraph{runs: []any{run{Text: "• " + text}}}
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
