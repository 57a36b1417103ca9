package creditmemo

import "fmt"

// Build assembles the full credit memo in the fixed section order required
// required section order and returns the packaged .docx bytes. It performs no
// generation and no external calls: every value already exists on Input.
func Build(in Input) ([]byte, error) {
	var blocks []block
	blocks = append(blocks, titlePageBlocks(in)...)
	blocks = append(blocks, borrowerSummaryBlocks(in)...)
	blocks = append(blocks, executiveSummaryBlocks(in)...)
	blocks = append(blocks, financialRatiosBlocks(in)...)
	blocks = append(blocks, incomeAnalysisBlocks(in)...)
	blocks = append(blocks, dtiDetailBlocks(in)...)
	blocks = append(blocks, cashFlowBlocks(in)...)
	blocks = append(blocks, businessAnalysisBlocks(in)...)
	blocks = append(blocks, riskAssessmentBlocks(in)...)
	blocks = append(blocks, verificationSummaryBlocks(in)...)
	blocks = append(blocks, documentInventoryBlocks(in)...)
	blocks = append(blocks, disclaimerBlocks()...)

	documentXML, err := renderBody(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to render memo body: %w", err)
	}

	headerXML, err := renderHeaderFooter("w:hdr", paragraph{
		runs: []any{run{Text: fmt.Sprintf("%s — %s", in.BorrowerName, confidentialityBanner), Bold: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render memo header: %w", err)
	}

	footerXML, err := renderHeaderFooter("w:ftr", paragraph{
		runs: []any{
			run{Text: "Page "},
			pageNumberRun{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render memo footer: %w", err)
	}

	docx, err := packageDocx(documentXML, headerXML, footerXML)
	if err != nil {
		return nil, fmt.Errorf("failed to package memo: %w", err)
	}

	return docx, nil
}
