package verification

import (
	"github.com/huuhoait/credit-structuring-core/domain"
)

// Verify runs the full Verification Core: reconciliation against OCR
// and the docType's arithmetic invariant equations. Unknown docTypes
// produce reconciliation only — the catalog of math equations is keyed on
// the known document types.
func Verify(req domain.VerificationRequest) domain.VerificationResult {
	return domain.VerificationResult{
		Comparisons: Reconcile(req.StructuredData, req.OCR),
		MathChecks:  mathChecks(req.DocType, req.StructuredData),
	}
}

func mathChecks(docType domain.DocType, tree map[string]any) []domain.MathCheck {
	switch docType {
	case domain.DocForm1040:
		return checkForm1040(tree)
	case domain.DocForm1120, domain.DocForm1120S, domain.DocForm1065:
		return checkCorporateReturn(docType, tree)
	case domain.DocBankStatementChecking, domain.DocBankStatementSavings:
		return checkBankStatement(tree)
	case domain.DocProfitAndLoss:
		return checkProfitAndLoss(tree)
	case domain.DocBalanceSheet:
		return checkBalanceSheet(tree)
	case domain.DocRentRoll:
		return checkRentRoll(tree)
	default:
		return nil
	}
}
