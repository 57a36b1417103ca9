package rules

import "github.com/huuhoait/credit-structuring-core/domain"

func copyStandardCovenants(standardCovenants []string) []domain.Covenant {
	covenants := make([]domain.Covenant, 0, len(standardCovenants))
	for _, description := range standardCovenants {
		covenants = append(covenants, domain.Covenant{Description: description, Source: "program_standard"})
	}
	return covenants
}

func hasCollateralType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

// buildConditions derives deal conditions: they are built
// deterministically from program flags, never from free-text.
func buildConditions(program domain.LoanProgram) []domain.Condition {
	var conditions []domain.Condition

	if program.StructuringRules.RequiresAppraisal {
		conditions = append(conditions, domain.Condition{
			Code:        "appraisal",
			Description: "Order and review a third-party appraisal prior to closing.",
			Source:      "rules_derived",
		})
	}

	if program.StructuringRules.RequiresPersonalGuaranty {
		conditions = append(conditions, domain.Condition{
			Code:        "personal_guaranty",
			Description: "Obtain a personal guaranty from each principal owning 20% or more of the borrower.",
			Source:      "rules_derived",
		})
	}

	if hasCollateralType(program.StructuringRules.CollateralTypes, "real_estate") {
		conditions = append(conditions,
			domain.Condition{Code: "title_insurance", Description: "Obtain a lender's title insurance policy on all secured real property.", Source: "rules_derived"},
			domain.Condition{Code: "flood_determination", Description: "Obtain a flood zone determination and, if required, flood insurance.", Source: "rules_derived"},
			domain.Condition{Code: "mortgage_recording", Description: "Record the mortgage or deed of trust in the applicable county land records.", Source: "rules_derived"},
		)
	}

	if hasCollateralType(program.StructuringRules.CollateralTypes, "business_assets") || hasCollateralType(program.StructuringRules.CollateralTypes, "equipment") {
		conditions = append(conditions, domain.Condition{
			Code:        "ucc_filing",
			Description: "File a UCC-1 financing statement against the pledged collateral.",
			Source:      "rules_derived",
		})
	}

	if program.ID == domain.ProgramSBA7a || program.ID == domain.ProgramSBA504 {
		conditions = append(conditions, domain.Condition{
			Code:        "sba_authorization",
			Description: "Obtain and countersign the SBA authorization prior to disbursement.",
			Source:      "rules_derived",
		})
	}

	if hasCollateralType(program.StructuringRules.CollateralTypes, "digital_assets") {
		conditions = append(conditions,
			domain.Condition{Code: "bsa_aml", Description: "Complete BSA/AML customer due diligence on the borrower and beneficial owners.", Source: "rules_derived"},
			domain.Condition{Code: "ofac", Description: "Screen the borrower and beneficial owners against the OFAC SDN list.", Source: "rules_derived"},
		)
	}

	conditions = append(conditions, domain.Condition{
		Code:        "annual_reporting",
		Description: "Deliver annual financial statements within the timeframe specified in the loan agreement.",
		Source:      "rules_derived",
	})

	return conditions
}
