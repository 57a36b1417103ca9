package catalog

import "github.com/huuhoait/credit-structuring-core/domain"

func sba7a() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramSBA7a,
		Name:        "SBA 7(a) Loan",
		Description: "General-purpose SBA-guaranteed term loan for working capital, acquisition, refinance, or expansion.",
		Category:    domain.CategoryCommercial,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocForm1040, 3),
			years(domain.DocForm1120, 3),
			years(domain.DocBankStatementChecking, 1),
		},
		OptionalDocuments: []domain.RequiredDocument{
			years(domain.DocProfitAndLoss, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   0.90,
			MinDSCR:                  1.15,
			MaxDTI:                   0,
			BaseRate:                 domain.BaseRatePrime,
			SpreadRange:              domain.SpreadRange{Min: 0.0, Max: 0.0675},
			MaxTermMonths:            300,
			MaxAmortizationMonths:    300,
			MinLoanAmount:            25_000,
			MaxLoanAmount:            floatPtr(5_000_000),
			PrepaymentPenalty:        true,
			RequiresAppraisal:        true,
			RequiresPersonalGuaranty: true,
			CollateralTypes:          []string{"business_assets", "real_estate"},
			InterestOnly:             false,
		},
		ApplicableRegulations: []string{"SBA SOP 50 10", "Dodd-Frank", "Reg B"},
		StandardCovenants: []string{
			"Maintain hazard and liability insurance on all secured collateral.",
			"Provide annual financial statements within 120 days of fiscal year end.",
		},
		StandardFees: []domain.Fee{
			{Type: domain.FeePercent, Value: 0.03, Name: "SBA Guaranty Fee", Description: "SBA guaranty fee per tiered schedule."},
			{Type: domain.FeeFlat, Value: 500, Name: "Packaging Fee", Description: "Loan packaging and processing fee."},
		},
		RequiredOutputDocs: []string{"SBA Authorization", "Note", "Personal Guaranty"},
		ComplianceChecks:   []string{"sba_7a_cap", "state_usury", "tila_reg_z"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   10,
	}
}

func sba504() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramSBA504,
		Name:        "SBA 504 Loan",
		Description: "SBA-guaranteed fixed-asset financing for owner-occupied commercial real estate and heavy equipment.",
		Category:    domain.CategoryCommercial,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocForm1120, 3),
			years(domain.DocBalanceSheet, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   0.90,
			MinDSCR:                  1.25,
			MaxDTI:                   0,
			BaseRate:                 domain.BaseRateTreasury,
			SpreadRange:              domain.SpreadRange{Min: 0.005, Max: 0.02},
			MaxTermMonths:            240,
			MaxAmortizationMonths:    240,
			MinLoanAmount:            125_000,
			MaxLoanAmount:            floatPtr(5_500_000),
			PrepaymentPenalty:        true,
			RequiresAppraisal:        true,
			RequiresPersonalGuaranty: true,
			CollateralTypes:          []string{"real_estate", "equipment"},
			InterestOnly:             false,
		},
		ApplicableRegulations: []string{"SBA SOP 50 10", "Dodd-Frank"},
		StandardCovenants: []string{
			"Owner-occupy at least 51% of financed real estate.",
			"Maintain current property tax and insurance payments.",
		},
		StandardFees: []domain.Fee{
			{Type: domain.FeePercent, Value: 0.0215, Name: "CDC Processing Fee", Description: "Certified development company processing fee."},
		},
		RequiredOutputDocs: []string{"SBA Authorization", "Note", "Deed of Trust"},
		ComplianceChecks:   []string{"sba_504_cap", "state_usury"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   10,
	}
}

func commercialCRE() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramCommercialCRE,
		Name:        "Commercial Real Estate Loan",
		Description: "Conventional commercial mortgage secured by income-producing or owner-occupied real property.",
		Category:    domain.CategoryCommercial,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocForm1120, 2),
			years(domain.DocRentRoll, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   0.75,
			MinDSCR:                  1.25,
			MaxDTI:                   0,
			BaseRate:                 domain.BaseRateSOFR,
			SpreadRange:              domain.SpreadRange{Min: 0.02, Max: 0.045},
			MaxTermMonths:            120,
			MaxAmortizationMonths:    300,
			MinLoanAmount:            250_000,
			MaxLoanAmount:            floatPtr(15_000_000),
			PrepaymentPenalty:        true,
			RequiresAppraisal:        true,
			RequiresPersonalGuaranty: false,
			CollateralTypes:          []string{"real_estate"},
			InterestOnly:             false,
		},
		ApplicableRegulations: []string{"Dodd-Frank", "Reg B"},
		StandardCovenants: []string{
			"Maintain minimum 1.25x debt service coverage, tested annually.",
		},
		StandardFees: []domain.Fee{
			{Type: domain.FeePercent, Value: 0.01, Name: "Origination Fee", Description: "Loan origination fee."},
		},
		RequiredOutputDocs: []string{"Note", "Deed of Trust", "Assignment of Rents"},
		ComplianceChecks:   []string{"state_usury", "state_disclosures"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   15,
	}
}

func dscr() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramDSCR,
		Name:        "DSCR Investor Loan",
		Description: "Investment-property loan underwritten on the subject property's debt service coverage rather than personal income.",
		Category:    domain.CategoryResidential,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocRentRoll, 1),
			years(domain.DocBankStatementChecking, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   0.80,
			MinDSCR:                  1.0,
			MaxDTI:                   0,
			BaseRate:                 domain.BaseRateSOFR,
			SpreadRange:              domain.SpreadRange{Min: 0.025, Max: 0.05},
			MaxTermMonths:            360,
			MaxAmortizationMonths:    360,
			MinLoanAmount:            100_000,
			MaxLoanAmount:            floatPtr(2_500_000),
			PrepaymentPenalty:        true,
			RequiresAppraisal:        true,
			RequiresPersonalGuaranty: false,
			CollateralTypes:          []string{"real_estate"},
			InterestOnly:             false,
		},
		ApplicableRegulations: []string{"Dodd-Frank", "ATR"},
		StandardCovenants: []string{
			"Maintain landlord insurance naming lender as loss payee.",
		},
		StandardFees: []domain.Fee{
			{Type: domain.FeePercent, Value: 0.015, Name: "Origination Fee", Description: "Loan origination fee."},
		},
		RequiredOutputDocs: []string{"Note", "Deed of Trust"},
		ComplianceChecks:   []string{"state_usury", "tila_reg_z", "dodd_frank_prepayment"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   15,
	}
}

func bankStatement() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramBankStatement,
		Name:        "Bank Statement Loan",
		Description: "Self-employed borrower program that qualifies income from deposit history rather than tax returns.",
		Category:    domain.CategoryResidential,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocBankStatementChecking, 1),
		},
		OptionalDocuments: []domain.RequiredDocument{
			years(domain.DocProfitAndLoss, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   0.85,
			MinDSCR:                  0,
			MaxDTI:                   0.50,
			BaseRate:                 domain.BaseRateSOFR,
			SpreadRange:              domain.SpreadRange{Min: 0.03, Max: 0.06},
			MaxTermMonths:            360,
			MaxAmortizationMonths:    360,
			MinLoanAmount:            100_000,
			MaxLoanAmount:            floatPtr(3_000_000),
			PrepaymentPenalty:        false,
			RequiresAppraisal:        true,
			RequiresPersonalGuaranty: true,
			CollateralTypes:          []string{"real_estate"},
			InterestOnly:             false,
		},
		ApplicableRegulations: []string{"Dodd-Frank", "ATR", "Reg B"},
		StandardCovenants:     []string{},
		StandardFees: []domain.Fee{
			{Type: domain.FeePercent, Value: 0.02, Name: "Origination Fee", Description: "Loan origination fee."},
		},
		RequiredOutputDocs: []string{"Note", "Deed of Trust"},
		ComplianceChecks:   []string{"state_usury", "tila_reg_z"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   15,
	}
}

func conventionalBusiness() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramConventionalBusiness,
		Name:        "Conventional Business Term Loan",
		Description: "Non-SBA term loan for working capital, equipment, or expansion secured by a general business lien.",
		Category:    domain.CategoryCommercial,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocForm1120, 2),
			years(domain.DocBankStatementChecking, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   0,
			MinDSCR:                  1.2,
			MaxDTI:                   0,
			BaseRate:                 domain.BaseRatePrime,
			SpreadRange:              domain.SpreadRange{Min: 0.015, Max: 0.05},
			MaxTermMonths:            84,
			MaxAmortizationMonths:    84,
			MinLoanAmount:            50_000,
			MaxLoanAmount:            floatPtr(2_000_000),
			PrepaymentPenalty:        false,
			RequiresAppraisal:        false,
			RequiresPersonalGuaranty: true,
			CollateralTypes:          []string{"business_assets"},
			InterestOnly:             false,
		},
		ApplicableRegulations: []string{"Reg B"},
		StandardCovenants: []string{
			"Provide quarterly financial statements.",
		},
		StandardFees: []domain.Fee{
			{Type: domain.FeePercent, Value: 0.01, Name: "Origination Fee", Description: "Loan origination fee."},
		},
		RequiredOutputDocs: []string{"Note", "UCC-1 Filing"},
		ComplianceChecks:   []string{"state_usury"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   10,
	}
}

func lineOfCredit() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramLineOfCredit,
		Name:        "Business Line of Credit",
		Description: "Revolving, interest-only facility for working capital and short-term liquidity needs.",
		Category:    domain.CategoryCommercial,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocBankStatementChecking, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   0,
			MinDSCR:                  1.1,
			MaxDTI:                   0,
			BaseRate:                 domain.BaseRatePrime,
			SpreadRange:              domain.SpreadRange{Min: 0.02, Max: 0.06},
			MaxTermMonths:            36,
			MaxAmortizationMonths:    0,
			MinLoanAmount:            25_000,
			MaxLoanAmount:            floatPtr(500_000),
			PrepaymentPenalty:        false,
			RequiresAppraisal:        false,
			RequiresPersonalGuaranty: true,
			CollateralTypes:          []string{"business_assets"},
			InterestOnly:             true,
		},
		ApplicableRegulations: []string{"Reg B"},
		StandardCovenants:     []string{},
		StandardFees: []domain.Fee{
			{Type: domain.FeeFlat, Value: 250, Name: "Draw Fee", Description: "Per-draw administrative fee."},
		},
		RequiredOutputDocs: []string{"Line of Credit Agreement"},
		ComplianceChecks:   []string{"state_usury"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   5,
	}
}

func equipmentFinancing() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramEquipmentFinancing,
		Name:        "Equipment Financing",
		Description: "Term loan secured by the purchased equipment, amortizing over the asset's useful life.",
		Category:    domain.CategoryCommercial,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocForm1120, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   1.0,
			MinDSCR:                  1.15,
			MaxDTI:                   0,
			BaseRate:                 domain.BaseRatePrime,
			SpreadRange:              domain.SpreadRange{Min: 0.015, Max: 0.045},
			MaxTermMonths:            84,
			MaxAmortizationMonths:    84,
			MinLoanAmount:            25_000,
			MaxLoanAmount:            floatPtr(1_500_000),
			PrepaymentPenalty:        false,
			RequiresAppraisal:        false,
			RequiresPersonalGuaranty: true,
			CollateralTypes:          []string{"equipment"},
			InterestOnly:             false,
		},
		ApplicableRegulations: []string{"Reg B"},
		StandardCovenants:     []string{},
		StandardFees: []domain.Fee{
			{Type: domain.FeePercent, Value: 0.01, Name: "Documentation Fee", Description: "Equipment lien documentation fee."},
		},
		RequiredOutputDocs: []string{"Note", "UCC-1 Filing"},
		ComplianceChecks:   []string{"state_usury"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   10,
	}
}

func bridge() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramBridge,
		Name:        "Bridge Loan",
		Description: "Short-term interest-only facility for acquisition or rehab pending permanent financing or sale.",
		Category:    domain.CategorySpecialty,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocBankStatementChecking, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   0.70,
			MinDSCR:                  0,
			MaxDTI:                   0,
			BaseRate:                 domain.BaseRateSOFR,
			SpreadRange:              domain.SpreadRange{Min: 0.04, Max: 0.08},
			MaxTermMonths:            24,
			MaxAmortizationMonths:    0,
			MinLoanAmount:            100_000,
			MaxLoanAmount:            floatPtr(5_000_000),
			PrepaymentPenalty:        false,
			RequiresAppraisal:        true,
			RequiresPersonalGuaranty: true,
			CollateralTypes:          []string{"real_estate"},
			InterestOnly:             true,
		},
		ApplicableRegulations: []string{"Dodd-Frank"},
		StandardCovenants: []string{
			"Provide monthly construction/rehab draw reporting where applicable.",
		},
		StandardFees: []domain.Fee{
			{Type: domain.FeePercent, Value: 0.02, Name: "Origination Fee", Description: "Loan origination fee."},
			{Type: domain.FeeFlat, Value: 1500, Name: "Exit Fee", Description: "Fee due at payoff or maturity."},
		},
		RequiredOutputDocs: []string{"Note", "Deed of Trust"},
		ComplianceChecks:   []string{"state_usury", "dodd_frank_prepayment"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   5,
	}
}

func cryptoCollateral() domain.LoanProgram {
	return domain.LoanProgram{
		ID:          domain.ProgramCryptoCollateral,
		Name:        "Crypto-Collateralized Loan",
		Description: "Loan secured by pledged digital-asset collateral held with a qualified custodian, margined to a conservative advance rate.",
		Category:    domain.CategorySpecialty,
		RequiredDocuments: []domain.RequiredDocument{
			years(domain.DocBankStatementChecking, 1),
		},
		StructuringRules: domain.StructuringRules{
			MaxLTV:                   0.50,
			MinDSCR:                  0,
			MaxDTI:                   0,
			BaseRate:                 domain.BaseRateSOFR,
			SpreadRange:              domain.SpreadRange{Min: 0.03, Max: 0.07},
			MaxTermMonths:            36,
			MaxAmortizationMonths:    36,
			MinLoanAmount:            50_000,
			MaxLoanAmount:            floatPtr(10_000_000),
			PrepaymentPenalty:        false,
			RequiresAppraisal:        false,
			RequiresPersonalGuaranty: false,
			CollateralTypes:          []string{"digital_assets"},
			InterestOnly:             true,
		},
		ApplicableRegulations: []string{"BSA/AML", "OFAC"},
		StandardCovenants: []string{
			"Maintain pledged collateral value at or above the required margin threshold.",
		},
		StandardFees: []domain.Fee{
			{Type: domain.FeePercent, Value: 0.01, Name: "Custody Setup Fee", Description: "Qualified-custodian account setup fee."},
		},
		RequiredOutputDocs: []string{"Note", "Collateral Pledge Agreement"},
		ComplianceChecks:   []string{"bsa_aml", "ofac"},
		LateFeePercent:     0.05,
		LateFeeGraceDays:   5,
	}
}
