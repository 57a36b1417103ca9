package domain

// ProgramCategory buckets a loan program for catalog organization.
type ProgramCategory string

const (
	CategoryCommercial ProgramCategory = "commercial"
	CategoryResidential ProgramCategory = "residential"
	CategorySpecialty  ProgramCategory = "specialty"
)

// BaseRateKind selects which external index a program prices against.
type BaseRateKind string

const (
	BaseRatePrime    BaseRateKind = "prime"
	BaseRateSOFR     BaseRateKind = "sofr"
	BaseRateTreasury BaseRateKind = "treasury"
)

// RequiredDocument names a document type (and optionally a span of years)
// a program requires or accepts optionally.
type RequiredDocument struct {
	DocType DocType `json:"doc_type"`
	Years   int     `json:"years"` // how many years of this doc type
}

// Fee is a single standard program fee, flat or percent-of-approved-amount.
type Fee struct {
	Type        FeeType `json:"type"`
	Value       float64 `json:"value"` // flat dollars, or a fraction if percent
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

// FeeType distinguishes a flat-dollar fee from a percent-of-amount fee.
type FeeType string

const (
	FeeFlat    FeeType = "flat"
	FeePercent FeeType = "percent"
)

// SpreadRange bounds the risk-based spread a program may apply over its
// base rate.
type SpreadRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// StructuringRules holds every numeric/boolean parameter the rules engine
// draws from the catalog for a given program.
type StructuringRules struct {
	MaxLTV                  float64      `json:"max_ltv"`
	MinDSCR                 float64      `json:"min_dscr"`
	MaxDTI                  float64      `json:"max_dti"`
	BaseRate                BaseRateKind `json:"base_rate"`
	SpreadRange             SpreadRange  `json:"spread_range"`
	MaxTermMonths           int          `json:"max_term_months"`
	MaxAmortizationMonths   int          `json:"max_amortization_months"`
	MinLoanAmount           float64      `json:"min_loan_amount"`
	MaxLoanAmount           *float64     `json:"max_loan_amount,omitempty"`
	PrepaymentPenalty       bool         `json:"prepayment_penalty"`
	RequiresAppraisal       bool         `json:"requires_appraisal"`
	RequiresPersonalGuaranty bool        `json:"requires_personal_guaranty"`
	CollateralTypes         []string     `json:"collateral_types"`
	InterestOnly            bool         `json:"interest_only"`
}

// LoanProgram is an immutable catalog record. The catalog is the only place
// numerical deal parameters originate.
type LoanProgram struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Category            ProgramCategory   `json:"category"`
	RequiredDocuments   []RequiredDocument `json:"required_documents"`
	OptionalDocuments   []RequiredDocument `json:"optional_documents"`
	StructuringRules    StructuringRules  `json:"structuring_rules"`
	ApplicableRegulations []string        `json:"applicable_regulations"`
	StateSpecificRules  map[string]any    `json:"state_specific_rules,omitempty"`
	StandardCovenants   []string          `json:"standard_covenants"`
	StandardFees        []Fee             `json:"standard_fees"`
	RequiredOutputDocs  []string          `json:"required_output_docs"`
	ComplianceChecks    []string          `json:"compliance_checks"`
	LateFeePercent      float64           `json:"late_fee_percent"`
	LateFeeGraceDays    int               `json:"late_fee_grace_days"`
}

// Canonical catalog ids.
const (
	ProgramSBA7a               = "sba_7a"
	ProgramSBA504              = "sba_504"
	ProgramCommercialCRE       = "commercial_cre"
	ProgramDSCR                = "dscr"
	ProgramBankStatement       = "bank_statement"
	ProgramConventionalBusiness = "conventional_business"
	ProgramLineOfCredit        = "line_of_credit"
	ProgramEquipmentFinancing  = "equipment_financing"
	ProgramBridge              = "bridge"
	ProgramCryptoCollateral    = "crypto_collateral"
)
