package domain

import "time"

// DealStatus is the final disposition of a structured deal.
type DealStatus string

const (
	DealApproved    DealStatus = "approved"
	DealNeedsReview DealStatus = "needs_review"
)

// Rate carries the base/spread/total rate breakdown. I1 requires
// TotalRate == BaseRateValue + Spread within 1bp.
type Rate struct {
	BaseRateType  BaseRateKind `json:"base_rate_type"`
	BaseRateValue float64      `json:"base_rate_value"`
	Spread        float64      `json:"spread"`
	TotalRate     float64      `json:"total_rate"`
}

// EligibilityIssue is a single eligibility failure or warning.
type EligibilityIssue struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Required    string `json:"required,omitempty"`
	Actual      string `json:"actual,omitempty"`
}

// Eligibility is the pass/fail eligibility block inside RulesEngineOutput.
type Eligibility struct {
	Passed   bool               `json:"passed"`
	Failures []EligibilityIssue `json:"failures"`
	Warnings []EligibilityIssue `json:"warnings"`
}

// Condition is a deal condition generated deterministically from program
// flags (appraisal, personal guaranty, recording, BSA/AML, ...).
type Condition struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Source      string `json:"source"` // program_standard | rules_derived
}

// Covenant is a single covenant attached to the deal.
type Covenant struct {
	Description string `json:"description"`
	Source      string `json:"source"` // program_standard
}

// FeeLineItem is one computed fee amount on the structured deal.
type FeeLineItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        FeeType `json:"type"`
	Value       float64 `json:"value"`
	Amount      float64 `json:"amount"`
}

// RulesEngineOutput is the fully deterministic numeric output of the rules
// engine (component F). No field here may be mutated by the narrative layer
// (I7).
type RulesEngineOutput struct {
	ProgramID                       string        `json:"program_id"`
	Eligibility                     Eligibility   `json:"eligibility"`
	ApprovedAmount                  float64       `json:"approved_amount"`
	LTV                             *float64      `json:"ltv,omitempty"`
	Rate                            Rate          `json:"rate"`
	TermMonths                      int           `json:"term_months"`
	AmortizationMonths              int           `json:"amortization_months"`
	MonthlyPayment                  float64       `json:"monthly_payment"`
	InterestOnly                    bool          `json:"interest_only"`
	PrepaymentPenalty               bool          `json:"prepayment_penalty"`
	PersonalGuaranty                bool          `json:"personal_guaranty"`
	RequiresAppraisal               bool          `json:"requires_appraisal"`
	Covenants                       []Covenant    `json:"covenants"`
	Conditions                      []Condition   `json:"conditions"`
	Fees                            []FeeLineItem `json:"fees"`
	TotalFees                       float64       `json:"total_fees"`
	ProjectedDSCRWithProposedPayment *float64     `json:"projected_dscr_with_proposed_payment,omitempty"`
}

// AiEnhancement is prose-only output from the narrative enhancer (G). It has
// no numeric fields by construction (I7): the type itself enforces the
// separation this type enforces.
type AiEnhancement struct {
	CustomCovenants      []string `json:"custom_covenants"`
	AdditionalConditions []string `json:"additional_conditions"`
	SpecialTerms         []string `json:"special_terms"`
	Justification        string   `json:"justification"`
}

// IssueSeverity is the shared severity vocabulary for compliance and
// final-check issues.
type IssueSeverity string

const (
	SeverityCritical IssueSeverity = "critical"
	SeverityWarning  IssueSeverity = "warning"
	SeverityInfo     IssueSeverity = "info"
	SeverityError    IssueSeverity = "error"
)

// ComplianceIssue is a single deterministic or narrative compliance finding.
type ComplianceIssue struct {
	Severity       IssueSeverity `json:"severity"`
	Regulation     string        `json:"regulation"`
	Description    string        `json:"description"`
	Recommendation string        `json:"recommendation"`
}

// ComplianceResult is the output of the compliance review (H).
type ComplianceResult struct {
	Compliant         bool              `json:"compliant"`
	Issues            []ComplianceIssue `json:"issues"`
	DeterministicChecks []string        `json:"deterministic_checks"`
	AiReviewIssues    []ComplianceIssue `json:"ai_review_issues"`
	ReviewedAt        time.Time         `json:"reviewed_at"`
}

// FinalCheckIssue is a single inconsistency the final check found.
type FinalCheckIssue struct {
	Field    string        `json:"field"`
	Expected string        `json:"expected"`
	Actual   string        `json:"actual"`
	Severity IssueSeverity `json:"severity"` // error | warning
	Message  string        `json:"message"`
}

// FinalCheckResult is the output of the final-check re-derivation (I).
type FinalCheckResult struct {
	Passed bool              `json:"passed"`
	Issues []FinalCheckIssue `json:"issues"`
}

// StructureDealInput is everything the structuring core needs to produce a
// StructureDealOutput for one deal.
type StructureDealInput struct {
	Analysis            Analysis     `json:"analysis"`
	Program             LoanProgram  `json:"program"`
	BorrowerName        string       `json:"borrower_name"`
	LoanPurpose         *string      `json:"loan_purpose,omitempty"`
	PropertyAddress     *string      `json:"property_address,omitempty"`
	RequestedAmount     float64      `json:"requested_amount"`
	RequestedRate       *float64     `json:"requested_rate,omitempty"`
	RequestedTermMonths *int         `json:"requested_term_months,omitempty"`
	PropertyValue       *float64     `json:"property_value,omitempty"`
	CollateralValue     *float64     `json:"collateral_value,omitempty"`
	StateAbbr           *string      `json:"state_abbr,omitempty"`
}

// StructureDealOutput is the full output of the structuring orchestrator (J).
type StructureDealOutput struct {
	RulesOutput     RulesEngineOutput `json:"rules_output"`
	Enhancement     AiEnhancement     `json:"enhancement"`
	Compliance      ComplianceResult  `json:"compliance"`
	FinalCheck      FinalCheckResult  `json:"final_check"`
	Status          DealStatus        `json:"status"`
	DeclineReasons  []string          `json:"decline_reasons"`
}

// DealStatistics summarizes a batch of persisted structured deals over a
// date range, for portfolio-level reporting against the optional
// persistence adapter.
type DealStatistics struct {
	TotalDeals         int     `json:"total_deals"`
	ApprovedCount       int     `json:"approved_count"`
	NeedsReviewCount    int     `json:"needs_review_count"`
	ApprovalRate        float64 `json:"approval_rate"`
	AvgApprovedAmount   float64 `json:"avg_approved_amount"`
	AvgTotalRate        float64 `json:"avg_total_rate"`
}
