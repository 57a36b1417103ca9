package compliance

// stateUsuryLimits is an illustrative statutory-cap table; commercial and
// consumer ceilings per state, expressed as decimal annual rates. States not
// listed are treated as having no statutory ceiling this engine enforces.
var stateUsuryLimits = map[string]struct {
	commercial float64
	consumer   float64
}{
	"AR": {commercial: 0.17, consumer: 0.10},
	"NY": {commercial: 0.25, consumer: 0.16},
	"CA": {commercial: 0.30, consumer: 0.10},
	"TX": {commercial: 0.28, consumer: 0.18},
	"FL": {commercial: 0.25, consumer: 0.18},
}

// usuryLimit returns the applicable statutory cap and whether one is defined
// for the given state and loan class.
func usuryLimit(stateAbbr string, isCommercial bool) (float64, bool) {
	limits, ok := stateUsuryLimits[stateAbbr]
	if !ok {
		return 0, false
	}
	if isCommercial {
		return limits.commercial, true
	}
	return limits.consumer, true
}

// stateDisclosures lists disclosures required at or before closing, by
// state, beyond the federal baseline.
var stateDisclosures = map[string][]string{
	"NY": {"New York Commercial Financing Disclosure (CFDL)"},
	"CA": {"California Commercial Financing Disclosure"},
	"UT": {"Utah Commercial Financing Disclosure"},
}
