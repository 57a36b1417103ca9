package matching

import "strings"

// phraseRow is one row of the fuzzy phrase map (strategy 2), used for
// non-tax documents (bank statements, P&Ls, balance sheets, rent rolls).
type phraseRow struct {
	ocrPhrases  []string
	fieldTokens []string
}

var fuzzyPhraseMap = []phraseRow{
	{ocrPhrases: []string{"total deposits"}, fieldTokens: []string{"totaldeposits"}},
	{ocrPhrases: []string{"total withdrawals", "total debits"}, fieldTokens: []string{"totalwithdrawals"}},
	{ocrPhrases: []string{"beginning balance", "opening balance"}, fieldTokens: []string{"beginningbalance"}},
	{ocrPhrases: []string{"ending balance", "closing balance"}, fieldTokens: []string{"endingbalance"}},
	{ocrPhrases: []string{"net revenue", "total revenue", "gross revenue"}, fieldTokens: []string{"revenue", "netrevenue", "totalrevenue", "grossrevenue"}},
	{ocrPhrases: []string{"cost of goods sold", "cogs"}, fieldTokens: []string{"cogs"}},
	{ocrPhrases: []string{"gross profit"}, fieldTokens: []string{"grossprofit"}},
	{ocrPhrases: []string{"operating expenses"}, fieldTokens: []string{"operatingexpenses"}},
	{ocrPhrases: []string{"operating income"}, fieldTokens: []string{"operatingincome"}},
	{ocrPhrases: []string{"net income", "net profit"}, fieldTokens: []string{"netincome"}},
	{ocrPhrases: []string{"total assets"}, fieldTokens: []string{"totalassets"}},
	{ocrPhrases: []string{"total liabilities"}, fieldTokens: []string{"totalliabilities"}},
	{ocrPhrases: []string{"total equity", "shareholders equity", "stockholders equity"}, fieldTokens: []string{"totalequity"}},
	{ocrPhrases: []string{"total current assets"}, fieldTokens: []string{"totalcurrentassets"}},
	{ocrPhrases: []string{"total current liabilities"}, fieldTokens: []string{"totalcurrentliabilities"}},
	{ocrPhrases: []string{"property and equipment", "fixed assets"}, fieldTokens: []string{"propertyequipment", "netfixedassets"}},
	{ocrPhrases: []string{"accumulated depreciation"}, fieldTokens: []string{"accumulateddepreciation"}},
	{ocrPhrases: []string{"monthly rent"}, fieldTokens: []string{"monthlyrent"}},
	{ocrPhrases: []string{"total monthly rent"}, fieldTokens: []string{"totalmonthlyrent"}},
	{ocrPhrases: []string{"total annual rent"}, fieldTokens: []string{"totalannualrent"}},
	{ocrPhrases: []string{"occupancy rate"}, fieldTokens: []string{"occupancyrate"}},
	{ocrPhrases: []string{"occupied units"}, fieldTokens: []string{"occupiedunits"}},
	{ocrPhrases: []string{"vacant units"}, fieldTokens: []string{"vacantunits"}},
	{ocrPhrases: []string{"total units"}, fieldTokens: []string{"totalunits"}},
	{ocrPhrases: []string{"net rental income"}, fieldTokens: []string{"netrentalincome"}},
	{ocrPhrases: []string{"rents received"}, fieldTokens: []string{"rentsreceived"}},
	{ocrPhrases: []string{"gross margin"}, fieldTokens: []string{"grossmargin"}},
	{ocrPhrases: []string{"adjusted net income"}, fieldTokens: []string{"adjustednetincome"}},
	{ocrPhrases: []string{"total add backs", "addbacks"}, fieldTokens: []string{"totaladdbacks"}},
}

// matchFuzzyPhraseMap implements strategy 2: succeeds when any OCR phrase is
// a normalized substring of the OCR key AND any field token is a normalized
// substring of the field path's last segment, in either direction.
func matchFuzzyPhraseMap(fieldPath, ocrKey string) bool {
	normalizedKey := normalize(ocrKey)
	normalizedSegment := normalize(lastSegment(fieldPath))
	if normalizedKey == "" || normalizedSegment == "" {
		return false
	}

	for _, row := range fuzzyPhraseMap {
		phraseHit := false
		for _, phrase := range row.ocrPhrases {
			if normalizedPhrase := normalize(phrase); normalizedPhrase != "" && strings.Contains(normalizedKey, normalizedPhrase) {
				phraseHit = true
				break
			}
		}
		if !phraseHit {
			continue
		}
		for _, token := range row.fieldTokens {
			normalizedToken := normalize(token)
			if normalizedToken == "" {
				continue
			}
			if strings.Contains(normalizedSegment, normalizedToken) || strings.Contains(normalizedToken, normalizedSegment) {
				return true
			}
		}
	}
	return false
}

// matchDirectSubstring implements strategy 3: the last path segment,
// normalized, must have length >= 4 and be a substring of the normalized OCR
// key, or vice versa.
func matchDirectSubstring(fieldPath, ocrKey string) bool {
	normalizedKey := normalize(ocrKey)
	normalizedSegment := normalize(lastSegment(fieldPath))
	if len(normalizedSegment) < 4 || normalizedKey == "" {
		return false
	}
	return strings.Contains(normalizedKey, normalizedSegment) || strings.Contains(normalizedSegment, normalizedKey)
}

// Matches tries the three field-label matching strategies in order. A
// positive return from any strategy counts as a match.
func Matches(fieldPath, ocrKey string) bool {
	if matchTaxFormDictionary(fieldPath, ocrKey) {
		return true
	}
	if matchFuzzyPhraseMap(fieldPath, ocrKey) {
		return true
	}
	return matchDirectSubstring(fieldPath, ocrKey)
}
