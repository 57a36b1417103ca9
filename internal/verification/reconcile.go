// Package verification implements the dual-path extraction reconciliation
// (structured extraction vs. raw OCR key/value pairs) and the
// per-document arithmetic invariant engine. Together these are
// the Verification Core.
package verification

import (
	"strings"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/huuhoait/credit-structuring-core/internal/matching"
	"github.com/huuhoait/credit-structuring-core/internal/parsing"
)

// moneyTolerance is the absolute money tolerance for equation/reconciliation
// checks.
const moneyTolerance = 1.00

// reservedMetadataSegments are path segments that never carry numeric
// evidence worth reconciling, even if their value happens to parse as a
// number (e.g. a four-digit tax year).
var reservedMetadataSegments = map[string]bool{
	"page": true, "confidence": true, "status": true, "type": true, "name": true,
	"address": true, "ein": true, "ssn": true, "tin": true, "filingstatus": true,
	"taxyear": true, "year": true, "month": true, "businesscode": true,
	"accountnumber": true, "routingnumber": true, "description": true,
	"label": true, "category": true, "date": true, "id": true, "index": true,
	"count": true, "unit": true,
}

func isMetadataPath(path string) bool {
	segment := strings.ToLower(lastSegment(path))
	if reservedMetadataSegments[segment] {
		return true
	}
	return strings.HasPrefix(segment, "metadata_") || strings.HasSuffix(segment, "_metadata")
}

func lastSegment(fieldPath string) string {
	segment := fieldPath
	if idx := strings.LastIndex(segment, "."); idx >= 0 {
		segment = segment[idx+1:]
	}
	if idx := strings.Index(segment, "["); idx >= 0 {
		segment = segment[:idx]
	}
	return segment
}

// parsedKV is a pre-parsed OCR observation: the original KVPair plus its
// numeric value, kept together so later steps never re-parse.
type parsedKV struct {
	domain.KVPair
	value float64
}

// Reconcile pre-parses the OCR list, flattens the
// structured extraction, drops metadata and zero-valued leaves, and for each
// remaining leaf finds the closest-matching OCR observation.
func Reconcile(structuredData map[string]any, ocr []domain.KVPair) []domain.Comparison {
	parsedOCR := preParseOCR(ocr)

	leaves := parsing.Flatten(structuredData)
	var comparisons []domain.Comparison

	for _, leaf := range leaves {
		if leaf.Value == 0 {
			continue
		}
		if isMetadataPath(leaf.Path) {
			continue
		}
		comparisons = append(comparisons, reconcileLeaf(leaf, parsedOCR))
	}

	return comparisons
}

func preParseOCR(ocr []domain.KVPair) []parsedKV {
	var out []parsedKV
	for _, kv := range ocr {
		value, ok := parsing.ParseNumber(kv.Value)
		if !ok {
			continue
		}
		out = append(out, parsedKV{KVPair: kv, value: value})
	}
	return out
}

func reconcileLeaf(leaf parsing.LeafValue, parsedOCR []parsedKV) domain.Comparison {
	var (
		best      *parsedKV
		bestDiff  float64
	)

	for i := range parsedOCR {
		candidate := &parsedOCR[i]
		if !matching.Matches(leaf.Path, candidate.Key) {
			continue
		}
		diff := absDiff(leaf.Value, candidate.value)
		if best == nil ||
			diff < bestDiff ||
			(diff == bestDiff && candidate.Page < best.Page) {
			best = candidate
			bestDiff = diff
		}
	}

	if best == nil {
		return domain.Comparison{
			FieldPath:       leaf.Path,
			StructuredValue: leaf.Value,
			Matched:         false,
			Difference:      absDiff(leaf.Value, 0),
		}
	}

	value := best.value
	key := best.Key
	page := best.Page
	return domain.Comparison{
		FieldPath:       leaf.Path,
		StructuredValue: leaf.Value,
		TextractValue:   &value,
		TextractKey:     &key,
		Matched:         bestDiff <= moneyTolerance,
		Difference:      bestDiff,
		Page:            &page,
	}
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
