// Package matching maps structured field paths to the labels likely to
// appear on source documents, so the verification core can find the OCR
// key/value pair that corresponds to a given structured leaf.
package matching

import "strings"

// normalize lowercases a string and strips every non-alphanumeric rune, the
// comparison key used by all three matching strategies.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lastSegment returns the final "."-delimited, index-stripped segment of a
// dotted field path, e.g. "scheduleC[0].netProfit_line31" -> "netProfit_line31".
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
