package creditmemo

import "strings"

// Fixed color palette, hex without the leading '#'.
const (
	colorGreen    = "2E7D32"
	colorGreenish = "66BB6A"
	colorAmber    = "F9A825"
	colorOrange   = "EF6C00"
	colorRed      = "C62828"
	colorDarkRed  = "7B1515"
	colorNeutral  = "424242"
)

// ratingColor maps a free-text rating string to a fixed palette color.
// Rules are checked in order; the first substring match wins.
func ratingColor(rating string) string {
	lower := strings.ToLower(rating)

	switch {
	case strings.Contains(lower, "critical"), strings.Contains(lower, "severe"):
		return colorDarkRed
	case strings.Contains(lower, "poor"), strings.Contains(lower, "high risk"):
		return colorRed
	case strings.Contains(lower, "below"), strings.Contains(lower, "marginal"), strings.Contains(lower, "weak"):
		return colorOrange
	case strings.Contains(lower, "adequate"), strings.Contains(lower, "acceptable"), strings.Contains(lower, "moderate"):
		return colorAmber
	case strings.Contains(lower, "good"):
		return colorGreenish
	case strings.Contains(lower, "excellent"), strings.Contains(lower, "strong"):
		return colorGreen
	default:
		return colorNeutral
	}
}

// severityColor maps a risk-flag severity string to a palette color.
func severityColor(severity string) string {
	switch strings.ToLower(severity) {
	case "critical":
		return colorDarkRed
	case "high":
		return colorRed
	case "medium", "moderate":
		return colorAmber
	case "low":
		return colorGreenish
	case "info":
		return colorNeutral
	default:
		return colorNeutral
	}
}

// severityOrder is the sort key for the risk assessment section: critical,
// high, medium/moderate, low, info.
var severityOrder = map[string]int{
	"critical": 0,
	"high":     1,
	"medium":   2,
	"moderate": 2,
	"low":      3,
	"info":     4,
}

func severityRank(severity string) int {
	if rank, ok := severityOrder[strings.ToLower(severity)]; ok {
		return rank
	}
	return len(severityOrder)
}

// passRateColor colors a pass rate for the verification summary section.
func passRateColor(passRate float64) string {
	switch {
	case passRate >= 0.95:
		return colorGreen
	case passRate >= 0.80:
		return colorAmber
	default:
		return colorRed
	}
}
