package rules

import (
	"context"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// riskFactor maps a risk rating onto the [0,1] spread-interpolation factor
// used against a program's SpreadRange.
func riskFactor(rating domain.RiskRating) float64 {
	switch rating {
	case domain.RiskRatingLow:
		return 0
	case domain.RiskRatingModerate:
		return 0.33
	case domain.RiskRatingElevated:
		return 0.67
	case domain.RiskRatingHigh:
		return 1
	default:
		return 0.5
	}
}

func interpolateSpread(min, max, factor float64) float64 {
	return min + factor*(max-min)
}

// sba7aTierMaxSpread is the SBA 7(a) tier-cap table.
func sba7aTierMaxSpread(approvedAmount float64) float64 {
	switch {
	case approvedAmount <= 50_000:
		return 0.065
	case approvedAmount <= 250_000:
		return 0.060
	case approvedAmount <= 350_000:
		return 0.045
	default:
		return 0.030
	}
}

// computeRate prices the loan in full, including the SBA 7(a)
// tier-cap override.
func computeRate(ctx context.Context, rateSource domain.RateSource, programID string, spreadRange domain.SpreadRange, baseRateKind domain.BaseRateKind, riskRating domain.RiskRating, approvedAmount float64) (domain.Rate, error) {
	baseRateValue, err := rateSource.GetBaseRate(ctx, baseRateKind)
	if err != nil {
		return domain.Rate{}, err
	}

	factor := riskFactor(riskRating)
	min, max := spreadRange.Min, spreadRange.Max

	if programID == domain.ProgramSBA7a {
		tierMaxSpread := sba7aTierMaxSpread(approvedAmount)
		spread := roundToGrid(interpolateSpread(min, tierMaxSpread, factor))
		spread = clamp(spread, min, tierMaxSpread)
		return domain.Rate{
			BaseRateType:  baseRateKind,
			BaseRateValue: baseRateValue,
			Spread:        spread,
			TotalRate:     round4(baseRateValue + spread),
		}, nil
	}

	spread := roundToGrid(interpolateSpread(min, max, factor))
	return domain.Rate{
		BaseRateType:  baseRateKind,
		BaseRateValue: baseRateValue,
		Spread:        spread,
		TotalRate:     round4(baseRateValue + spread),
	}, nil
}
