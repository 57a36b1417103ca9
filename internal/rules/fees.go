package rules

import "github.com/huuhoait/credit-structuring-core/domain"

// computeFees turns a program's standard fee schedule into dollar line items.
func computeFees(standardFees []domain.Fee, approvedAmount float64) ([]domain.FeeLineItem, float64) {
	fees := make([]domain.FeeLineItem, 0, len(standardFees))
	total := 0.0

	for _, f := range standardFees {
		amount := f.Value
		if f.Type == domain.FeePercent {
			amount = round2(approvedAmount * f.Value)
		}
		fees = append(fees, domain.FeeLineItem{
			Name:        f.Name,
			Description: f.Description,
			Type:        f.Type,
			Value:       f.Value,
			Amount:      amount,
		})
		total += amount
	}

	return fees, round2(total)
}
