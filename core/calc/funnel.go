// Package calc - Funnel and billing summaries
package calc

import (
	"github.com/shopspring/decimal"

	"voicedash/core/types"
)

// ComputeFunnel folds aggregate rows into the call funnel. Rates with a zero
// denominator are zero, not an error: an empty result set is a normal
// dashboard state.
func ComputeFunnel(rows []types.CallAggregate) types.FunnelSummary {
	var s types.FunnelSummary
	var durationSeconds int64
	for _, r := range rows {
		s.TotalCalls += r.Calls
		s.Answered += r.Answered
		s.Qualified += r.Qualified
		s.Converted += r.Converted
		durationSeconds += r.DurationSeconds
	}

	s.AnswerRatePercent = ratePercent(s.Answered, s.TotalCalls)
	s.QualificationRatePercent = ratePercent(s.Qualified, s.Answered)
	s.ConversionRatePercent = ratePercent(s.Converted, s.Qualified)
	if s.TotalCalls > 0 {
		s.AverageDurationSeconds = decimal.NewFromInt(durationSeconds).
			Div(decimal.NewFromInt(s.TotalCalls))
	}
	return s
}

// ComputeBilling folds aggregate rows into the revenue/cost/margin view.
// Whether a caller may see this at all is decided upstream of the core.
func ComputeBilling(rows []types.CallAggregate) types.BillingSummary {
	var s types.BillingSummary
	for _, r := range rows {
		s.Revenue = s.Revenue.Add(r.Revenue)
		s.ProviderCost = s.ProviderCost.Add(r.ProviderCost)
	}
	s.Margin = s.Revenue.Sub(s.ProviderCost)
	if s.Revenue.IsPositive() {
		s.MarginPercent = s.Margin.Div(s.Revenue).Mul(hundred)
	}
	return s
}

func ratePercent(part, whole int64) decimal.Decimal {
	if whole <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Div(decimal.NewFromInt(whole)).Mul(hundred)
}
