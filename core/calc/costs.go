// Package calc - Cost and ROI derivation
package calc

import (
	"github.com/shopspring/decimal"

	"voicedash/core/types"
)

var (
	secondsPerMinute = decimal.NewFromInt(60)
	monthsPerYear    = decimal.NewFromInt(12)
	hundred          = decimal.NewFromInt(100)
)

// ComputeCosts derives operational cost, annualized cost and the optional ROI
// projection from a pricing and volume configuration.
//
// Per-minute pricing is applied to the duration converted from seconds to
// minutes. No rounding happens here; display formatting is a presentation
// concern. The function performs no division by user input, so all-zero
// configurations yield all-zero metrics.
func ComputeCosts(cfg types.PricingVolumeConfig) types.DerivedMetrics {
	volume := cfg.Volume
	if cfg.ScheduledWindow != nil {
		volume = FromSchedule(*cfg.ScheduledWindow)
	}

	minutes := cfg.AverageCallDurationSeconds.Div(secondsPerMinute)
	costPerUnit := cfg.UnitPricing.PerProcessing.Add(cfg.UnitPricing.PerMinute.Mul(minutes))

	monthly := costPerUnit.
		Mul(decimal.NewFromInt(volume.PerMonth)).
		Add(cfg.AdditionalCosts.MonthlyFee)

	annual := monthly.Mul(monthsPerYear)

	metrics := types.DerivedMetrics{
		Volume:                 volume,
		CostPerUnit:            costPerUnit,
		MonthlyOperationalCost: monthly,
		FirstYearTotalCost:     cfg.AdditionalCosts.OneTimeIntegration.Add(annual),
		RecurringAnnualCost:    annual,
	}

	// The ROI block is suppressed by absence only: zero assumptions are
	// meaningful values and still produce a projection.
	if a := cfg.ROIAssumptions; a != nil && a.AverageConversionValue != nil && a.ConversionRatePercent != nil {
		conversions := decimal.NewFromInt(volume.PerMonth).Mul(a.ConversionRatePercent.Div(hundred))
		revenue := conversions.Mul(*a.AverageConversionValue)
		metrics.ROI = &types.ROIProjection{
			MonthlyConversions: conversions,
			MonthlyRevenue:     revenue,
			MonthlyProfit:      revenue.Sub(monthly), // not clamped, may be negative
		}
	}

	return metrics
}
