// Package types - Pricing and derived-metric types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// CallMode is the calling direction a pricing scenario models
type CallMode string

const (
	CallModeInbound  CallMode = "inbound"
	CallModeOutbound CallMode = "outbound"
)

// VolumeTriple is the canonical call-volume representation. The three
// granularities are derived from one another with fixed constants
// (month = day x 30, week factor 4.33) and rounded independently.
type VolumeTriple struct {
	PerDay   int64 `json:"per_day"`
	PerWeek  int64 `json:"per_week"`
	PerMonth int64 `json:"per_month"`
}

// IsZero reports whether all three granularities are zero
func (v VolumeTriple) IsZero() bool {
	return v.PerDay == 0 && v.PerWeek == 0 && v.PerMonth == 0
}

// UnitPricing is the per-call price components
type UnitPricing struct {
	// PerProcessing is charged once per call
	PerProcessing decimal.Decimal `json:"per_processing"`

	// PerMinute is charged per minute of call duration
	PerMinute decimal.Decimal `json:"per_minute"`
}

// AdditionalCosts are the non-usage cost components
type AdditionalCosts struct {
	// OneTimeIntegration is charged once, in the first year
	OneTimeIntegration decimal.Decimal `json:"one_time_integration"`

	// MonthlyFee is a flat recurring fee
	MonthlyFee decimal.Decimal `json:"monthly_fee"`
}

// ScheduledWindow describes a recurring outbound calling window. When present
// on a config, volume is derived from the schedule instead of entered directly.
type ScheduledWindow struct {
	// FrequencyMinutes is the interval between call attempts; positive
	FrequencyMinutes decimal.Decimal `json:"frequency_minutes"`

	// StartTime is the window start, HH:MM
	StartTime string `json:"start_time"`

	// EndTime is the window end, HH:MM; a window with EndTime <= StartTime
	// yields zero volume
	EndTime string `json:"end_time"`

	// ActiveDays flags the active weekdays, Monday first
	ActiveDays [7]bool `json:"active_days"`
}

// ROIAssumptions are the optional revenue-side assumptions. Fields are
// pointers because zero is a meaningful value: only absence suppresses the
// ROI projection.
type ROIAssumptions struct {
	// AverageConversionValue is the revenue attributed to one conversion
	AverageConversionValue *decimal.Decimal `json:"average_conversion_value,omitempty"`

	// ConversionRatePercent is in [0, 100]
	ConversionRatePercent *decimal.Decimal `json:"conversion_rate_percent,omitempty"`
}

// PricingVolumeConfig is the input to the cost calculator
type PricingVolumeConfig struct {
	// Mode is the calling direction
	Mode CallMode `json:"mode"`

	// Volume is the call volume; ignored when ScheduledWindow is set
	Volume VolumeTriple `json:"volume"`

	// AverageCallDurationSeconds is non-negative
	AverageCallDurationSeconds decimal.Decimal `json:"average_call_duration_seconds"`

	// UnitPricing is the per-call price components
	UnitPricing UnitPricing `json:"unit_pricing"`

	// AdditionalCosts are the non-usage cost components
	AdditionalCosts AdditionalCosts `json:"additional_costs"`

	// ScheduledWindow, when present, derives the volume from a schedule
	ScheduledWindow *ScheduledWindow `json:"scheduled_window,omitempty"`

	// ROIAssumptions, when present with both fields, enables the ROI block
	ROIAssumptions *ROIAssumptions `json:"roi_assumptions,omitempty"`
}

// ROIProjection is the revenue-side projection of DerivedMetrics
type ROIProjection struct {
	// MonthlyConversions is volume x conversion rate
	MonthlyConversions decimal.Decimal `json:"monthly_conversions"`

	// MonthlyRevenue is conversions x average conversion value
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`

	// MonthlyProfit is revenue minus operational cost; may be negative
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`
}

// DerivedMetrics is the cost calculator output. Values are raw, unrounded
// numbers; currency formatting is a presentation concern.
type DerivedMetrics struct {
	// Volume is the triple the costs were derived from
	Volume VolumeTriple `json:"volume"`

	// CostPerUnit is the all-in cost of one call
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`

	// MonthlyOperationalCost includes the flat monthly fee
	MonthlyOperationalCost decimal.Decimal `json:"monthly_operational_cost"`

	// FirstYearTotalCost includes the one-time integration cost
	FirstYearTotalCost decimal.Decimal `json:"first_year_total_cost"`

	// RecurringAnnualCost excludes one-time costs
	RecurringAnnualCost decimal.Decimal `json:"recurring_annual_cost"`

	// ROI is present iff both ROI assumptions were provided
	ROI *ROIProjection `json:"roi,omitempty"`
}
