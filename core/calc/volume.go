// Package calc holds the pure derivation functions of the dashboard core:
// volume conversions, cost/ROI computation and funnel/billing summaries.
// Nothing here does I/O, keeps state, or rounds for display.
package calc

import (
	"time"

	"github.com/shopspring/decimal"

	"voicedash/core/types"
)

// Fixed conversion constants between volume granularities.
var (
	daysPerMonth  = decimal.NewFromInt(30)
	weeksPerMonth = decimal.NewFromFloat(4.33)
)

// timeOfDayLayout parses the HH:MM window bounds
const timeOfDayLayout = "15:04"

// FromMonth derives the canonical volume triple from a monthly figure.
//
// Each derived field is rounded half-away-from-zero independently; the triple
// is not reconciled to be mutually exact, so re-deriving one granularity from
// another can drift by one. Known lossiness, kept because the figures feed
// URLs and displayed estimates that must stay stable.
func FromMonth(perMonth int64) types.VolumeTriple {
	if perMonth <= 0 {
		return types.VolumeTriple{}
	}
	m := decimal.NewFromInt(perMonth)
	return types.VolumeTriple{
		PerDay:   m.Div(daysPerMonth).Round(0).IntPart(),
		PerWeek:  m.Div(weeksPerMonth).Round(0).IntPart(),
		PerMonth: perMonth,
	}
}

// FromDay derives the triple from a daily figure
func FromDay(perDay int64) types.VolumeTriple {
	if perDay <= 0 {
		return types.VolumeTriple{}
	}
	return FromMonth(decimal.NewFromInt(perDay).Mul(daysPerMonth).Round(0).IntPart())
}

// FromWeek derives the triple from a weekly figure
func FromWeek(perWeek int64) types.VolumeTriple {
	if perWeek <= 0 {
		return types.VolumeTriple{}
	}
	return FromMonth(decimal.NewFromInt(perWeek).Mul(weeksPerMonth).Round(0).IntPart())
}

// FromSchedule derives the volume triple from a recurring calling window:
// floor(window minutes / frequency) calls per active day, scaled to a month.
//
// Degenerate windows (end at or before start, unparseable bounds, no active
// days, non-positive frequency) yield the zero triple; the function is total.
func FromSchedule(w types.ScheduledWindow) types.VolumeTriple {
	minutes := minutesBetween(w.StartTime, w.EndTime)
	if minutes <= 0 || !w.FrequencyMinutes.IsPositive() {
		return types.VolumeTriple{}
	}

	activeDays := int64(0)
	for _, active := range w.ActiveDays {
		if active {
			activeDays++
		}
	}
	if activeDays == 0 {
		return types.VolumeTriple{}
	}

	callsPerDay := decimal.NewFromInt(minutes).Div(w.FrequencyMinutes).Floor().IntPart()
	callsPerWeek := callsPerDay * activeDays
	callsPerMonth := decimal.NewFromInt(callsPerWeek).Mul(weeksPerMonth).Round(0).IntPart()
	return FromMonth(callsPerMonth)
}

// minutesBetween returns end minus start in minutes, or 0 when either bound
// fails to parse as HH:MM.
func minutesBetween(start, end string) int64 {
	s, err := time.Parse(timeOfDayLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(timeOfDayLayout, end)
	if err != nil {
		return 0
	}
	return int64(e.Sub(s) / time.Minute)
}
