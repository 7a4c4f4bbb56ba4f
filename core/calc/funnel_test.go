// Package calc - Funnel and billing tests
package calc

import (
	"testing"
	"time"

	"voicedash/core/types"
)

func fixtureRows() []types.CallAggregate {
	return []types.CallAggregate{
		{
			TenantID: "tenant-a",
			Day:      types.Date{Year: 2026, Month: time.August, Day: 20},
			Calls:    100, Answered: 80, Qualified: 40, Converted: 10,
			DurationSeconds: 9000,
			ProviderCost:    dec("50"),
			Revenue:         dec("200"),
		},
		{
			TenantID: "tenant-b",
			Day:      types.Date{Year: 2026, Month: time.August, Day: 25},
			Calls:    50, Answered: 20, Qualified: 10, Converted: 5,
			DurationSeconds: 3000,
			ProviderCost:    dec("25"),
			Revenue:         dec("100"),
		},
	}
}

func TestComputeFunnel(t *testing.T) {
	s := ComputeFunnel(fixtureRows())

	if s.TotalCalls != 150 || s.Answered != 100 || s.Qualified != 50 || s.Converted != 15 {
		t.Errorf("funnel counts = %+v", s)
	}
	// 100/150, 50/100, 15/50
	if s.AnswerRatePercent.Round(2).String() != "66.67" {
		t.Errorf("answer rate = %s, want 66.67", s.AnswerRatePercent.Round(2))
	}
	if !s.QualificationRatePercent.Equal(dec("50")) {
		t.Errorf("qualification rate = %s, want 50", s.QualificationRatePercent)
	}
	if !s.ConversionRatePercent.Equal(dec("30")) {
		t.Errorf("conversion rate = %s, want 30", s.ConversionRatePercent)
	}
	if !s.AverageDurationSeconds.Equal(dec("80")) {
		t.Errorf("average duration = %s, want 80", s.AverageDurationSeconds)
	}
}

func TestComputeFunnelEmpty(t *testing.T) {
	s := ComputeFunnel(nil)
	if s.TotalCalls != 0 {
		t.Errorf("total calls = %d", s.TotalCalls)
	}
	if !s.AnswerRatePercent.IsZero() || !s.ConversionRatePercent.IsZero() || !s.AverageDurationSeconds.IsZero() {
		t.Errorf("empty input produced non-zero rates: %+v", s)
	}
}

func TestComputeBilling(t *testing.T) {
	s := ComputeBilling(fixtureRows())

	if !s.Revenue.Equal(dec("300")) || !s.ProviderCost.Equal(dec("75")) {
		t.Errorf("billing totals = %+v", s)
	}
	if !s.Margin.Equal(dec("225")) {
		t.Errorf("margin = %s, want 225", s.Margin)
	}
	if !s.MarginPercent.Equal(dec("75")) {
		t.Errorf("margin percent = %s, want 75", s.MarginPercent)
	}
}

func TestComputeBillingZeroRevenue(t *testing.T) {
	rows := []types.CallAggregate{{ProviderCost: dec("10")}}
	s := ComputeBilling(rows)
	if !s.Margin.Equal(dec("-10")) {
		t.Errorf("margin = %s, want -10", s.Margin)
	}
	if !s.MarginPercent.IsZero() {
		t.Errorf("margin percent = %s, want 0 with zero revenue", s.MarginPercent)
	}
}
