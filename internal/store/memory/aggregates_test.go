// Package memory - Aggregate store tests
package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"voicedash/core/types"
	"voicedash/internal/store"
)

func day(d int) types.Date {
	return types.Date{Year: 2026, Month: time.August, Day: d}
}

func seeded(t *testing.T) *AggregateMemoryStore {
	t.Helper()
	s := NewAggregateMemoryStore()
	rows := []types.CallAggregate{
		{TenantID: "tenant-a", Day: day(10), DeploymentID: "dep-1", AgentType: types.AgentTypeInbound,
			Outcome: types.OutcomeAnswered, Emotion: types.EmotionPositive,
			Calls: 30, DurationSeconds: 900, ProviderCost: decimal.NewFromInt(10)},
		{TenantID: "tenant-a", Day: day(12), DeploymentID: "dep-2", AgentType: types.AgentTypeOutbound,
			Outcome: types.OutcomeVoicemail, Emotion: types.EmotionNeutral,
			Calls: 10, DurationSeconds: 300, ProviderCost: decimal.NewFromInt(5)},
		{TenantID: "tenant-b", Day: day(14), DeploymentID: "dep-3", AgentType: types.AgentTypeOutbound,
			Outcome: types.OutcomeAnswered, Emotion: types.EmotionNegative,
			Calls: 20, DurationSeconds: 1200, ProviderCost: decimal.NewFromInt(30)},
		{TenantID: "tenant-c", Day: day(20), DeploymentID: "dep-4", AgentType: types.AgentTypeBlended,
			Outcome: types.OutcomeFailed, Emotion: types.EmotionNeutral,
			Calls: 5, DurationSeconds: 60, ProviderCost: decimal.NewFromInt(1)},
	}
	if err := s.ReplaceAll(context.Background(), rows); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	return s
}

func baseFilter() types.FilterState {
	return types.FilterState{
		Range:   types.DateRange{Start: day(1), End: day(31)},
		Tenants: types.AllTenants(),
		Page:    types.Pagination{Page: 1, PageSize: 25},
		Sort:    types.Sort{Column: "date", Direction: types.SortAsc},
	}
}

func mustQuery(t *testing.T, s *AggregateMemoryStore, f types.FilterState) []types.CallAggregate {
	t.Helper()
	rows, err := s.Query(context.Background(), f)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	return rows
}

func TestQueryDateRangeInclusive(t *testing.T) {
	s := seeded(t)
	f := baseFilter()
	f.Range = types.DateRange{Start: day(12), End: day(14)}

	rows := mustQuery(t, s, f)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (bounds inclusive)", len(rows))
	}
}

func TestQuerySingleTenant(t *testing.T) {
	s := seeded(t)
	f := baseFilter()
	f.Tenants = types.SingleTenant("tenant-a")

	rows := mustQuery(t, s, f)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, r := range rows {
		if r.TenantID != "tenant-a" {
			t.Errorf("leaked row for %s", r.TenantID)
		}
	}
}

func TestQueryTenantList(t *testing.T) {
	s := seeded(t)
	f := baseFilter()
	f.Tenants = types.TenantList([]string{"tenant-b", "tenant-c"})

	if rows := mustQuery(t, s, f); len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
}

func TestQueryDimensionFilters(t *testing.T) {
	s := seeded(t)

	f := baseFilter()
	f.AgentType = types.AgentTypeOutbound
	if rows := mustQuery(t, s, f); len(rows) != 2 {
		t.Errorf("agent type filter: got %d rows, want 2", len(rows))
	}

	f = baseFilter()
	f.Outcomes = []types.Outcome{types.OutcomeAnswered}
	if rows := mustQuery(t, s, f); len(rows) != 2 {
		t.Errorf("outcome filter: got %d rows, want 2", len(rows))
	}

	f = baseFilter()
	f.Emotion = types.EmotionNegative
	if rows := mustQuery(t, s, f); len(rows) != 1 {
		t.Errorf("emotion filter: got %d rows, want 1", len(rows))
	}

	f = baseFilter()
	f.Deployment = "dep-4"
	if rows := mustQuery(t, s, f); len(rows) != 1 {
		t.Errorf("deployment filter: got %d rows, want 1", len(rows))
	}
}

func TestQuerySearch(t *testing.T) {
	s := seeded(t)
	f := baseFilter()
	f.Search = "TENANT-B"

	rows := mustQuery(t, s, f)
	if len(rows) != 1 || rows[0].TenantID != "tenant-b" {
		t.Fatalf("search match = %v", rows)
	}
}

func TestQuerySortByCalls(t *testing.T) {
	s := seeded(t)
	f := baseFilter()
	f.Sort = types.Sort{Column: "calls", Direction: types.SortDesc}

	rows := mustQuery(t, s, f)
	for i := 1; i < len(rows); i++ {
		if rows[i].Calls > rows[i-1].Calls {
			t.Fatalf("rows not descending by calls: %d before %d", rows[i-1].Calls, rows[i].Calls)
		}
	}
}

func TestQuerySortByCost(t *testing.T) {
	s := seeded(t)
	f := baseFilter()
	f.Sort = types.Sort{Column: "cost", Direction: types.SortAsc}

	rows := mustQuery(t, s, f)
	for i := 1; i < len(rows); i++ {
		if rows[i].ProviderCost.LessThan(rows[i-1].ProviderCost) {
			t.Fatal("rows not ascending by cost")
		}
	}
}

func TestPage(t *testing.T) {
	s := seeded(t)
	rows := mustQuery(t, s, baseFilter())

	page := store.Page(rows, types.Pagination{Page: 2, PageSize: 3})
	if len(page) != 1 {
		t.Errorf("page 2 size 3 over 4 rows = %d rows, want 1", len(page))
	}
	if got := store.Page(rows, types.Pagination{Page: 9, PageSize: 3}); got != nil {
		t.Errorf("out-of-range page = %v, want nil", got)
	}
}

func TestReplaceAllSwapsSnapshot(t *testing.T) {
	s := seeded(t)
	if err := s.ReplaceAll(context.Background(), nil); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if rows := mustQuery(t, s, baseFilter()); len(rows) != 0 {
		t.Errorf("old snapshot still visible: %d rows", len(rows))
	}
}
