// Package memory is an in-memory AggregateStore backed by an immutable
// snapshot. It stands in for the managed backend in tests, local development
// and the bundled server binary.
package memory

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"voicedash/core/types"
	"voicedash/internal/errors"
)

type snapshot struct {
	rows []types.CallAggregate
}

// AggregateMemoryStore holds aggregate rows in an atomically swapped,
// immutable snapshot. Readers never block writers and vice versa.
type AggregateMemoryStore struct {
	v atomic.Value // *snapshot
}

// NewAggregateMemoryStore returns an empty store
func NewAggregateMemoryStore() *AggregateMemoryStore {
	s := &AggregateMemoryStore{}
	s.v.Store(&snapshot{})
	return s
}

// ReplaceAll swaps in a new full snapshot of rows
func (s *AggregateMemoryStore) ReplaceAll(ctx context.Context, rows []types.CallAggregate) error {
	_ = ctx

	copied := make([]types.CallAggregate, len(rows))
	copy(copied, rows)
	s.v.Store(&snapshot{rows: copied})
	return nil
}

// LoadFile replaces the snapshot with rows read from a JSON file
func (s *AggregateMemoryStore) LoadFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Store("reading aggregate snapshot", err).WithContext("path", path)
	}
	var rows []types.CallAggregate
	if err := json.Unmarshal(data, &rows); err != nil {
		return errors.Parsing("decoding aggregate snapshot", err).WithContext("path", path)
	}
	return s.ReplaceAll(ctx, rows)
}

// Query returns the rows matching the filter, ordered per f.Sort
func (s *AggregateMemoryStore) Query(ctx context.Context, f types.FilterState) ([]types.CallAggregate, error) {
	_ = ctx

	snap := s.v.Load().(*snapshot)
	var out []types.CallAggregate
	for _, r := range snap.rows {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	orderRows(out, f.Sort)
	return out, nil
}

func matches(r types.CallAggregate, f types.FilterState) bool {
	if !f.Range.Contains(r.Day) {
		return false
	}
	if !f.Tenants.Matches(r.TenantID) {
		return false
	}
	if f.AgentType != "" && r.AgentType != f.AgentType {
		return false
	}
	if f.Deployment != "" && r.DeploymentID != f.Deployment {
		return false
	}
	if len(f.Outcomes) > 0 && !containsOutcome(f.Outcomes, r.Outcome) {
		return false
	}
	if f.Emotion != "" && r.Emotion != f.Emotion {
		return false
	}
	if f.Search != "" && !matchesSearch(r, f.Search) {
		return false
	}
	return true
}

func containsOutcome(outcomes []types.Outcome, o types.Outcome) bool {
	for _, candidate := range outcomes {
		if candidate == o {
			return true
		}
	}
	return false
}

// matchesSearch does a case-insensitive substring match on the row's
// identifying fields.
func matchesSearch(r types.CallAggregate, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(r.TenantID), q) ||
		strings.Contains(strings.ToLower(r.DeploymentID), q)
}

func orderRows(rows []types.CallAggregate, s types.Sort) {
	less := lessFunc(s.Column)
	asc := s.Direction == types.SortAsc
	sort.SliceStable(rows, func(i, j int) bool {
		if asc {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})
}

// lessFunc maps an allow-listed sort column to a comparison. Unknown columns
// cannot reach here (the normalizer enforces the allow-list) but fall back to
// the date ordering anyway.
func lessFunc(column string) func(a, b types.CallAggregate) bool {
	switch column {
	case "calls":
		return func(a, b types.CallAggregate) bool { return a.Calls < b.Calls }
	case "duration":
		return func(a, b types.CallAggregate) bool { return a.DurationSeconds < b.DurationSeconds }
	case "cost":
		return func(a, b types.CallAggregate) bool { return a.ProviderCost.LessThan(b.ProviderCost) }
	case "client":
		return func(a, b types.CallAggregate) bool { return a.TenantID < b.TenantID }
	default: // date
		return func(a, b types.CallAggregate) bool { return a.Day.Before(b.Day) }
	}
}
