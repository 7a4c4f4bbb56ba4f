// Package store defines the aggregate-row query contract. The canonical
// FilterState is the sole input a backing implementation receives; row-level
// access control is the backend's concern, not modeled here.
package store

import (
	"context"

	"voicedash/core/types"
)

// AggregateStore serves raw call aggregates for a canonical filter.
type AggregateStore interface {
	// Query returns every row matching the filter, ordered per f.Sort.
	// Pagination is applied by the caller (summaries fold the full set).
	Query(ctx context.Context, f types.FilterState) ([]types.CallAggregate, error)
}

// Page cuts one pagination window out of an ordered row set.
func Page(rows []types.CallAggregate, p types.Pagination) []types.CallAggregate {
	if p.PageSize < 1 || p.Page < 1 {
		return nil
	}
	start := (p.Page - 1) * p.PageSize
	if start >= len(rows) {
		return nil
	}
	end := start + p.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
