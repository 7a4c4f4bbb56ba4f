// Package filter - FilterState normalizer
package filter

import (
	"sort"

	"voicedash/core/types"
)

// Query parameter keys. Short on purpose: the query string is the persisted
// representation of the dashboard state and ends up in shared links.
const (
	keyFrom       = "from"
	keyTo         = "to"
	keyClient     = "client"
	keyClients    = "clients"
	keyType       = "type"
	keyAgent      = "agent"
	keyOutcomes   = "outcomes"
	keyEmotion    = "emotion"
	keySearch     = "q"
	keyPage       = "p"
	keyPageSize   = "size"
	keySort       = "sort"
	keyDir        = "dir"
	keyOrderAlias = "order" // legacy alias of dir, decode only
)

// SortColumns is the allow-list of sortable columns
var SortColumns = map[string]bool{
	"date":     true,
	"calls":    true,
	"duration": true,
	"cost":     true,
	"client":   true,
}

// SortColumnNames returns the allow-listed columns in stable order
func SortColumnNames() []string {
	names := make([]string, 0, len(SortColumns))
	for name := range SortColumns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	fallbackRangeDays   = 30
	fallbackPageSize    = 25
	fallbackMaxPageSize = 100
	fallbackSortColumn  = "date"
)

// sanitizeDefaults backfills unusable defaults so Normalize stays total even
// when handed a zero-value FilterDefaults.
func sanitizeDefaults(d types.FilterDefaults) types.FilterDefaults {
	if d.RangeDays <= 0 {
		d.RangeDays = fallbackRangeDays
	}
	if d.MaxPageSize <= 0 {
		d.MaxPageSize = fallbackMaxPageSize
	}
	if d.PageSize <= 0 {
		d.PageSize = fallbackPageSize
	}
	if d.PageSize > d.MaxPageSize {
		d.PageSize = d.MaxPageSize
	}
	if !SortColumns[d.SortColumn] {
		d.SortColumn = fallbackSortColumn
	}
	return d
}

// Normalize canonicalizes raw key->values input (as produced by
// url.Values or a form layer) into a fully-populated FilterState.
//
// It is pure and total: any input yields a valid state, malformed fields fall
// back to defaults. The reference date is a parameter so that "last 30 days"
// is deterministic and testable.
func Normalize(raw map[string][]string, defaults types.FilterDefaults, today types.Date) types.FilterState {
	d := sanitizeDefaults(defaults)

	defStart := today.AddDays(-d.RangeDays)
	start, okStart := decodeDate(raw[keyFrom])
	if !okStart {
		start = defStart
	}
	end, okEnd := decodeDate(raw[keyTo])
	if !okEnd {
		end = today
	}
	// An explicitly inverted range is malformed input, not a reorder request:
	// degrade the whole range to the default window.
	if start.After(end) {
		start, end = defStart, today
	}

	// Single-tenant override (admin "view as") wins over the id list.
	tenants := types.AllTenants()
	if id := first(raw[keyClient]); id != "" {
		tenants = types.SingleTenant(id)
	} else if ids := decodeList(raw[keyClients]); len(ids) > 0 {
		tenants = types.TenantList(ids)
	}

	agentType, _ := decodeEnum(raw[keyType], func(s string) bool {
		return types.AgentType(s).IsValid()
	})

	var outcomes []types.Outcome
	for _, o := range decodeList(raw[keyOutcomes]) {
		if types.Outcome(o).IsValid() {
			outcomes = append(outcomes, types.Outcome(o))
		}
	}

	emotion, _ := decodeEnum(raw[keyEmotion], func(s string) bool {
		return types.Emotion(s).IsValid()
	})

	page, ok := decodeInt(raw[keyPage])
	if !ok || page < 1 {
		page = 1
	}
	pageSize, ok := decodeInt(raw[keyPageSize])
	if !ok {
		pageSize = d.PageSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > d.MaxPageSize {
		pageSize = d.MaxPageSize
	}

	sortColumn, ok := decodeEnum(raw[keySort], func(s string) bool {
		return SortColumns[s]
	})
	if !ok {
		sortColumn = d.SortColumn
	}
	dirRaw := raw[keyDir]
	if first(dirRaw) == "" {
		dirRaw = raw[keyOrderAlias]
	}
	dir, ok := decodeEnum(dirRaw, func(s string) bool {
		return s == string(types.SortAsc) || s == string(types.SortDesc)
	})
	if !ok {
		dir = string(types.SortDesc)
	}

	return types.FilterState{
		Range:      types.DateRange{Start: start, End: end},
		Tenants:    tenants,
		AgentType:  types.AgentType(agentType),
		Deployment: first(raw[keyAgent]),
		Outcomes:   outcomes,
		Emotion:    types.Emotion(emotion),
		Page:       types.Pagination{Page: page, PageSize: pageSize},
		Sort:       types.Sort{Column: sortColumn, Direction: types.SortDirection(dir)},
		Search:     first(raw[keySearch]),
	}
}

// Defaults returns the FilterState Normalize produces for empty input. Useful
// as the comparison baseline when deciding what to encode.
func Defaults(defaults types.FilterDefaults, today types.Date) types.FilterState {
	return Normalize(nil, defaults, today)
}
