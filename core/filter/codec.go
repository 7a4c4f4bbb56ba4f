// Package filter - Query-string codec
package filter

import (
	"net/url"
	"strconv"
	"strings"

	"voicedash/core/types"
)

// Encode serializes a FilterState to a URL query string. Fields equal to
// their default are omitted to keep shared links short; Decode restores them.
// Keys come out alphabetically ordered (url.Values.Encode), so equal states
// encode to equal strings.
func Encode(f types.FilterState, defaults types.FilterDefaults, today types.Date) string {
	def := Defaults(defaults, today)
	vals := url.Values{}

	if f.Range != def.Range {
		vals.Set(keyFrom, f.Range.Start.String())
		vals.Set(keyTo, f.Range.End.String())
	}

	switch f.Tenants.Kind {
	case types.ScopeSingleTenant:
		vals.Set(keyClient, f.Tenants.TenantID)
	case types.ScopeTenantList:
		vals.Set(keyClients, strings.Join(f.Tenants.TenantIDs, listSeparator))
	}

	if f.AgentType != "" {
		vals.Set(keyType, string(f.AgentType))
	}
	if f.Deployment != "" {
		vals.Set(keyAgent, f.Deployment)
	}
	if len(f.Outcomes) > 0 {
		parts := make([]string, len(f.Outcomes))
		for i, o := range f.Outcomes {
			parts[i] = string(o)
		}
		vals.Set(keyOutcomes, strings.Join(parts, listSeparator))
	}
	if f.Emotion != "" {
		vals.Set(keyEmotion, string(f.Emotion))
	}

	if f.Page.Page != def.Page.Page {
		vals.Set(keyPage, strconv.Itoa(f.Page.Page))
	}
	if f.Page.PageSize != def.Page.PageSize {
		vals.Set(keyPageSize, strconv.Itoa(f.Page.PageSize))
	}
	if f.Sort.Column != def.Sort.Column {
		vals.Set(keySort, f.Sort.Column)
	}
	if f.Sort.Direction != def.Sort.Direction {
		vals.Set(keyDir, string(f.Sort.Direction))
	}
	if f.Search != "" {
		vals.Set(keySearch, f.Search)
	}

	return vals.Encode()
}

// Decode parses a query string (with or without a leading "?") into a
// canonical FilterState. Unknown keys are ignored; malformed values fall
// through the normalizer's defaulting rules. Decode never fails.
func Decode(query string, defaults types.FilterDefaults, today types.Date) types.FilterState {
	query = strings.TrimPrefix(query, "?")
	vals, err := url.ParseQuery(query)
	if err != nil {
		// ParseQuery still returns the pairs it could parse; use them.
		if vals == nil {
			vals = url.Values{}
		}
	}
	return Normalize(vals, defaults, today)
}
