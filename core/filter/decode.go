// Package filter canonicalizes raw dashboard filter input (URL query
// parameters or form state) into a validated FilterState and maps it back to
// a compact query string. Every function here is pure and total: malformed
// input degrades to defaults, it never fails. Filter URLs must always render
// something.
package filter

import (
	"sort"
	"strconv"
	"strings"

	"voicedash/core/types"
)

// listSeparator joins list-valued parameters. Ids are UUIDs and therefore
// cannot contain it; the codec relies on that invariant and does not re-check.
const listSeparator = ","

// first returns the first raw value for a key, trimmed
func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0])
}

// decodeDate decodes a YYYY-MM-DD value; ok is false for absent or
// unparseable input
func decodeDate(vals []string) (types.Date, bool) {
	s := first(vals)
	if s == "" {
		return types.Date{}, false
	}
	d, err := types.ParseDate(s)
	if err != nil {
		return types.Date{}, false
	}
	return d, true
}

// decodeInt decodes a base-10 integer; ok is false for absent or non-numeric
// input
func decodeInt(vals []string) (int, bool) {
	s := first(vals)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeEnum decodes a closed-set value; ok is false for absent input or a
// value outside the set. Matching is case-sensitive.
func decodeEnum(vals []string, valid func(string) bool) (string, bool) {
	s := first(vals)
	if s == "" || !valid(s) {
		return "", false
	}
	return s, true
}

// decodeList decodes a separator-joined list into a sorted, deduplicated
// slice. Empty entries are dropped; an absent or empty parameter yields nil.
func decodeList(vals []string) []string {
	s := first(vals)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
