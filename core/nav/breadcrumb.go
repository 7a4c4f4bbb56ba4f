// Package nav derives navigation breadcrumbs from URL path segments.
package nav

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Crumb is one breadcrumb entry
type Crumb struct {
	// Href is the cumulative path up to and including this segment
	Href string `json:"href"`

	// Label is the display label
	Label string `json:"label"`

	// IsLast marks the current page (rendered without a link)
	IsLast bool `json:"is_last"`
}

// uuidLabel replaces raw identifiers in the trail
const uuidLabel = "Details"

// segmentLabels maps known path segments to display labels
var segmentLabels = map[string]string{
	"dashboard":   "Dashboard",
	"clients":     "Clients",
	"agents":      "Agents",
	"deployments": "Deployments",
	"calls":       "Calls",
	"billing":     "Billing",
	"consumption": "Consumption",
	"settings":    "Settings",
}

// Trail maps the path segments of the current location to an ordered
// breadcrumb trail. Paths of one or fewer segments yield an empty trail (no
// breadcrumb at the root). Total over any input.
func Trail(segments []string) []Crumb {
	if len(segments) <= 1 {
		return nil
	}

	crumbs := make([]Crumb, 0, len(segments))
	href := ""
	for i, seg := range segments {
		href += "/" + seg
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  label(seg),
			IsLast: i == len(segments)-1,
		})
	}
	return crumbs
}

// TrailFromPath splits a raw path (query and fragment stripped by the caller)
// and derives its trail.
func TrailFromPath(path string) []Crumb {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return Trail(segments)
}

func label(segment string) string {
	if isCanonicalUUID(segment) {
		return uuidLabel
	}
	if l, ok := segmentLabels[segment]; ok {
		return l
	}
	return capitalize(segment)
}

// isCanonicalUUID matches only the canonical 8-4-4-4-12 textual form.
// uuid.Validate also accepts braced, URN and bare-hex forms, so the length
// check pins the canonical shape.
func isCanonicalUUID(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
