// Package api - Request/response types
package api

import (
	"voicedash/core/nav"
	"voicedash/core/types"
)

// NormalizeResponse echoes the canonical filter and its canonical query string
type NormalizeResponse struct {
	// Filter is the canonical filter state
	Filter types.FilterState `json:"filter"`

	// Query is the canonical re-encoded query string
	Query string `json:"query"`
}

// FilterOptionsResponse lists the closed value sets the dashboard renders as
// filter dropdowns, so the UI never hardcodes them.
type FilterOptionsResponse struct {
	AgentTypes  []types.AgentType `json:"agent_types"`
	Outcomes    []types.Outcome   `json:"outcomes"`
	Emotions    []types.Emotion   `json:"emotions"`
	SortColumns []string          `json:"sort_columns"`
}

// SummaryResponse is the call-summary payload
type SummaryResponse struct {
	// Filter is the canonical filter the summary was computed for
	Filter types.FilterState `json:"filter"`

	// Query is the canonical query string for the filter
	Query string `json:"query"`

	// Funnel is computed over every matching row
	Funnel types.FunnelSummary `json:"funnel"`

	// Billing is only present for privileged callers
	Billing *types.BillingSummary `json:"billing,omitempty"`

	// Rows is the requested page of matching rows
	Rows []types.CallAggregate `json:"rows"`

	// TotalRows is the size of the full matching set
	TotalRows int `json:"total_rows"`
}

// VolumeRequest derives a volume triple from a schedule or one granularity.
// Schedule wins when present; otherwise the first granularity given in
// month, week, day order is used.
type VolumeRequest struct {
	Schedule *types.ScheduledWindow `json:"schedule,omitempty"`
	PerMonth *int64                 `json:"per_month,omitempty"`
	PerWeek  *int64                 `json:"per_week,omitempty"`
	PerDay   *int64                 `json:"per_day,omitempty"`
}

// BreadcrumbsResponse is the derived breadcrumb trail
type BreadcrumbsResponse struct {
	Crumbs []nav.Crumb `json:"crumbs"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the version payload
type VersionResponse struct {
	Version string `json:"version"`
}

// ErrorBody is the error detail of an ErrorResponse
type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
