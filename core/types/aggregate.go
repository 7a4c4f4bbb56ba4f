// Package types - Aggregate row and summary types
package types

import "github.com/shopspring/decimal"

// CallAggregate is one raw aggregate row as returned by the backend query
// layer: call counts and money totals for one tenant, day and slice of the
// outcome/emotion dimensions. Rows are inputs only; the core never stores them.
type CallAggregate struct {
	// TenantID is the owning customer organization
	TenantID string `json:"tenant_id"`

	// Day is the calendar day the counts belong to
	Day Date `json:"day"`

	// DeploymentID is the deployed agent instance
	DeploymentID string `json:"deployment_id"`

	// AgentType is the agent persona
	AgentType AgentType `json:"agent_type"`

	// Outcome is the call outcome this row counts
	Outcome Outcome `json:"outcome"`

	// Emotion is the dominant emotion this row counts
	Emotion Emotion `json:"emotion"`

	// Calls is the total call count
	Calls int64 `json:"calls"`

	// Answered is the count of calls that connected
	Answered int64 `json:"answered"`

	// Qualified is the count of answered calls meeting the qualification rule
	Qualified int64 `json:"qualified"`

	// Converted is the count of qualified calls that converted
	Converted int64 `json:"converted"`

	// DurationSeconds is the summed call duration
	DurationSeconds int64 `json:"duration_seconds"`

	// ProviderCost is the upstream cost of carrying the calls
	ProviderCost decimal.Decimal `json:"provider_cost"`

	// Revenue is the amount billed to the tenant
	Revenue decimal.Decimal `json:"revenue"`
}

// FunnelSummary is the call funnel derived from aggregate rows
type FunnelSummary struct {
	// TotalCalls is the top of the funnel
	TotalCalls int64 `json:"total_calls"`

	// Answered is the connected-call count
	Answered int64 `json:"answered"`

	// Qualified is the qualified-call count
	Qualified int64 `json:"qualified"`

	// Converted is the converted-call count
	Converted int64 `json:"converted"`

	// AnswerRatePercent is answered/total, as a percentage
	AnswerRatePercent decimal.Decimal `json:"answer_rate_percent"`

	// QualificationRatePercent is qualified/answered, as a percentage
	QualificationRatePercent decimal.Decimal `json:"qualification_rate_percent"`

	// ConversionRatePercent is converted/qualified, as a percentage
	ConversionRatePercent decimal.Decimal `json:"conversion_rate_percent"`

	// AverageDurationSeconds is total duration over total calls
	AverageDurationSeconds decimal.Decimal `json:"average_duration_seconds"`
}

// BillingSummary is the money view over aggregate rows. It is only exposed to
// privileged callers; the gate lives at the API layer, not here.
type BillingSummary struct {
	// Revenue is the amount billed to tenants
	Revenue decimal.Decimal `json:"revenue"`

	// ProviderCost is the upstream carrying cost
	ProviderCost decimal.Decimal `json:"provider_cost"`

	// Margin is revenue minus provider cost
	Margin decimal.Decimal `json:"margin"`

	// MarginPercent is margin over revenue, as a percentage
	MarginPercent decimal.Decimal `json:"margin_percent"`
}
