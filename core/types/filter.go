// Package types - Filter state types
package types

// AgentType identifies a voice-agent persona. The set is closed.
type AgentType string

const (
	AgentTypeInbound  AgentType = "inbound"
	AgentTypeOutbound AgentType = "outbound"
	AgentTypeBlended  AgentType = "blended"
)

// AgentTypes returns the closed set of agent types
func AgentTypes() []AgentType {
	return []AgentType{AgentTypeInbound, AgentTypeOutbound, AgentTypeBlended}
}

// IsValid reports whether the value is a member of the closed set
func (a AgentType) IsValid() bool {
	switch a {
	case AgentTypeInbound, AgentTypeOutbound, AgentTypeBlended:
		return true
	}
	return false
}

// Outcome identifies how a call ended. The set is closed.
type Outcome string

const (
	OutcomeAnswered  Outcome = "answered"
	OutcomeVoicemail Outcome = "voicemail"
	OutcomeBusy      Outcome = "busy"
	OutcomeNoAnswer  Outcome = "no_answer"
	OutcomeFailed    Outcome = "failed"
)

// Outcomes returns the closed set of call outcomes
func Outcomes() []Outcome {
	return []Outcome{OutcomeAnswered, OutcomeVoicemail, OutcomeBusy, OutcomeNoAnswer, OutcomeFailed}
}

// IsValid reports whether the value is a member of the closed set
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeAnswered, OutcomeVoicemail, OutcomeBusy, OutcomeNoAnswer, OutcomeFailed:
		return true
	}
	return false
}

// Emotion is the dominant caller emotion detected on a call. The set is closed.
type Emotion string

const (
	EmotionPositive Emotion = "positive"
	EmotionNeutral  Emotion = "neutral"
	EmotionNegative Emotion = "negative"
)

// Emotions returns the closed set of detected emotions
func Emotions() []Emotion {
	return []Emotion{EmotionPositive, EmotionNeutral, EmotionNegative}
}

// IsValid reports whether the value is a member of the closed set
func (e Emotion) IsValid() bool {
	switch e {
	case EmotionPositive, EmotionNeutral, EmotionNegative:
		return true
	}
	return false
}

// SortDirection is the sort order of a dashboard table
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort describes how result rows are ordered
type Sort struct {
	// Column is one of the allow-listed sortable columns
	Column string `json:"column"`

	// Direction is asc or desc
	Direction SortDirection `json:"direction"`
}

// Pagination describes the requested result page
type Pagination struct {
	// Page is 1-based
	Page int `json:"page"`

	// PageSize is clamped to [1, MaxPageSize]
	PageSize int `json:"page_size"`
}

// TenantScopeKind discriminates the tenant scope variants
type TenantScopeKind string

const (
	// ScopeAllTenants applies no tenant restriction
	ScopeAllTenants TenantScopeKind = "all"

	// ScopeSingleTenant narrows to one tenant (admin "view as")
	ScopeSingleTenant TenantScopeKind = "single"

	// ScopeTenantList narrows to an explicit id list
	ScopeTenantList TenantScopeKind = "list"
)

// TenantScope is a tagged union over the three scoping variants.
// Exactly the fields of the active variant are populated.
type TenantScope struct {
	// Kind selects the variant
	Kind TenantScopeKind `json:"kind"`

	// TenantID is set for ScopeSingleTenant
	TenantID string `json:"tenant_id,omitempty"`

	// TenantIDs is set for ScopeTenantList, sorted and deduplicated
	TenantIDs []string `json:"tenant_ids,omitempty"`
}

// AllTenants returns the unrestricted scope
func AllTenants() TenantScope {
	return TenantScope{Kind: ScopeAllTenants}
}

// SingleTenant returns a scope narrowed to one tenant
func SingleTenant(id string) TenantScope {
	return TenantScope{Kind: ScopeSingleTenant, TenantID: id}
}

// TenantList returns a scope narrowed to an id list. An empty list means no
// restriction, not "match nothing".
func TenantList(ids []string) TenantScope {
	if len(ids) == 0 {
		return AllTenants()
	}
	return TenantScope{Kind: ScopeTenantList, TenantIDs: ids}
}

// Matches reports whether a tenant id falls inside the scope
func (s TenantScope) Matches(tenantID string) bool {
	switch s.Kind {
	case ScopeSingleTenant:
		return tenantID == s.TenantID
	case ScopeTenantList:
		for _, id := range s.TenantIDs {
			if id == tenantID {
				return true
			}
		}
		return false
	}
	return true
}

// FilterState is the canonical dashboard filter. It is a value object:
// constructed fresh from URL or form input on every change, never mutated.
// The URL is its only persisted representation.
type FilterState struct {
	// Range is the inclusive calendar date range
	Range DateRange `json:"range"`

	// Tenants scopes results to customer organizations
	Tenants TenantScope `json:"tenants"`

	// AgentType narrows to one agent persona; empty means all types
	AgentType AgentType `json:"agent_type,omitempty"`

	// Deployment narrows to one deployed agent instance; empty means all
	Deployment string `json:"deployment,omitempty"`

	// Outcomes narrows to the listed call outcomes; empty means all
	Outcomes []Outcome `json:"outcomes,omitempty"`

	// Emotion narrows to one detected emotion; empty means all
	Emotion Emotion `json:"emotion,omitempty"`

	// Page is the requested result page
	Page Pagination `json:"page"`

	// Sort is the requested row ordering
	Sort Sort `json:"sort"`

	// Search is trimmed free text; may be empty
	Search string `json:"search,omitempty"`
}

// FilterDefaults are the configured fallbacks the normalizer applies
type FilterDefaults struct {
	// RangeDays is the width of the default date range ending today
	RangeDays int

	// PageSize is the default page size
	PageSize int

	// MaxPageSize is the upper clamp for page size
	MaxPageSize int

	// SortColumn is the default sort column
	SortColumn string
}
