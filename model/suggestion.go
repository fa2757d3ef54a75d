package model

// SuggestionType names the aspect of the text a suggestion targets.
type SuggestionType string

const (
	SuggestionFrequency   SuggestionType = "frequency"
	SuggestionPosition    SuggestionType = "position"
	SuggestionMentionType SuggestionType = "mention_type"
	SuggestionContext     SuggestionType = "context"
	SuggestionAuthority   SuggestionType = "authority"
	SuggestionPositive    SuggestionType = "positive"
)

// SuggestionPriority orders suggestions for presentation.
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
	PriorityInfo   SuggestionPriority = "info"
)

// Suggestion is one actionable improvement derived from an entity's
// classification and salience factors.
type Suggestion struct {
	Type        SuggestionType     `json:"type"`
	Priority    SuggestionPriority `json:"priority"`
	Icon        string             `json:"icon"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Actionable  string             `json:"actionable"`
}
