package model

// FrequencyRating tiers an entity by its mention count.
type FrequencyRating string

const (
	FrequencyHigh    FrequencyRating = "high"
	FrequencyMedium  FrequencyRating = "medium"
	FrequencyLow     FrequencyRating = "low"
	FrequencyVeryLow FrequencyRating = "very_low"
)

// QualityRating tiers the proper/common mention mix of an entity.
type QualityRating string

const (
	QualityHigh   QualityRating = "high"
	QualityMedium QualityRating = "medium"
	QualityLow    QualityRating = "low"
)

// FrequencyFactor describes how often an entity is mentioned.
type FrequencyFactor struct {
	Count       int             `json:"count"`
	Rating      FrequencyRating `json:"rating"`
	Description string          `json:"description"`
	Score       float64         `json:"score"`
}

// MentionPosition records where one mention sits in the source text.
type MentionPosition struct {
	Offset   int     `json:"offset"`
	Relative float64 `json:"relative"`
	Text     string  `json:"text"`
}

// PositionFactor describes where an entity's mentions appear.
type PositionFactor struct {
	InTitle          bool              `json:"in_title"`
	InFirstParagraph bool              `json:"in_first_paragraph"`
	AverageScore     float64           `json:"average_score"`
	Description      string            `json:"description"`
	Positions        []MentionPosition `json:"positions"`
}

// MentionContext is the text window around one mention.
type MentionContext struct {
	Text       string `json:"text"`
	BeforeText string `json:"before_text"`
	AfterText  string `json:"after_text"`
}

// ContextFactor collects the context windows of all mentions.
type ContextFactor struct {
	Contexts       []MentionContext `json:"contexts"`
	UniqueContexts int              `json:"unique_contexts"`
	Description    string           `json:"description"`
}

// MentionTypeFactor describes the proper/common mention ratio.
type MentionTypeFactor struct {
	Proper      int           `json:"proper"`
	Common      int           `json:"common"`
	ProperRatio float64       `json:"proper_ratio"`
	Quality     QualityRating `json:"quality"`
	Description string        `json:"description"`
}

// CooccurrenceFactor is reserved for nearby-entity analysis. The
// nearby entity list is currently always empty.
type CooccurrenceFactor struct {
	Description    string   `json:"description"`
	NearbyEntities []string `json:"nearby_entities"`
}

// SalienceFactors bundles the explanatory sub-scores of an entity.
type SalienceFactors struct {
	Frequency    FrequencyFactor    `json:"frequency"`
	Position     PositionFactor     `json:"position"`
	Context      ContextFactor      `json:"context"`
	MentionTypes MentionTypeFactor  `json:"mention_types"`
	Cooccurrence CooccurrenceFactor `json:"cooccurrence"`
}
