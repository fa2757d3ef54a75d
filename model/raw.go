package model

// RawTextSpan is the text payload of a raw mention as delivered by the
// extraction API.
type RawTextSpan struct {
	Content     string `json:"content"`
	BeginOffset int    `json:"beginOffset"`
}

// RawMention is one mention of a raw entity in the extraction response.
type RawMention struct {
	Text RawTextSpan `json:"text"`
	Type string      `json:"type"`
}

// RawEntity is an entity record exactly as the extraction collaborator
// delivers it. All fields are optional; normalization fills defaults.
type RawEntity struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Salience float64           `json:"salience"`
	Mentions []RawMention      `json:"mentions"`
	Metadata map[string]string `json:"metadata"`
}

// ExtractionResponse is the completed result of an extraction call.
// Text carries the analyzed source text so downstream factor analysis
// can inspect mention positions and contexts.
type ExtractionResponse struct {
	Entities []RawEntity `json:"entities"`
	Language string      `json:"language"`
	Text     string      `json:"-"`
}
