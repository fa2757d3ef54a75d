package model

import (
	"github.com/google/uuid"
)

// EntityType is the coarse category assigned by the upstream extractor.
type EntityType string

const (
	EntityTypePerson       EntityType = "PERSON"
	EntityTypeLocation     EntityType = "LOCATION"
	EntityTypeOrganization EntityType = "ORGANIZATION"
	EntityTypeEvent        EntityType = "EVENT"
	EntityTypeWorkOfArt    EntityType = "WORK_OF_ART"
	EntityTypeConsumerGood EntityType = "CONSUMER_GOOD"
	EntityTypeOther        EntityType = "OTHER"
	EntityTypeUnknown      EntityType = "UNKNOWN"
)

// entityTypeNames maps entity types to human readable names.
var entityTypeNames = map[EntityType]string{
	EntityTypePerson:       "Person",
	EntityTypeLocation:     "Location",
	EntityTypeOrganization: "Organization",
	EntityTypeEvent:        "Event",
	EntityTypeWorkOfArt:    "Work of Art",
	EntityTypeConsumerGood: "Consumer Good",
	EntityTypeOther:        "Other",
	EntityTypeUnknown:      "Unknown",
}

// entityTypeColors maps entity types to their display colors.
var entityTypeColors = map[EntityType]string{
	EntityTypePerson:       "#1976d2",
	EntityTypeLocation:     "#388e3c",
	EntityTypeOrganization: "#f57c00",
	EntityTypeEvent:        "#7b1fa2",
	EntityTypeWorkOfArt:    "#c2185b",
	EntityTypeConsumerGood: "#5d4037",
	EntityTypeOther:        "#666666",
	EntityTypeUnknown:      "#999999",
}

// NormalizeEntityType maps an upstream type string to a known EntityType.
// Unrecognized values fall back to OTHER.
func NormalizeEntityType(raw string) EntityType {
	t := EntityType(raw)
	if _, ok := entityTypeNames[t]; ok {
		return t
	}
	return EntityTypeOther
}

// DisplayName returns the human readable name of the entity type.
func (t EntityType) DisplayName() string {
	if name, ok := entityTypeNames[t]; ok {
		return name
	}
	return entityTypeNames[EntityTypeOther]
}

// Color returns the display color of the entity type.
func (t EntityType) Color() string {
	if color, ok := entityTypeColors[t]; ok {
		return color
	}
	return entityTypeColors[EntityTypeOther]
}

// MentionType distinguishes proper noun mentions from common noun mentions.
type MentionType string

const (
	MentionTypeProper MentionType = "PROPER"
	MentionTypeCommon MentionType = "COMMON"
)

// Mention is one textual occurrence of an entity in the source text.
// BeginOffset is a byte offset into the UTF-8 source text.
type Mention struct {
	Text        string      `json:"text"`
	Type        MentionType `json:"type"`
	BeginOffset int         `json:"begin_offset"`
}

// Entity is a normalized entity produced from an upstream raw entity.
// Enrichment never mutates Salience or Mentions in place; consolidation
// produces a fresh Entity with its own mention and metadata collections.
type Entity struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Type         EntityType `json:"entity_type"`
	TypeName     string     `json:"type_name"`
	Salience     float64    `json:"salience"`
	Mentions     []Mention  `json:"mentions"`
	Metadata     Metadata   `json:"metadata,omitempty"`
	Color        string     `json:"color"`
	WikipediaURL string     `json:"wikipedia_url,omitempty"`
	Confidence   float64    `json:"confidence"`

	// Deduplication info, set only on consolidated entities.
	IsDeduplicated   bool     `json:"is_deduplicated,omitempty"`
	OriginalEntities int      `json:"original_entities,omitempty"`
	OriginalNames    []string `json:"original_names,omitempty"`
}

// ProperMentionCount returns the number of proper noun mentions.
func (e *Entity) ProperMentionCount() int {
	count := 0
	for _, m := range e.Mentions {
		if m.Type == MentionTypeProper {
			count++
		}
	}
	return count
}

// CommonMentionCount returns the number of common noun mentions.
func (e *Entity) CommonMentionCount() int {
	count := 0
	for _, m := range e.Mentions {
		if m.Type == MentionTypeCommon {
			count++
		}
	}
	return count
}
