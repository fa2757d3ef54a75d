package model

// SalienceCategory is the discrete salience tier of an entity.
type SalienceCategory string

const (
	SalienceDominant  SalienceCategory = "dominant"
	SalienceProminent SalienceCategory = "prominent"
	SalienceRelevant  SalienceCategory = "relevant"
	SaliencePresent   SalienceCategory = "present"
	SalienceMarginal  SalienceCategory = "marginal"
)

// SalienceClass describes the tier assigned to an entity by the
// salience classifier, including its display attributes.
type SalienceClass struct {
	Category    SalienceCategory `json:"category"`
	Label       string           `json:"label"`
	Icon        string           `json:"icon"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
	Score       int              `json:"score"`
}
