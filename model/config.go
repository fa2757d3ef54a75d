package model

// ProcessOptions controls the optional stages of the pipeline.
type ProcessOptions struct {
	// Deduplicate merges near-duplicate entities (exact and similarity
	// based grouping).
	Deduplicate bool `json:"deduplicate"`

	// FilterStopwords removes stopword and noise entities for the
	// detected language.
	FilterStopwords bool `json:"filter_stopwords"`
}

// DefaultProcessOptions returns the documented defaults: both optional
// stages enabled.
func DefaultProcessOptions() ProcessOptions {
	return ProcessOptions{
		Deduplicate:     true,
		FilterStopwords: true,
	}
}
