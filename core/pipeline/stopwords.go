package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/salienza/salienza/model"
)

var (
	asciiLetterRe = regexp.MustCompile(`[a-z]`)
	punctuationRe = regexp.MustCompile(`^[.,;:!?()\[\]{}'"]+$`)
	allDigitsRe   = regexp.MustCompile(`^\d+$`)
	whitespaceRe  = regexp.MustCompile(`^\s*$`)
	noWordCharRe  = regexp.MustCompile(`^[^\w\s]*$`)
)

// StopwordsForLanguage returns the stopword set for a language code or
// English language name (case-insensitive). Unrecognized languages fall
// back to English.
func StopwordsForLanguage(language string) map[string]struct{} {
	normalized := strings.ToLower(strings.TrimSpace(language))
	if code, ok := languageAliases[normalized]; ok {
		normalized = code
	}
	if set, ok := stopwordsByLanguage[normalized]; ok {
		return set
	}
	return stopwordsByLanguage["en"]
}

// FilterStopwords removes stopword and noise entities for the given
// language. It is a pure function of its inputs and idempotent.
func FilterStopwords(entities []model.Entity, language string) []model.Entity {
	stopwords := StopwordsForLanguage(language)

	filtered := make([]model.Entity, 0, len(entities))
	for _, entity := range entities {
		if !isStopwordEntity(&entity, stopwords) {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}

// isStopwordEntity reports whether an entity should be removed: its
// name is a stopword, every mention is a stopword, or it is
// non-meaningful noise.
func isStopwordEntity(entity *model.Entity, stopwords map[string]struct{}) bool {
	name := strings.ToLower(strings.TrimSpace(entity.Name))

	if _, ok := stopwords[name]; ok {
		return true
	}

	if len(entity.Mentions) > 0 {
		allStopwords := true
		for _, mention := range entity.Mentions {
			text := strings.ToLower(strings.TrimSpace(mention.Text))
			if _, ok := stopwords[text]; !ok {
				allStopwords = false
				break
			}
		}
		if allStopwords {
			return true
		}
	}

	return IsNonMeaningfulEntity(entity)
}

// IsNonMeaningfulEntity reports whether an entity is linguistic noise:
// a single non-letter character, pure punctuation, a short number, a
// very short low-salience token, a word-character-free string, or a
// known generic term.
func IsNonMeaningfulEntity(entity *model.Entity) bool {
	name := strings.ToLower(strings.TrimSpace(entity.Name))
	length := utf8.RuneCountInString(name)

	if length == 1 && !asciiLetterRe.MatchString(name) {
		return true
	}

	if punctuationRe.MatchString(name) {
		return true
	}

	if allDigitsRe.MatchString(name) && length < 4 {
		return true
	}

	if length <= 2 && entity.Salience < 0.1 {
		return true
	}

	if whitespaceRe.MatchString(name) || noWordCharRe.MatchString(name) {
		return true
	}

	if _, ok := genericTerms[name]; ok {
		return true
	}

	return false
}
