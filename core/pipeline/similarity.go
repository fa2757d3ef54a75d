package pipeline

import (
	"regexp"
	"strings"

	"github.com/salienza/salienza/model"
)

var (
	collapseWhitespaceRe = regexp.MustCompile(`\s+`)
	namePunctuationRe    = regexp.MustCompile(`[.,;:!?()\[\]{}'"]`)
)

// abbreviationRules expands common title abbreviations so "Dr. Rossi"
// and "Doctor Rossi" normalize identically.
var abbreviationRules = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\bdr\b\.?`), "doctor"},
	{regexp.MustCompile(`\bmr\b\.?`), "mister"},
	{regexp.MustCompile(`\bmrs\b\.?`), "missus"},
	{regexp.MustCompile(`\bprof\b\.?`), "professor"},
}

// stemRules are applied in order to every word token. The rules are a
// deliberately crude heuristic for Italian and English plural and verb
// forms; they over-stem and are not linguistically exact. Order
// matters: specific Italian suffixes run before the generic vowel
// rules.
var stemRules = []struct {
	re          *regexp.Regexp
	replacement string
}{
	// Italian plural/singular forms
	{regexp.MustCompile(`\b(\w+)zioni\b`), "${1}zione"}, // informazioni -> informazione
	{regexp.MustCompile(`\b(\w+)ioni\b`), "${1}ione"},   // opinioni -> opinione
	{regexp.MustCompile(`\b(\w+)i\b`), "${1}o"},         // libri -> libro
	{regexp.MustCompile(`\b(\w+)e\b`), "${1}a"},         // persone -> persona (sometimes)
	// English plural/singular forms
	{regexp.MustCompile(`\b(\w+)ies\b`), "${1}y"}, // companies -> company
	{regexp.MustCompile(`\b(\w+)es\b`), "${1}"},   // businesses -> business
	{regexp.MustCompile(`\b(\w+)s\b`), "${1}"},    // coaches -> coach
	// Common verb forms
	{regexp.MustCompile(`\b(\w+)ing\b`), "${1}"}, // coaching -> coach
	{regexp.MustCompile(`\b(\w+)ed\b`), "${1}"},  // coached -> coach
	{regexp.MustCompile(`\b(\w+)er\b`), "${1}"},  // teacher -> teach
	// Italian verb forms
	{regexp.MustCompile(`\b(\w+)ando\b`), "${1}are"}, // parlando -> parlare
	{regexp.MustCompile(`\b(\w+)endo\b`), "${1}ere"}, // scrivendo -> scrivere
}

// entityPatternClusters are fixed clusters of professional and business
// term variants. Two names containing variants from the same cluster
// are treated as the same entity.
var entityPatternClusters = [][]string{
	// Professional titles
	{"coach", "coaching", "life coach", "life coaching"},
	{"consulente", "consulenza"},
	{"manager", "management"},
	{"trainer", "training"},
	// Business terms
	{"azienda", "aziendale"},
	{"impresa", "imprenditore"},
	{"business", "businessman"},
	// Generic terms
	{"persona", "persone"},
	{"cliente", "clienti"},
	{"servizio", "servizi"},
}

// Stem applies the fixed suffix rewrite rules to every word of text.
func Stem(text string) string {
	stemmed := text
	for _, rule := range stemRules {
		stemmed = rule.re.ReplaceAllString(stemmed, rule.replacement)
	}
	return stemmed
}

// NormalizeEntityName canonicalizes a name for exact-match grouping:
// lowercase, collapsed whitespace, stripped punctuation, expanded
// abbreviations, stemmed.
func NormalizeEntityName(name string) string {
	normalized := strings.ToLower(name)
	normalized = collapseWhitespaceRe.ReplaceAllString(strings.TrimSpace(normalized), " ")
	normalized = namePunctuationRe.ReplaceAllString(normalized, "")

	for _, rule := range abbreviationRules {
		normalized = rule.re.ReplaceAllString(normalized, rule.replacement)
	}

	return Stem(normalized)
}

// AreSimilar reports whether two entities denote the same real-world
// thing. Entities of different types are never similar. The check is a
// heuristic equivalence and is not transitive; the deduplicator
// tolerates that.
func AreSimilar(e1, e2 *model.Entity) bool {
	if e1.Type != e2.Type {
		return false
	}

	name1 := strings.ToLower(e1.Name)
	name2 := strings.ToLower(e2.Name)

	// Containment (coach vs life coach)
	if strings.Contains(name1, name2) || strings.Contains(name2, name1) {
		return true
	}

	if wordOverlap(name1, name2) > 0.5 {
		return true
	}

	if Stem(name1) == Stem(name2) {
		return true
	}

	return hasCommonEntityPattern(name1, name2)
}

// wordOverlap computes the Jaccard similarity of the word sets of two
// names.
func wordOverlap(name1, name2 string) float64 {
	words1 := wordSet(name1)
	words2 := wordSet(name2)

	intersection := 0
	for word := range words1 {
		if _, ok := words2[word]; ok {
			intersection++
		}
	}

	union := len(words1) + len(words2) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(name string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, word := range strings.Fields(name) {
		set[word] = struct{}{}
	}
	return set
}

// hasCommonEntityPattern reports whether both names contain a variant
// from the same pattern cluster.
func hasCommonEntityPattern(name1, name2 string) bool {
	for _, cluster := range entityPatternClusters {
		matches1 := false
		matches2 := false
		for _, variant := range cluster {
			if strings.Contains(name1, variant) {
				matches1 = true
			}
			if strings.Contains(name2, variant) {
				matches2 = true
			}
		}
		if matches1 && matches2 {
			return true
		}
	}
	return false
}
