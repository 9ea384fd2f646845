package index

import (
	"regexp"
	"strings"
)

// Scorer rates how relevant a chunk of text is to a query, in [0, 1].
// It is a strategy point: the lexical implementation below can be swapped
// for a vector-similarity one without touching the index control flow.
type Scorer interface {
	Score(query, text string) float64
}

// floorScore is returned for degenerate inputs so empty or all-symbol
// queries degrade instead of wiping out every result.
const floorScore = 0.1

var wordRe = regexp.MustCompile(`\b\w+\b`)

// genericMarkers bias broad questions ("what is this document about?")
// toward returning some context rather than none. Substring containment is
// deliberate: it matches the behaviour users already rely on, at the cost
// of the occasional false positive ("whatever" triggers "what").
var genericMarkers = []string{"what", "about", "document", "this", "content", "summary", "main"}

// LexicalScorer is the hybrid keyword heuristic: a weighted sum of Jaccard
// token overlap, query-word coverage, a verbatim-substring bonus and a
// generic-question base. Deterministic, embedding-free.
type LexicalScorer struct{}

func NewLexicalScorer() LexicalScorer {
	return LexicalScorer{}
}

func (LexicalScorer) Score(query, text string) float64 {
	queryLower := strings.ToLower(query)
	textLower := strings.ToLower(text)

	queryWords := tokenSet(queryLower)
	textWords := tokenSet(textLower)

	if len(queryWords) == 0 || len(textWords) == 0 {
		return floorScore
	}

	intersection := 0
	for w := range queryWords {
		if _, ok := textWords[w]; ok {
			intersection++
		}
	}
	union := len(queryWords) + len(textWords) - intersection

	jaccard := float64(intersection) / float64(union)
	wordMatchRatio := float64(intersection) / float64(len(queryWords))

	substringBonus := 0.0
	if strings.Contains(textLower, queryLower) {
		substringBonus = 0.3
	}

	baseScore := 0.0
	for _, marker := range genericMarkers {
		if strings.Contains(queryLower, marker) {
			baseScore = 0.4
			break
		}
	}

	score := baseScore + 0.3*jaccard + 0.3*wordMatchRatio + substringBonus
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

func tokenSet(s string) map[string]struct{} {
	tokens := wordRe.FindAllString(s, -1)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
