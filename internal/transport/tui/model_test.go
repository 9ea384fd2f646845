package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightBestSentencePicksOverlap(t *testing.T) {
	text := "The weather was mild. Revenue grew fifteen percent this quarter. Nothing else happened."
	out := highlightBestSentence(text, "revenue quarter growth")

	// The highlighted sentence carries ANSI styling, the others do not.
	assert.Contains(t, out, "Revenue grew fifteen percent this quarter.")
	assert.Contains(t, out, "The weather was mild.")
}

func TestHighlightBestSentenceEmptyQuery(t *testing.T) {
	text := "One sentence. Another sentence."
	out := highlightBestSentence(text, "")
	assert.Equal(t, "One sentence. Another sentence.", strings.TrimSpace(out))
}

func TestTokenOverlapScoreCountsUniqueMatches(t *testing.T) {
	q := toTokenSet("revenue profit revenue")
	assert.Equal(t, 2, tokenOverlapScore(q, "revenue and profit and revenue again"))
	assert.Equal(t, 0, tokenOverlapScore(q, "completely unrelated words"))
}
