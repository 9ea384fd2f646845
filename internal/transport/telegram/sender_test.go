package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitHTMLShortText(t *testing.T) {
	chunks := splitHTML("hello", 100)
	assert.Equal(t, []string{"hello"}, chunks)
}

func TestSplitHTMLPrefersNewlines(t *testing.T) {
	text := strings.Repeat("a", 60) + "\n" + strings.Repeat("b", 60)
	chunks := splitHTML(text, 100)

	assert.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 60), chunks[0])
	assert.Equal(t, strings.Repeat("b", 60), chunks[1])
}

func TestSplitHTMLHardCut(t *testing.T) {
	text := strings.Repeat("x", 250)
	chunks := splitHTML(text, 100)

	assert.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 100)
	}
}
