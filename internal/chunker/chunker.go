// Package chunker normalizes extracted document text and splits it into
// overlapping, sentence-boundary-aware chunks for retrieval.
package chunker

import (
	"regexp"
	"strings"
)

// snapWindow is how far back from a tentative chunk end we look for a
// sentence terminator before giving up and cutting mid-sentence.
const snapWindow = 100

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// \p{L}\p{N} rather than \w: accented, Cyrillic and CJK letters must
	// survive cleaning.
	charsetRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:\-()"'/]`)
	dotsRe       = regexp.MustCompile(`\.{3,}`)
	dashesRe     = regexp.MustCompile(`-{3,}`)
)

// Clean strips characters outside the word/punctuation whitelist, collapses
// whitespace runs to single spaces, squeezes long ellipsis and dash runs, and
// trims. Stripping happens before the whitespace collapse so removed
// characters cannot leave double spaces behind, which keeps Clean idempotent:
// Clean(Clean(s)) == Clean(s).
func Clean(text string) string {
	text = charsetRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = dotsRe.ReplaceAllString(text, "...")
	text = dashesRe.ReplaceAllString(text, "---")
	return strings.TrimSpace(text)
}

// Split cuts text into chunks of at most chunkSize characters. When the cut
// would land mid-sentence, the boundary snaps back to the closest sentence
// terminator within the last snapWindow characters. Consecutive chunks share
// up to overlap characters of raw text.
//
// Empty input yields nil. Text that fits in one chunk is returned unchanged.
// An overlap >= the window advance is clamped so the window always moves
// forward; the chunks stay valid, just with less sharing than requested.
func Split(text string, chunkSize, overlap int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0

	for start < len(text) {
		end := start + chunkSize

		if end < len(text) {
			from := end - snapWindow
			if from < start {
				from = start
			}
			if idx := lastTerminator(text, from, end); idx > start {
				end = idx + 1
			}
		}

		sliceEnd := end
		if sliceEnd > len(text) {
			sliceEnd = len(text)
		}
		if chunk := strings.TrimSpace(text[start:sliceEnd]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		// Advance with overlap, clamped so start strictly increases.
		effective := overlap
		if advance := end - start; effective >= advance {
			effective = advance - 1
		}
		start = end - effective
	}

	return chunks
}

// lastTerminator returns the absolute index of the last '.', '!' or '?'
// in text[from:to], or -1.
func lastTerminator(text string, from, to int) int {
	for i := to - 1; i >= from; i-- {
		switch text[i] {
		case '.', '!', '?':
			return i
		}
	}
	return -1
}
