// Package index holds the lexical retrieval index: every chunk of every
// loaded document, scored and ranked against free-text queries.
package index

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/docbot/internal/core"
)

// NoContextSentinel is returned by RenderContext when nothing relevant was
// found. Callers treat it as a signal to skip the generation call.
const NoContextSentinel = "No relevant context found in the uploaded documents. " +
	"The document may not contain information related to your query."

// scoreFloor filters near-zero matches out of search results.
const scoreFloor = 0.01

// Index scores and ranks chunks against queries. Build replaces the whole
// entry set atomically; entries are never mutated individually. The index
// is owned by a single session and is not safe for concurrent mutation.
type Index struct {
	scorer  Scorer
	entries []core.Chunk
	docs    int
}

func New(scorer Scorer) *Index {
	if scorer == nil {
		scorer = NewLexicalScorer()
	}
	return &Index{scorer: scorer}
}

// Build flattens all chunks of all documents into one ordered collection,
// replacing any prior index. Empty input yields an empty, queryable index.
func (ix *Index) Build(docs []core.Document) {
	entries := make([]core.Chunk, 0)
	for _, doc := range docs {
		entries = append(entries, doc.Chunks...)
	}
	ix.entries = entries
	ix.docs = len(docs)
}

// Search scores every indexed chunk against the query and returns up to k
// results sorted by descending score, ties kept in insertion order. Results
// at or below the relevance floor are dropped. An unbuilt or empty index
// returns nil, never an error.
func (ix *Index) Search(query string, k int) []core.SearchResult {
	if len(ix.entries) == 0 || k <= 0 {
		return nil
	}

	scored := make([]core.SearchResult, 0, len(ix.entries))
	for _, entry := range ix.entries {
		scored = append(scored, core.SearchResult{
			Text:       entry.Text,
			DocumentID: entry.DocumentID,
			ChunkIndex: entry.Index,
			Score:      ix.scorer.Score(query, entry.TextLower),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < len(scored) {
		scored = scored[:k]
	}

	results := make([]core.SearchResult, 0, len(scored))
	for _, r := range scored {
		if r.Score > scoreFloor {
			results = append(results, r)
		}
	}
	if len(results) == 0 {
		return nil
	}
	return results
}

// RenderContext formats the top maxChunks search hits as labeled blocks for
// prompt assembly, or the sentinel when nothing clears the floor.
func (ix *Index) RenderContext(query string, maxChunks int) string {
	results := ix.Search(query, maxChunks)
	if len(results) == 0 {
		return NoContextSentinel
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, fmt.Sprintf("[From %s - Relevance: %.3f]\n%s\n", r.DocumentID, r.Score, r.Text))
	}
	return strings.Join(parts, "\n---\n")
}

// Stats summarizes the current index for status display.
type Stats struct {
	Status          string `json:"status"`
	TotalChunks     int    `json:"total_chunks"`
	UniqueDocuments int    `json:"unique_documents"`
}

func (ix *Index) Stats() Stats {
	if len(ix.entries) == 0 {
		return Stats{Status: "No index built"}
	}
	unique := make(map[string]struct{})
	for _, e := range ix.entries {
		unique[e.DocumentID] = struct{}{}
	}
	return Stats{
		Status:          "Index ready",
		TotalChunks:     len(ix.entries),
		UniqueDocuments: len(unique),
	}
}
