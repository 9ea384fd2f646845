package index

import (
	"strings"
	"testing"

	"github.com/sandevgo/docbot/internal/core"
)

func makeDoc(id string, chunks ...string) core.Document {
	doc := core.Document{ID: id}
	for i, c := range chunks {
		doc.Chunks = append(doc.Chunks, core.Chunk{
			DocumentID: id,
			Index:      i,
			Text:       c,
			TextLower:  strings.ToLower(c),
		})
	}
	return doc
}

func TestLexicalScorerRange(t *testing.T) {
	scorer := NewLexicalScorer()
	pairs := [][2]string{
		{"revenue growth", "Revenue increased significantly this quarter."},
		{"what is this about", "anything at all"},
		{"", "some text"},
		{"???", "some text"},
		{"identical words here", "identical words here"},
		{"a b c d e f", "z y x"},
	}
	for _, p := range pairs {
		score := scorer.Score(p[0], p[1])
		if score < 0.0 || score > 1.0 {
			t.Errorf("Score(%q, %q) = %f, outside [0,1]", p[0], p[1], score)
		}
	}
}

func TestLexicalScorerIdenticalAndUnrelated(t *testing.T) {
	scorer := NewLexicalScorer()

	s := "financial report quarterly earnings revenue profit"
	if got := scorer.Score(s, s); got < 0.8 {
		t.Errorf("identical strings scored %f, want > 0.8", got)
	}

	unrelated := scorer.Score(
		"financial report quarterly earnings revenue profit",
		"weather forecast rain temperature humidity climate",
	)
	if unrelated >= 0.3 {
		t.Errorf("unrelated strings scored %f, want < 0.3", unrelated)
	}
}

func TestLexicalScorerDegenerateQueryFloor(t *testing.T) {
	scorer := NewLexicalScorer()
	for _, q := range []string{"", "???", "   "} {
		if got := scorer.Score(q, "any indexed chunk text"); got != floorScore {
			t.Errorf("Score(%q) = %f, want floor %f", q, got, floorScore)
		}
	}
}

func TestLexicalScorerGenericQuestionBase(t *testing.T) {
	scorer := NewLexicalScorer()
	generic := scorer.Score("what is this document about", "pelican migration routes")
	if generic < 0.4 {
		t.Errorf("generic question scored %f, want >= 0.4 base", generic)
	}
}

func TestSearchOrderingAndFloor(t *testing.T) {
	ix := New(nil)
	ix.Build([]core.Document{makeDoc("report.pdf",
		"Revenue increased significantly this quarter.",
		"The weather was nice today.",
		"Quarterly revenue growth exceeded expectations with 25% increase.",
		"Dogs and cats are popular pets.",
	)})

	results := ix.Search("revenue financial quarter", 10)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted: %f after %f", results[i].Score, results[i-1].Score)
		}
	}
	for _, r := range results {
		if r.Score <= scoreFloor {
			t.Errorf("result below floor leaked through: %f", r.Score)
		}
	}

	// The two revenue chunks must outrank weather and pets.
	top := map[int]bool{results[0].ChunkIndex: true}
	if len(results) > 1 {
		top[results[1].ChunkIndex] = true
	}
	if !top[0] || !top[2] {
		t.Errorf("expected chunks 0 and 2 on top, got %+v", results)
	}
}

func TestSearchStableTieBreak(t *testing.T) {
	ix := New(nil)
	ix.Build([]core.Document{makeDoc("doc.txt",
		"alpha beta gamma",
		"alpha beta gamma",
		"alpha beta gamma",
	)})

	results := ix.Search("alpha beta", 3)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.ChunkIndex != i {
			t.Errorf("tie at rank %d resolved to chunk %d, want insertion order", i, r.ChunkIndex)
		}
	}
}

func TestSearchLimitsToK(t *testing.T) {
	ix := New(nil)
	ix.Build([]core.Document{makeDoc("doc.txt",
		"revenue one", "revenue two", "revenue three", "revenue four",
	)})
	if got := len(ix.Search("revenue", 2)); got != 2 {
		t.Errorf("expected 2 results, got %d", got)
	}
}

func TestUnbuiltIndex(t *testing.T) {
	ix := New(nil)

	if results := ix.Search("anything", 5); results != nil {
		t.Errorf("expected nil results from unbuilt index, got %v", results)
	}
	if got := ix.RenderContext("anything", 3); got != NoContextSentinel {
		t.Errorf("expected sentinel, got %q", got)
	}
}

func TestBuildReplacesWholesale(t *testing.T) {
	ix := New(nil)
	ix.Build([]core.Document{makeDoc("old.txt", "legacy content about pelicans")})
	ix.Build([]core.Document{makeDoc("new.txt", "fresh content about revenue")})

	results := ix.Search("pelicans", 5)
	for _, r := range results {
		if r.DocumentID == "old.txt" {
			t.Errorf("old document leaked into rebuilt index: %+v", r)
		}
	}
}

func TestBuildEmptyInput(t *testing.T) {
	ix := New(nil)
	ix.Build(nil)
	if results := ix.Search("query", 5); results != nil {
		t.Errorf("expected empty results, got %v", results)
	}
}

func TestRenderContextFormat(t *testing.T) {
	ix := New(nil)
	ix.Build([]core.Document{makeDoc("report.pdf", "Quarterly revenue grew strongly.")})

	got := ix.RenderContext("quarterly revenue", 3)
	if !strings.Contains(got, "[From report.pdf - Relevance: ") {
		t.Errorf("missing source label in context: %q", got)
	}
	if !strings.Contains(got, "Quarterly revenue grew strongly.") {
		t.Errorf("missing chunk text in context: %q", got)
	}
}

func TestRenderContextSeparator(t *testing.T) {
	ix := New(nil)
	ix.Build([]core.Document{makeDoc("report.pdf",
		"Revenue grew in the first quarter.",
		"Revenue grew in the second quarter.",
	)})

	got := ix.RenderContext("revenue quarter", 2)
	if strings.Count(got, "\n---\n") != 1 {
		t.Errorf("expected one separator between two blocks, got %q", got)
	}
}

func TestStats(t *testing.T) {
	ix := New(nil)
	if ix.Stats().Status != "No index built" {
		t.Errorf("unexpected empty stats: %+v", ix.Stats())
	}

	ix.Build([]core.Document{
		makeDoc("a.txt", "one", "two"),
		makeDoc("b.txt", "three"),
	})
	stats := ix.Stats()
	if stats.TotalChunks != 3 || stats.UniqueDocuments != 2 || stats.Status != "Index ready" {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
