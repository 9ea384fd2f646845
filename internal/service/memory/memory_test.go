package memory

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
)

func newTestMemory(maxTurns int) *Memory {
	m := NewMemory(&config.MemoryConfig{MaxTurns: maxTurns})
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	m.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	return m
}

func TestRecordFIFOEviction(t *testing.T) {
	m := newTestMemory(5)

	for i := 1; i <= 10; i++ {
		m.Record(fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i), "")
	}

	turns := m.Turns()
	if len(turns) != 5 {
		t.Fatalf("expected 5 surviving turns, got %d", len(turns))
	}
	for i, turn := range turns {
		want := fmt.Sprintf("question %d", i+6)
		if turn.User != want {
			t.Errorf("turn %d: got %q, want %q", i, turn.User, want)
		}
	}
}

func TestRecordTruncatesContext(t *testing.T) {
	m := newTestMemory(5)

	long := strings.Repeat("c", 300)
	m.Record("q", "a", long)

	got := m.Turns()[0].Context
	if len(got) != 203 || !strings.HasSuffix(got, "...") {
		t.Errorf("expected 200-char snippet + ellipsis, got %d chars", len(got))
	}

	m.Record("q2", "a2", "short context")
	if got := m.Turns()[1].Context; got != "short context" {
		t.Errorf("short context should be stored verbatim, got %q", got)
	}
}

func TestRecordTruncatesContextOnRuneBoundary(t *testing.T) {
	m := newTestMemory(5)

	m.Record("q", "a", strings.Repeat("ё", 300))

	got := m.Turns()[0].Context
	if !utf8.ValidString(got) {
		t.Errorf("snippet is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 203 {
		t.Errorf("expected 200 runes + ellipsis, got %d runes", n)
	}
}

func TestIsFollowUp(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		preload  int
		expected bool
	}{
		{"indicator phrase with history", "Tell me more about that", 1, true},
		{"indicator phrase without history", "Tell me more about that", 0, true},
		{"fresh long question, empty memory", "What is the company's business strategy?", 0, false},
		{"short query with history", "Main figures?", 1, true},
		{"short query without history", "Main figures?", 0, false},
		{"demonstrative pronoun", "Explain those numbers in the second section please", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMemory(5)
			for i := 0; i < tt.preload; i++ {
				m.Record("earlier question", "earlier answer", "")
			}
			if got := m.IsFollowUp(tt.query); got != tt.expected {
				t.Errorf("IsFollowUp(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	m := newTestMemory(5)
	if got := m.RenderHistory(); got != "" {
		t.Errorf("expected empty string for empty memory, got %q", got)
	}
}

func TestRenderHistoryLastThree(t *testing.T) {
	m := newTestMemory(5)
	for i := 1; i <= 5; i++ {
		m.Record(fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i), fmt.Sprintf("context %d", i))
	}

	got := m.RenderHistory()

	if !strings.Contains(got, "=== RECENT CONVERSATION HISTORY ===") ||
		!strings.Contains(got, "=== END CONVERSATION HISTORY ===") {
		t.Errorf("missing delimiters: %q", got)
	}
	for i := 3; i <= 5; i++ {
		if !strings.Contains(got, fmt.Sprintf("question %d", i)) {
			t.Errorf("missing recent turn %d", i)
		}
	}
	for i := 1; i <= 2; i++ {
		if strings.Contains(got, fmt.Sprintf("question %d", i)) {
			t.Errorf("older turn %d should not be rendered", i)
		}
	}
	if !strings.Contains(got, "Context used: context 5") {
		t.Errorf("missing context snippet: %q", got)
	}
}

func TestRenderHistoryTruncatesAnswer(t *testing.T) {
	m := newTestMemory(5)
	m.Record("q", strings.Repeat("a", 400), "")

	got := m.RenderHistory()
	if strings.Contains(got, strings.Repeat("a", 160)) {
		t.Errorf("assistant text not truncated: %q", got)
	}
	if !strings.Contains(got, strings.Repeat("a", 150)+"...") {
		t.Errorf("expected 150-char excerpt with ellipsis")
	}
}

func TestRenderHistoryTruncatesAnswerOnRuneBoundary(t *testing.T) {
	m := newTestMemory(5)
	m.Record("q", strings.Repeat("文", 400), "")

	got := m.RenderHistory()
	if !utf8.ValidString(got) {
		t.Errorf("rendered history is not valid UTF-8: %q", got)
	}
	if !strings.Contains(got, strings.Repeat("文", 150)+"...") {
		t.Errorf("expected 150-rune excerpt with ellipsis")
	}
	if strings.Contains(got, strings.Repeat("文", 151)) {
		t.Errorf("assistant text not truncated at 150 runes")
	}
}

func TestExportPreservesOrder(t *testing.T) {
	m := newTestMemory(5)
	m.Record("first", "one", "ctx")
	m.Record("second", "two", "")

	data, err := m.Export()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var turns []core.MemoryTurn
	if err := json.Unmarshal(data, &turns); err != nil {
		t.Fatalf("export not valid JSON: %v", err)
	}
	if len(turns) != 2 || turns[0].User != "first" || turns[1].User != "second" {
		t.Errorf("unexpected export contents: %+v", turns)
	}
	if turns[0].Timestamp.IsZero() {
		t.Error("timestamps not preserved in export")
	}
}

func TestClear(t *testing.T) {
	m := newTestMemory(5)
	m.Record("q", "a", "")
	m.Clear()

	if len(m.Turns()) != 0 {
		t.Error("expected no turns after clear")
	}
	if m.RenderHistory() != "" {
		t.Error("expected empty history after clear")
	}
	if m.Stats().ConversationStarted {
		t.Error("stats should report no conversation after clear")
	}
}

func TestStats(t *testing.T) {
	m := newTestMemory(5)
	if s := m.Stats(); s.LastExchange != "None" || s.TotalExchanges != 0 || s.MemoryLimit != 5 {
		t.Errorf("unexpected empty stats: %+v", s)
	}

	m.Record("q", "a", "")
	s := m.Stats()
	if s.TotalExchanges != 1 || !s.ConversationStarted || s.LastExchange == "None" {
		t.Errorf("unexpected stats: %+v", s)
	}
}
