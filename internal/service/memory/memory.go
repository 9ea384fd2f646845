// Package memory keeps the bounded question/answer history for one
// conversation session and renders it into prompt fragments. One session
// owns one Memory; it is never shared across goroutines.
package memory

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
)

const (
	// contextSnippetLen bounds the stored retrieval-context excerpt per turn.
	contextSnippetLen = 200
	// answerExcerptLen bounds the assistant text surfaced into prompts.
	answerExcerptLen = 150
	// renderedTurns is how many recent turns RenderHistory surfaces. Memory
	// may hold more; the prompt only ever sees the tail.
	renderedTurns = 3
	// shortQueryTokens: queries at or under this many words are treated as
	// follow-ups when any history exists.
	shortQueryTokens = 5
)

// followUpIndicators mark continuation phrasing, demonstrative pronouns and
// causal/temporal question words. Substring matching keeps parity with how
// users expect the feature to behave; false positives are accepted.
var followUpIndicators = []string{
	"more about", "tell me more", "elaborate", "expand on", "detail",
	"what about", "how about", "also", "additionally", "furthermore",
	"that", "this", "it", "they", "those", "these", "such",
	"why", "how", "when", "where", "continue", "go on",
}

type Memory struct {
	maxTurns int
	turns    []core.MemoryTurn
	now      func() time.Time
}

func NewMemory(cfg *config.MemoryConfig) *Memory {
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 5
	}
	return &Memory{
		maxTurns: maxTurns,
		now:      time.Now,
	}
}

// Record appends a turn and evicts from the front once the cap is exceeded.
// Oldest turns always go first; the stored context is truncated to a snippet.
func (m *Memory) Record(userText, assistantText, contextText string) {
	snippet := contextText
	if r := []rune(snippet); len(r) > contextSnippetLen {
		snippet = string(r[:contextSnippetLen]) + "..."
	}

	m.turns = append(m.turns, core.MemoryTurn{
		User:      userText,
		Assistant: assistantText,
		Context:   snippet,
		Timestamp: m.now(),
	})

	if len(m.turns) > m.maxTurns {
		m.turns = m.turns[len(m.turns)-m.maxTurns:]
	}
}

// IsFollowUp guesses whether the query continues the previous exchange. A
// heuristic, not a classifier: indicator phrases count regardless of
// history, and any short query counts once history exists.
func (m *Memory) IsFollowUp(query string) bool {
	queryLower := strings.ToLower(query)

	for _, indicator := range followUpIndicators {
		if strings.Contains(queryLower, indicator) {
			return true
		}
	}

	if len(strings.Fields(query)) <= shortQueryTokens && len(m.turns) > 0 {
		return true
	}

	return false
}

// RenderHistory formats the most recent turns as a delimited block for the
// system prompt. Empty memory renders to an empty string.
func (m *Memory) RenderHistory() string {
	if len(m.turns) == 0 {
		return ""
	}

	recent := m.turns
	if len(recent) > renderedTurns {
		recent = recent[len(recent)-renderedTurns:]
	}

	var sb strings.Builder
	sb.WriteString("=== RECENT CONVERSATION HISTORY ===")

	for i, turn := range recent {
		answer := turn.Assistant
		if r := []rune(answer); len(r) > answerExcerptLen {
			answer = string(r[:answerExcerptLen])
		}
		sb.WriteString(fmt.Sprintf("\n\nExchange %d:\n", i+1))
		sb.WriteString("Human: " + turn.User + "\n")
		sb.WriteString("Assistant: " + answer + "...")
		if turn.Context != "" {
			sb.WriteString("\nContext used: " + turn.Context)
		}
	}

	sb.WriteString("\n\n=== END CONVERSATION HISTORY ===\n")
	return sb.String()
}

// Turns returns the stored turns in insertion order.
func (m *Memory) Turns() []core.MemoryTurn {
	return m.turns
}

// Export serializes the full turn list as indented JSON, insertion order
// preserved, for the host to persist or inspect.
func (m *Memory) Export() ([]byte, error) {
	if m.turns == nil {
		return json.MarshalIndent([]core.MemoryTurn{}, "", "  ")
	}
	return json.MarshalIndent(m.turns, "", "  ")
}

func (m *Memory) Clear() {
	m.turns = nil
}

// Stats summarizes memory state for status display.
type Stats struct {
	TotalExchanges      int    `json:"total_exchanges"`
	MemoryLimit         int    `json:"memory_limit"`
	LastExchange        string `json:"last_exchange"`
	ConversationStarted bool   `json:"conversation_started"`
}

func (m *Memory) Stats() Stats {
	last := "None"
	if len(m.turns) > 0 {
		last = m.turns[len(m.turns)-1].Timestamp.Format(time.RFC3339)
	}
	return Stats{
		TotalExchanges:      len(m.turns),
		MemoryLimit:         m.maxTurns,
		LastExchange:        last,
		ConversationStarted: len(m.turns) > 0,
	}
}
