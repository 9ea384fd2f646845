package core

import "time"

const (
	DocBotName          = "DocBot"
	DocBotUserAgent     = "DocBot-Agent/0.1"
	DocBotRepositoryURL = "https://github.com/sandevgo/docbot"
	DocBotVersion       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Document is one uploaded document after cleaning and chunking.
// Immutable once created; a new upload replaces it wholesale.
type Document struct {
	ID     string
	Text   string
	Chunks []Chunk
}

// Chunk is the retrieval unit: a bounded, possibly overlapping substring of
// a document. TextLower is the search key, Text keeps original case for display.
type Chunk struct {
	DocumentID string
	Index      int
	Text       string
	TextLower  string
}

// DocumentStats is the status-display summary handed to the host surface.
type DocumentStats struct {
	Filename   string `json:"filename"`
	WordCount  int    `json:"word_count"`
	CharCount  int    `json:"char_count"`
	ChunkCount int    `json:"chunk_count"`
}

type SearchResult struct {
	Text       string
	DocumentID string
	ChunkIndex int
	Score      float64
}

// MemoryTurn is one recorded question/answer exchange. Context holds a
// truncated snippet of the retrieval context that produced the answer.
type MemoryTurn struct {
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	Context   string    `json:"context,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
