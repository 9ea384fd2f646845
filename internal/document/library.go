package document

import (
	"sync"

	"github.com/sandevgo/docbot/internal/core"
)

// Library tracks the documents currently loaded into the session.
type Library struct {
	mu    sync.RWMutex
	docs  []core.Document
	stats []core.DocumentStats
}

func NewLibrary() *Library {
	return &Library{}
}

func (l *Library) Add(docs []core.Document, stats []core.DocumentStats) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.docs = append(l.docs, docs...)
	l.stats = append(l.stats, stats...)
}

func (l *Library) Documents() []core.Document {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]core.Document, len(l.docs))
	copy(out, l.docs)
	return out
}

func (l *Library) Stats() []core.DocumentStats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]core.DocumentStats, len(l.stats))
	copy(out, l.stats)
	return out
}

func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.docs)
}
