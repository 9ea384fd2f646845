// Package document turns extracted text into chunked, indexable documents.
// Binary-format extraction (PDF parsing and the like) is the host's job;
// this package starts from text and handles txt, markdown and html files.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/docbot/internal/chunker"
	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
)

// ErrEmptyDocument means the input contained no usable text after cleaning.
// The caller must refuse to index such a document, not silently accept it.
var ErrEmptyDocument = errors.New("no text found in document")

type Loader struct {
	chunkSize int
	overlap   int
}

func NewLoader(cfg *config.RetrievalConfig) *Loader {
	return &Loader{
		chunkSize: cfg.ChunkSize,
		overlap:   cfg.ChunkOverlap,
	}
}

// FromText builds a Document from already-extracted text. The text is
// cleaned, split into overlapping chunks and paired with display stats.
func (l *Loader) FromText(id, raw string) (core.Document, core.DocumentStats, error) {
	cleaned := chunker.Clean(raw)
	if cleaned == "" {
		return core.Document{}, core.DocumentStats{}, fmt.Errorf("%s: %w", id, ErrEmptyDocument)
	}

	pieces := chunker.Split(cleaned, l.chunkSize, l.overlap)

	doc := core.Document{
		ID:     id,
		Text:   cleaned,
		Chunks: make([]core.Chunk, 0, len(pieces)),
	}
	for i, piece := range pieces {
		doc.Chunks = append(doc.Chunks, core.Chunk{
			DocumentID: id,
			Index:      i,
			Text:       piece,
			TextLower:  strings.ToLower(piece),
		})
	}

	stats := core.DocumentStats{
		Filename:   id,
		WordCount:  len(strings.Fields(cleaned)),
		CharCount:  len(cleaned),
		ChunkCount: len(doc.Chunks),
	}
	return doc, stats, nil
}

// LoadFile reads a text, markdown or html file and builds a Document from
// its contents. The document id is the file's base name.
func (l *Loader) LoadFile(path string) (core.Document, core.DocumentStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Document{}, core.DocumentStats{}, fmt.Errorf("read document: %w", err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = html2text.FromString(text, html2text.Options{
			OmitLinks:    true,
			PrettyTables: false,
		})
		if err != nil {
			return core.Document{}, core.DocumentStats{}, fmt.Errorf("convert html: %w", err)
		}
	}

	return l.FromText(filepath.Base(path), text)
}

// LoadAll loads every given path, expanding directories one level deep.
// A directory entry that fails to load is skipped; an explicit path that
// fails is an error.
func (l *Loader) LoadAll(paths []string) ([]core.Document, []core.DocumentStats, error) {
	var docs []core.Document
	var stats []core.DocumentStats

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			doc, st, err := l.LoadFile(path)
			if err != nil {
				return nil, nil, err
			}
			docs = append(docs, doc)
			stats = append(stats, st)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read dir %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !isSupported(entry.Name()) {
				continue
			}
			doc, st, err := l.LoadFile(filepath.Join(path, entry.Name()))
			if err != nil {
				continue // skip unreadable or empty files inside a directory
			}
			docs = append(docs, doc)
			stats = append(stats, st)
		}
	}

	return docs, stats, nil
}

func isSupported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md", ".markdown", ".html", ".htm", ".text":
		return true
	}
	return false
}
