package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/docbot/internal/document"
	"github.com/sandevgo/docbot/internal/index"
	"github.com/sandevgo/docbot/internal/service/chat"
	"github.com/sandevgo/docbot/pkg/log"
)

type LoadCommand struct {
	loader    *document.Loader
	library   *document.Library
	idx       *index.Index
	formatter *ResponseFormatter
}

func NewLoadCommand(loader *document.Loader, library *document.Library, idx *index.Index) *LoadCommand {
	return &LoadCommand{
		loader:    loader,
		library:   library,
		idx:       idx,
		formatter: NewResponseFormatter(),
	}
}

func (c *LoadCommand) Name() string {
	return "load"
}

func (c *LoadCommand) Description() string {
	return "Load documents from files or directories"
}

func (c *LoadCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Combine(
			c.formatter.Usage("/load <path> [path...]"),
			c.formatter.Examples([]string{
				"/load report.txt",
				"/load docs/ notes.md",
			}),
		), nil
	}

	docs, stats, err := c.loader.LoadAll(args)
	if err != nil {
		return "", fmt.Errorf("failed to load documents: %w", err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("no supported documents found in: %s", strings.Join(args, ", "))
	}

	c.library.Add(docs, stats)
	c.idx.Build(c.library.Documents())

	log.FromCtx(ctx).Info().Int("documents", len(docs)).Msg("documents loaded")

	items := make([]string, 0, len(stats))
	for _, s := range stats {
		items = append(items, fmt.Sprintf("%s (%d words, %d chunks)", s.Filename, s.WordCount, s.ChunkCount))
	}

	return c.formatter.Combine(
		c.formatter.Success(fmt.Sprintf("Loaded %d document(s)", len(docs))),
		c.formatter.List(items),
		c.formatter.Label("Document type", chat.DetectDocType(docs[0].Text)),
	), nil
}
