package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/index"
)

type SearchCommand struct {
	cfg       *config.RetrievalConfig
	idx       *index.Index
	formatter *ResponseFormatter
}

func NewSearchCommand(cfg *config.RetrievalConfig, idx *index.Index) *SearchCommand {
	return &SearchCommand{
		cfg:       cfg,
		idx:       idx,
		formatter: NewResponseFormatter(),
	}
}

func (c *SearchCommand) Name() string {
	return "search"
}

func (c *SearchCommand) Description() string {
	return "Search loaded documents without asking the model"
}

func (c *SearchCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Usage("/search <query>"), nil
	}

	query := strings.Join(args, " ")
	results := c.idx.Search(query, c.cfg.TopK)
	if len(results) == 0 {
		return "No matching chunks found.", nil
	}

	items := make([]string, 0, len(results))
	for _, r := range results {
		items = append(items, fmt.Sprintf("%.3f  %s#%d  %s", r.Score, r.DocumentID, r.ChunkIndex, snippet(r.Text, 120)))
	}

	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("Top %d results", len(results))),
		c.formatter.List(items),
	), nil
}

func snippet(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
