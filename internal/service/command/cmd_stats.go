package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/document"
	"github.com/sandevgo/docbot/internal/index"
	"github.com/sandevgo/docbot/internal/service/chat"
)

type StatsCommand struct {
	appCfg    *config.AppConfig
	library   *document.Library
	idx       *index.Index
	formatter *ResponseFormatter
}

func NewStatsCommand(appCfg *config.AppConfig, library *document.Library, idx *index.Index) *StatsCommand {
	return &StatsCommand{
		appCfg:    appCfg,
		library:   library,
		idx:       idx,
		formatter: NewResponseFormatter(),
	}
}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Show index and document statistics"
}

func (c *StatsCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	st := c.idx.Stats()

	docType := chat.DocTypeGeneral
	if docs := c.library.Documents(); len(docs) > 0 {
		docType = chat.DetectDocType(docs[0].Text)
	}

	sections := []string{
		c.formatter.Info("Index"),
		c.formatter.Label("Status", st.Status),
		c.formatter.Label("Chunks", fmt.Sprintf("%d", st.TotalChunks)),
		c.formatter.Label("Documents", fmt.Sprintf("%d", st.UniqueDocuments)),
		c.formatter.Label("Document type", docType),
		c.formatter.Label("Model", fmt.Sprintf("%s/%s", c.appCfg.Provider, c.appCfg.Model)),
	}

	if stats := c.library.Stats(); len(stats) > 0 {
		items := make([]string, 0, len(stats))
		for _, s := range stats {
			items = append(items, fmt.Sprintf("%s: %d words, %d chars, %d chunks",
				s.Filename, s.WordCount, s.CharCount, s.ChunkCount))
		}
		sections = append(sections, c.formatter.Section("📄", "Documents", c.formatter.List(items)))
	}

	return c.formatter.Combine(sections...), nil
}
