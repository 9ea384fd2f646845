package command

import (
	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/document"
	"github.com/sandevgo/docbot/internal/index"
	"github.com/sandevgo/docbot/internal/service/chat"
)

func NewCommands(
	appCfg *config.AppConfig,
	retrievalCfg *config.RetrievalConfig,
	loader *document.Loader,
	library *document.Library,
	idx *index.Index,
	chatSvc *chat.Chat,
) []core.Command {
	return []core.Command{
		NewLoadCommand(loader, library, idx),
		NewStatsCommand(appCfg, library, idx),
		NewSearchCommand(retrievalCfg, idx),
		NewMemoryCommand(chatSvc),
		NewExportCommand(appCfg, chatSvc),
		NewClearCommand(chatSvc),
	}
}
