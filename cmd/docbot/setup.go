package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/document"
	"github.com/sandevgo/docbot/internal/index"
	"github.com/sandevgo/docbot/internal/providers/llm"
	"github.com/sandevgo/docbot/internal/service/chat"
	"github.com/sandevgo/docbot/internal/service/command"
	"github.com/sandevgo/docbot/internal/service/memory"
	"github.com/sandevgo/docbot/internal/storage/sqlite"
	"github.com/sandevgo/docbot/internal/transport/cli"
	"github.com/sandevgo/docbot/internal/transport/telegram"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/sandevgo/docbot/pkg/srv"
)

// app bundles the wired core so subcommands can reuse it without
// starting transports.
type app struct {
	cfg       *config.AppConfig
	retrieval *config.RetrievalConfig
	library   *document.Library
	loader    *document.Loader
	idx       *index.Index
	chat      *chat.Chat
	router    core.CmdRouter
	cleanups  []srv.Service
}

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	a := newApp(ctx)
	services := append([]srv.Service{}, a.cleanups...)

	transports, err := initTransports(ctx, a)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	retrievalCfg := config.NewRetrievalConfig(ctx)
	memoryCfg := config.NewMemoryConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	transcripts := sqlite.NewTranscripts(db)

	// 3. AI Provider
	aiProvider, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Retrieval core
	loader := document.NewLoader(retrievalCfg)
	library := document.NewLibrary()
	idx := index.New(nil)
	mem := memory.NewMemory(memoryCfg)

	// 5. Chat service
	chatSvc := chat.New(appCfg, retrievalCfg, aiProvider, idx, mem, transcripts)

	// 6. Startup documents
	if len(appCfg.DocsPaths) > 0 {
		docs, stats, err := loader.LoadAll(appCfg.DocsPaths)
		if err != nil {
			logger.Fatal().Err(err).Strs("paths", appCfg.DocsPaths).Msg("failed to load documents")
		}
		library.Add(docs, stats)
		idx.Build(library.Documents())
		logger.Info().
			Int("documents", len(docs)).
			Int("chunks", idx.Stats().TotalChunks).
			Msg("documents indexed")
	}

	// 7. Commands
	router := command.New(command.NewCommands(appCfg, retrievalCfg, loader, library, idx, chatSvc))

	return &app{
		cfg:       appCfg,
		retrieval: retrievalCfg,
		library:   library,
		loader:    loader,
		idx:       idx,
		chat:      chatSvc,
		router:    router,
		cleanups:  []srv.Service{srv.NewCleanup(db.Close)},
	}
}

func initTransports(ctx context.Context, a *app) ([]srv.Service, error) {
	var services []srv.Service

	if a.cfg.EnableCLI {
		rl, err := cli.NewReadLine(a.chat, a.router, a.cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	// Telegram Bot
	if a.cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, a.cfg, a.chat, a.router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}

// summaryLine names the loaded documents for the search browser header.
func summaryLine(library *document.Library) string {
	stats := library.Stats()
	if len(stats) == 0 {
		return "No documents loaded. Set DOCS_PATHS or pass paths as arguments."
	}
	names := make([]string, 0, len(stats))
	for _, s := range stats {
		names = append(names, fmt.Sprintf("%s (%d chunks)", s.Filename, s.ChunkCount))
	}
	return strings.Join(names, ", ")
}
