package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandevgo/docbot/internal/transport/tui"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/sandevgo/docbot/pkg/srv"
)

var searchCmd = &cobra.Command{
	Use:   "search [path...]",
	Short: "Browse document chunks interactively",
	Long:  `Opens a terminal browser over the retrieval index. Extra paths are loaded on top of DOCS_PATHS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		a := newApp(ctx)
		defer srv.ShutdownNow(ctx, a.cleanups)

		if len(args) > 0 {
			docs, stats, err := a.loader.LoadAll(args)
			if err != nil {
				return fmt.Errorf("failed to load documents: %w", err)
			}
			a.library.Add(docs, stats)
			a.idx.Build(a.library.Documents())
		}

		if a.library.Len() == 0 {
			return fmt.Errorf("no documents loaded, pass paths or set DOCS_PATHS")
		}

		model := tui.New(a.idx, a.retrieval.TopK, summaryLine(a.library))
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("search browser failed")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
