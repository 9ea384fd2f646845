package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/service/chat"
	"github.com/sandevgo/docbot/pkg/log"
)

const defaultSessionID = "cli-local"

type ReadLine struct {
	cfg    *config.AppConfig
	chat   *chat.Chat
	router core.CmdRouter
	rl     *readline.Instance
}

func NewReadLine(chatSvc *chat.Chat, router core.CmdRouter, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		chat:   chatSvc,
		router: router,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("ReadLine chat started. Type 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if out, handled := r.router.Execute(ctx, defaultSessionID, line); handled {
			fmt.Fprintf(r.rl.Stdout(), "%s\n", out)
			continue
		}

		reply, err := r.chat.Answer(ctx, defaultSessionID, line)
		if err != nil {
			logger.Error().Err(err).Msg("chat answer failed")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
			continue
		}

		fmt.Fprintf(r.rl.Stdout(), "%s\n", reply.Text)
		if footer := reply.Footer(r.cfg.Model); footer != "" {
			fmt.Fprintf(r.rl.Stdout(), "\033[38;5;240m%s\033[0m\n", footer)
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
