package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandevgo/docbot/pkg/srv"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		a := newApp(ctx)
		defer srv.ShutdownNow(ctx, a.cleanups)

		question := strings.Join(args, " ")
		reply, err := a.chat.Answer(ctx, "cli-oneshot", question)
		if err != nil {
			return err
		}

		fmt.Println(reply.Text)
		if footer := reply.Footer(a.cfg.Model); footer != "" {
			fmt.Println(footer)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
