package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/service/chat"
)

type ExportCommand struct {
	appCfg    *config.AppConfig
	chat      *chat.Chat
	formatter *ResponseFormatter
}

func NewExportCommand(appCfg *config.AppConfig, chatSvc *chat.Chat) *ExportCommand {
	return &ExportCommand{
		appCfg:    appCfg,
		chat:      chatSvc,
		formatter: NewResponseFormatter(),
	}
}

func (c *ExportCommand) Name() string {
	return "export"
}

func (c *ExportCommand) Description() string {
	return "Export conversation memory to a JSON file"
}

func (c *ExportCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	data, err := c.chat.Memory().Export()
	if err != nil {
		return "", fmt.Errorf("failed to export memory: %w", err)
	}

	if err := os.MkdirAll(c.appCfg.RuntimePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("conversation_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(c.appCfg.RuntimePath, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	return c.formatter.Success(fmt.Sprintf("Conversation exported to `%s`", path)), nil
}
