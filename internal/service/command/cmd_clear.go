package command

import (
	"context"

	"github.com/sandevgo/docbot/internal/service/chat"
)

type ClearCommand struct {
	chat      *chat.Chat
	formatter *ResponseFormatter
}

func NewClearCommand(chatSvc *chat.Chat) *ClearCommand {
	return &ClearCommand{
		chat:      chatSvc,
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Clear conversation memory"
}

func (c *ClearCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	c.chat.Memory().Clear()
	return c.formatter.Success("Conversation memory cleared"), nil
}
