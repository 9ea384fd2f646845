package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/docbot/internal/service/chat"
)

type MemoryCommand struct {
	chat      *chat.Chat
	formatter *ResponseFormatter
}

func NewMemoryCommand(chatSvc *chat.Chat) *MemoryCommand {
	return &MemoryCommand{
		chat:      chatSvc,
		formatter: NewResponseFormatter(),
	}
}

func (c *MemoryCommand) Name() string {
	return "memory"
}

func (c *MemoryCommand) Description() string {
	return "Show conversation memory statistics"
}

func (c *MemoryCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	st := c.chat.Memory().Stats()

	return c.formatter.Combine(
		c.formatter.Info("Conversation Memory"),
		c.formatter.Label("Exchanges", fmt.Sprintf("%d", st.TotalExchanges)),
		c.formatter.Label("Limit", fmt.Sprintf("%d", st.MemoryLimit)),
		c.formatter.Label("Last exchange", st.LastExchange),
		c.formatter.Label("Started", fmt.Sprintf("%t", st.ConversationStarted)),
	), nil
}
