package telegram

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/service/chat"
	"github.com/sandevgo/docbot/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	appCfg  *config.AppConfig
	chat    *chat.Chat
	router  core.CmdRouter
	sender  *sender
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	appCfg *config.AppConfig,
	chatSvc *chat.Chat,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		cfg:     cfg,
		appCfg:  appCfg,
		chat:    chatSvc,
		router:  router,
		sender:  newSender(b),
		ownerID: cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	// Create a context for this request
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sessionID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	if out, handled := b.router.Execute(ctx, sessionID, c.Text()); handled {
		return b.sender.sendMarkdown(ctx, c.Chat(), out, false)
	}

	reply, err := b.chat.Answer(ctx, sessionID, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("chat answer failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	text := reply.Text
	if footer := reply.Footer(b.appCfg.Model); footer != "" {
		text += "\n\n_" + footer + "_"
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), text, false)
}
