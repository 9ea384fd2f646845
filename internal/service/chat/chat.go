package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/index"
	"github.com/sandevgo/docbot/internal/service/memory"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/sandevgo/docbot/pkg/retry"
)

const (
	noContextReply = "I couldn't find anything in the loaded documents related to your question. Try rephrasing it, or load a document that covers this topic with /load."
	failureReply   = "I'm sorry, I wasn't able to reach the language model just now. Please try again in a moment."
)

// Reply carries the answer text plus the accounting the transports
// render in their footers.
type Reply struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	EstimatedCost    float64
	ContextUsed      bool
	Degraded         bool
}

type Chat struct {
	appCfg      *config.AppConfig
	retrieval   *config.RetrievalConfig
	ai          core.AIProvider
	idx         *index.Index
	mem         *memory.Memory
	transcripts core.TranscriptRepository
	retrier     *retry.Retrier
	counter     *TokenCounter
}

func New(
	appCfg *config.AppConfig,
	retrievalCfg *config.RetrievalConfig,
	ai core.AIProvider,
	idx *index.Index,
	mem *memory.Memory,
	transcripts core.TranscriptRepository,
) *Chat {
	counter, err := NewTokenCounter()
	if err != nil {
		// Token accounting is best-effort, the footer just shows zeros.
		counter = nil
	}
	return &Chat{
		appCfg:      appCfg,
		retrieval:   retrievalCfg,
		ai:          ai,
		idx:         idx,
		mem:         mem,
		transcripts: transcripts,
		retrier:     retry.NewDefaultRetrier(),
		counter:     counter,
	}
}

func (c *Chat) Memory() *memory.Memory {
	return c.mem
}

// Answer runs one question through retrieval, prompting and generation.
func (c *Chat) Answer(ctx context.Context, sessionID, query string) (Reply, error) {
	logger := log.FromCtx(ctx)

	contextText := c.idx.RenderContext(query, c.retrieval.MaxContextChunks)
	if contextText == index.NoContextSentinel {
		// Not recorded: a miss is not an exchange, and remembering it
		// would make every following short query look like a follow-up.
		return Reply{Text: noContextReply}, nil
	}

	docType := DetectDocType(contextText)
	followUp := c.mem.IsFollowUp(query)
	system := BuildSystemPrompt(docType, contextText, c.mem.RenderHistory(), followUp)

	history := []core.Message{
		{Role: core.RoleSystem, Content: system},
		{Role: core.RoleUser, Content: query},
	}

	promptTokens := c.counter.Count(system) + c.counter.Count(query)

	var response core.Message
	err := c.retrier.Do(ctx, func() error {
		var chatErr error
		response, chatErr = c.ai.Chat(ctx, history)
		return chatErr
	})
	if err != nil {
		logger.Error().Err(err).Msg("generation failed after retries")
		c.record(ctx, sessionID, query, failureReply, contextText)
		return Reply{Text: failureReply, ContextUsed: true, Degraded: true}, nil
	}

	completionTokens := c.counter.Count(response.Content)
	cost := EstimateCost(c.appCfg.Model, promptTokens, completionTokens)

	logger.Debug().
		Int("prompt_tokens", promptTokens).
		Int("completion_tokens", completionTokens).
		Float64("estimated_cost", cost).
		Msg("answer generated")

	c.record(ctx, sessionID, query, response.Content, contextText)

	return Reply{
		Text:             response.Content,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		EstimatedCost:    cost,
		ContextUsed:      true,
	}, nil
}

func (c *Chat) record(ctx context.Context, sessionID, query, answer, contextText string) {
	c.mem.Record(query, answer, contextText)

	if c.transcripts == nil {
		return
	}
	turn := core.MemoryTurn{
		User:      query,
		Assistant: answer,
		Context:   contextText,
		Timestamp: time.Now(),
	}
	if err := c.transcripts.AppendTurn(ctx, sessionID, turn); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to persist transcript turn")
	}
}

// Footer renders the accounting line transports append to answers.
func (r Reply) Footer(model string) string {
	if r.Degraded || r.PromptTokens == 0 && r.CompletionTokens == 0 {
		return ""
	}
	return fmt.Sprintf("%s | %d in / %d out tokens | ~$%.4f",
		model, r.PromptTokens, r.CompletionTokens, r.EstimatedCost)
}
