package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/index"
	"github.com/sandevgo/docbot/internal/service/memory"
)

type fakeProvider struct {
	calls   int
	last    []core.Message
	reply   string
	failure error
}

func (f *fakeProvider) Chat(_ context.Context, history []core.Message) (core.Message, error) {
	f.calls++
	f.last = history
	if f.failure != nil {
		return core.Message{}, f.failure
	}
	return core.Message{Role: core.RoleAssistant, Content: f.reply}, nil
}

func newTestChat(t *testing.T, provider core.AIProvider, docs ...core.Document) *Chat {
	t.Helper()
	idx := index.New(nil)
	if len(docs) > 0 {
		idx.Build(docs)
	}
	mem := memory.NewMemory(&config.MemoryConfig{MaxTurns: 5})
	appCfg := &config.AppConfig{Model: "gpt-3.5-turbo"}
	retrievalCfg := &config.RetrievalConfig{ChunkSize: 1000, ChunkOverlap: 200, TopK: 5, MaxContextChunks: 3}
	return New(appCfg, retrievalCfg, provider, idx, mem, nil)
}

func financeDoc() core.Document {
	text := "Quarterly revenue grew 15 percent while profit margins held steady across all regions."
	return core.Document{
		ID:   "report.txt",
		Text: text,
		Chunks: []core.Chunk{
			{DocumentID: "report.txt", Index: 0, Text: text, TextLower: strings.ToLower(text)},
		},
	}
}

func TestAnswerWithoutContextSkipsBackend(t *testing.T) {
	provider := &fakeProvider{reply: "should not be used"}
	c := newTestChat(t, provider)

	reply, err := c.Answer(context.Background(), "s1", "what is the revenue?")
	require.NoError(t, err)

	assert.Equal(t, noContextReply, reply.Text)
	assert.False(t, reply.ContextUsed)
	assert.Zero(t, provider.calls)

	// A miss is not an exchange: nothing is remembered, so a later short
	// query does not read as a follow-up.
	assert.Empty(t, c.Memory().Turns())
	assert.False(t, c.Memory().IsFollowUp("company strategy overview details maybe six"))
}

func TestAnswerUsesRetrievedContext(t *testing.T) {
	provider := &fakeProvider{reply: "Revenue grew 15 percent."}
	c := newTestChat(t, provider, financeDoc())

	reply, err := c.Answer(context.Background(), "s1", "quarterly revenue profit")
	require.NoError(t, err)

	assert.Equal(t, "Revenue grew 15 percent.", reply.Text)
	assert.True(t, reply.ContextUsed)
	assert.Equal(t, 1, provider.calls)

	require.Len(t, provider.last, 2)
	assert.Equal(t, core.RoleSystem, provider.last[0].Role)
	assert.Contains(t, provider.last[0].Content, "[From report.txt")
	// The retrieved context mentions revenue and profit, so the system
	// prompt takes the business register.
	assert.Contains(t, provider.last[0].Content, "business report")
	assert.Equal(t, "quarterly revenue profit", provider.last[1].Content)

	turns := c.Memory().Turns()
	require.Len(t, turns, 1)
	assert.Contains(t, turns[0].Context, "report.txt")
}

func TestAnswerDegradesOnBackendFailure(t *testing.T) {
	provider := &fakeProvider{failure: errors.New("boom")}
	c := newTestChat(t, provider, financeDoc())

	reply, err := c.Answer(context.Background(), "s1", "quarterly revenue profit")
	require.NoError(t, err)

	assert.Equal(t, failureReply, reply.Text)
	assert.True(t, reply.Degraded)
	assert.Greater(t, provider.calls, 1)
	require.Len(t, c.Memory().Turns(), 1)
	assert.Equal(t, failureReply, c.Memory().Turns()[0].Assistant)
}

func TestBuildSystemPromptFollowUpDirective(t *testing.T) {
	withFlag := BuildSystemPrompt(DocTypeGeneral, "some context", "", true)
	withoutFlag := BuildSystemPrompt(DocTypeGeneral, "some context", "", false)

	assert.Contains(t, withFlag, "follow-up")
	assert.NotContains(t, withoutFlag, "follow-up")
}

func TestBuildSystemPromptIncludesHistory(t *testing.T) {
	prompt := BuildSystemPrompt(DocTypeBusiness, "ctx", "=== RECENT CONVERSATION HISTORY ===\nExchange 1:\n=== END CONVERSATION HISTORY ===", false)
	assert.Contains(t, prompt, "RECENT CONVERSATION HISTORY")
	assert.Contains(t, prompt, "business report")
}

func TestDetectDocType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "research paper",
			text: "Abstract. We propose a new approach to measuring attention.",
			want: DocTypeResearch,
		},
		{
			name: "business report",
			text: "Revenue rose this quarter while margins stayed flat.",
			want: DocTypeBusiness,
		},
		{
			name: "legal document",
			text: "This contract sets the obligations of both parties.",
			want: DocTypeLegal,
		},
		{
			name: "technical manual",
			text: "Follow the instructions before powering the device on.",
			want: DocTypeTechnical,
		},
		{
			name: "plain text",
			text: "Once upon a time there was a quiet village by the sea.",
			want: DocTypeGeneral,
		},
		{
			name: "research outranks business",
			text: "The study covers revenue trends across a decade.",
			want: DocTypeResearch,
		},
		{
			name: "single marker suffices",
			text: "Annual figures were modest.",
			want: DocTypeBusiness,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDocType(tt.text))
		})
	}
}

func TestEstimateCost(t *testing.T) {
	// 1000 prompt + 1000 completion tokens on gpt-3.5-turbo.
	assert.InDelta(t, 0.002, EstimateCost("gpt-3.5-turbo", 1000, 1000), 1e-9)
	// Unknown models fall back to the gpt-3.5-turbo rate.
	assert.InDelta(t, 0.002, EstimateCost("llama3", 1000, 1000), 1e-9)
}
