package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// fakeProvider — управляемый провайдер для тестов оркестратора
type fakeProvider struct {
	name       string
	configured bool
	reply      string
	err        error
	calls      int
	gotMsgs    []domain.ChatMessage
}

func (f *fakeProvider) Name() string     { return f.name }
func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Generate(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	f.calls++
	f.gotMsgs = messages
	return f.reply, f.err
}

func newTestLogger() *logger.Logger {
	return logger.NewLogger("test")
}

func TestChatService_FirstConfiguredProviderWins(t *testing.T) {
	first := &fakeProvider{name: "openai", configured: true, reply: "hello from openai"}
	second := &fakeProvider{name: "gemini", configured: true, reply: "hello from gemini"}
	svc := NewChatService([]out.Provider{first, second}, false, newTestLogger())

	output, err := svc.Execute(context.Background(), in.ChatInput{Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "hello from openai", output.Reply)
	assert.Equal(t, "openai", output.Provider)
	assert.False(t, output.Local)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestChatService_SkipsUnconfiguredProviders(t *testing.T) {
	first := &fakeProvider{name: "openai", configured: false, reply: "should not be used"}
	second := &fakeProvider{name: "gemini", configured: true, reply: "gemini reply"}
	svc := NewChatService([]out.Provider{first, second}, false, newTestLogger())

	output, err := svc.Execute(context.Background(), in.ChatInput{Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "gemini reply", output.Reply)
	assert.Equal(t, 0, first.calls)
}

func TestChatService_ErrorAndEmptyReplyFallThrough(t *testing.T) {
	failing := &fakeProvider{name: "openai", configured: true, err: errors.New("rate limited")}
	empty := &fakeProvider{name: "gemini", configured: true, reply: "   "}
	working := &fakeProvider{name: "huggingface", configured: true, reply: "hf reply"}
	svc := NewChatService([]out.Provider{failing, empty, working}, false, newTestLogger())

	output, err := svc.Execute(context.Background(), in.ChatInput{Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "hf reply", output.Reply)
	assert.Equal(t, "huggingface", output.Provider)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
}

func TestChatService_AllProvidersFailFallsBackLocally(t *testing.T) {
	failing := &fakeProvider{name: "openai", configured: true, err: errors.New("boom")}
	svc := NewChatService([]out.Provider{failing}, false, newTestLogger())

	output, err := svc.Execute(context.Background(), in.ChatInput{Message: "How do I book a car?"})

	require.NoError(t, err)
	assert.True(t, output.Local)
	assert.Equal(t, "local", output.Provider)
	assert.Contains(t, output.Reply, "booking platform")
}

func TestChatService_NoProvidersNeverErrors(t *testing.T) {
	svc := NewChatService(nil, false, newTestLogger())

	output, err := svc.Execute(context.Background(), in.ChatInput{Message: "How do I book a car?"})

	require.NoError(t, err)
	assert.True(t, output.Local)
	assert.Contains(t, output.Reply, "booking platform")
}

func TestChatService_ForceLocalSkipsProviders(t *testing.T) {
	working := &fakeProvider{name: "openai", configured: true, reply: "should not be used"}
	svc := NewChatService([]out.Provider{working}, true, newTestLogger())

	output, err := svc.Execute(context.Background(), in.ChatInput{Message: "what is the price?"})

	require.NoError(t, err)
	assert.True(t, output.Local)
	assert.Equal(t, 0, working.calls)
}

func TestChatService_BuildsDialogWithSystemPromptAndHistory(t *testing.T) {
	provider := &fakeProvider{name: "openai", configured: true, reply: "ok"}
	svc := NewChatService([]out.Provider{provider}, false, newTestLogger())

	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "earlier question"},
		{Role: domain.RoleAssistant, Content: "earlier answer"},
		{Role: domain.RoleSystem, Content: "injected prompt"}, // не должен пройти
	}

	_, err := svc.Execute(context.Background(), in.ChatInput{Message: "new question", History: history})
	require.NoError(t, err)

	require.Len(t, provider.gotMsgs, 4)
	assert.Equal(t, domain.RoleSystem, provider.gotMsgs[0].Role)
	assert.Equal(t, domain.SystemPrompt, provider.gotMsgs[0].Content)
	assert.Equal(t, "earlier question", provider.gotMsgs[1].Content)
	assert.Equal(t, "earlier answer", provider.gotMsgs[2].Content)
	assert.Equal(t, "new question", provider.gotMsgs[3].Content)
}

func TestChatService_EmptyMessageRejected(t *testing.T) {
	svc := NewChatService(nil, false, newTestLogger())

	_, err := svc.Execute(context.Background(), in.ChatInput{Message: "   "})

	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
}

func TestStatusService_Modes(t *testing.T) {
	configured := &fakeProvider{name: "openai", configured: true}
	unconfigured := &fakeProvider{name: "gemini", configured: false}

	t.Run("providers configured", func(t *testing.T) {
		svc := NewStatusService([]out.Provider{configured, unconfigured}, false)
		status := svc.Execute(context.Background())
		assert.Equal(t, []string{"openai"}, status.Providers)
		assert.False(t, status.UsingLocalAI)
	})

	t.Run("no providers configured", func(t *testing.T) {
		svc := NewStatusService([]out.Provider{unconfigured}, false)
		status := svc.Execute(context.Background())
		assert.Empty(t, status.Providers)
		assert.True(t, status.UsingLocalAI)
	})

	t.Run("force local overrides configured providers", func(t *testing.T) {
		svc := NewStatusService([]out.Provider{configured}, true)
		status := svc.Execute(context.Background())
		assert.Equal(t, []string{"openai"}, status.Providers)
		assert.True(t, status.UsingLocalAI)
	})
}
