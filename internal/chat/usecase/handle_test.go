package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argo-assistant/internal/chat"
	"argo-assistant/internal/conversation"
	"argo-assistant/internal/conversation/repository"
	"argo-assistant/internal/model"
	"argo-assistant/internal/router"
	"argo-assistant/pkg/log"
)

type fakeProvider struct {
	mu       sync.Mutex
	text     string
	err      error
	delay    time.Duration
	messages []string
}

func (f *fakeProvider) Respond(ctx context.Context, message string) (string, error) {
	f.mu.Lock()
	f.messages = append(f.messages, message)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

type fakeConvLogger struct {
	mu      sync.Mutex
	entries []model.LogEntry
}

func (f *fakeConvLogger) Append(ctx context.Context, entry model.LogEntry) {
	f.mu.Lock()
	f.entries = append(f.entries, entry)
	f.mu.Unlock()
}

type providers struct {
	ai, lookup, search *fakeProvider
}

func newProviders() providers {
	return providers{
		ai:     &fakeProvider{text: "Hello! How can I help?"},
		lookup: &fakeProvider{text: "I found 1 matching record"},
		search: &fakeProvider{text: "5 restaurants found"},
	}
}

func (p providers) registry() map[router.Category]chat.ResponseProvider {
	return map[router.Category]chat.ResponseProvider{
		router.CategoryAICompletion:     p.ai,
		router.CategoryStructuredLookup: p.lookup,
		router.CategoryWebSearch:        p.search,
	}
}

func (p providers) totalCalls() int {
	return p.ai.calls() + p.lookup.calls() + p.search.calls()
}

func newTestUseCase(p providers, convLog *fakeConvLogger, timeout time.Duration) chat.UseCase {
	return New(log.NewNop(), router.New(), p.registry(), convLog, timeout)
}

func TestHandle_EmptyMessage(t *testing.T) {
	for _, msg := range []string{"", "   ", "\n\t"} {
		t.Run(fmt.Sprintf("%q", msg), func(t *testing.T) {
			p := newProviders()
			convLog := &fakeConvLogger{}

			res := newTestUseCase(p, convLog, time.Second).Handle(context.Background(), chat.Request{Message: msg})

			assert.Equal(t, chat.StatusError, res.Status)
			assert.Equal(t, chat.MsgNoMessage, res.ErrorMessage)
			assert.Equal(t, chat.ReasonValidation, res.Reason)
			assert.Empty(t, res.ResponseText)
			assert.Zero(t, p.totalCalls())
			assert.Empty(t, convLog.entries)
		})
	}
}

func TestHandle_WebSearchSuccess(t *testing.T) {
	p := newProviders()
	convLog := &fakeConvLogger{}
	uc := newTestUseCase(p, convLog, time.Second)

	before := time.Now()
	res := uc.Handle(context.Background(), chat.Request{Message: "find me a restaurant"})

	assert.Equal(t, chat.StatusSuccess, res.Status)
	assert.Equal(t, "5 restaurants found", res.ResponseText)
	assert.Empty(t, res.ErrorMessage)
	assert.Equal(t, router.CategoryWebSearch, res.Category)
	assert.Equal(t, 1, p.search.calls())
	assert.Zero(t, p.ai.calls()+p.lookup.calls())

	require.Len(t, convLog.entries, 1)
	entry := convLog.entries[0]
	assert.Equal(t, "find me a restaurant", entry.UserMessage)
	assert.Equal(t, "5 restaurants found", entry.AssistantResponse)
	assert.False(t, entry.Timestamp.Before(before))
}

func TestHandle_DispatchByCategory(t *testing.T) {
	tests := []struct {
		message  string
		category router.Category
		want     string
	}{
		{"hello", router.CategoryAICompletion, "Hello! How can I help?"},
		{"what is in the DATABASE", router.CategoryStructuredLookup, "I found 1 matching record"},
		{"Look Up the weather", router.CategoryWebSearch, "5 restaurants found"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			p := newProviders()
			res := newTestUseCase(p, &fakeConvLogger{}, time.Second).Handle(context.Background(), chat.Request{Message: tt.message})

			assert.True(t, res.Succeeded())
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.want, res.ResponseText)
			assert.Equal(t, 1, p.totalCalls())
		})
	}
}

func TestHandle_LoggerFailureDoesNotChangeResult(t *testing.T) {
	p := newProviders()
	repo := &failingRepo{}
	convLog := conversation.New(log.NewNop(), repo, time.Second)
	uc := New(log.NewNop(), router.New(), p.registry(), convLog, time.Second)

	res := uc.Handle(context.Background(), chat.Request{Message: "hello"})

	assert.Equal(t, chat.NewSuccess(router.CategoryAICompletion, "Hello! How can I help?"), res)
	assert.Equal(t, 1, repo.attempts)
}

type failingRepo struct {
	attempts int
}

func (f *failingRepo) AppendEntry(ctx context.Context, entry model.LogEntry) error {
	f.attempts++
	return errors.New("sheets api unreachable")
}

func (f *failingRepo) FindRecords(ctx context.Context, opt repository.FindRecordsOptions) ([]model.Record, error) {
	return nil, errors.New("sheets api unreachable")
}

func TestHandle_ProviderFailure(t *testing.T) {
	t.Run("AI upstream failure", func(t *testing.T) {
		p := newProviders()
		p.ai.err = chat.NewUpstreamError("ai_completion", errors.New("invalid api key sk-secret"))
		convLog := &fakeConvLogger{}

		res := newTestUseCase(p, convLog, time.Second).Handle(context.Background(), chat.Request{Message: "hello"})

		assert.Equal(t, chat.StatusError, res.Status)
		assert.Equal(t, chat.MsgAIFailure, res.ErrorMessage)
		assert.Equal(t, chat.ReasonUpstreamFailure, res.Reason)
		assert.NotContains(t, res.ErrorMessage, "sk-secret")
		assert.Empty(t, convLog.entries)
		assert.Equal(t, 1, p.ai.calls())
	})

	t.Run("raw error is normalised", func(t *testing.T) {
		p := newProviders()
		p.search.err = errors.New("connection reset")

		res := newTestUseCase(p, &fakeConvLogger{}, time.Second).Handle(context.Background(), chat.Request{Message: "search cats"})

		assert.Equal(t, chat.ReasonUpstreamFailure, res.Reason)
		assert.Equal(t, chat.MsgProviderFailure, res.ErrorMessage)
	})

	t.Run("not configured", func(t *testing.T) {
		p := newProviders()
		p.lookup.err = chat.NewNotConfiguredError("structured_lookup")
		convLog := &fakeConvLogger{}

		res := newTestUseCase(p, convLog, time.Second).Handle(context.Background(), chat.Request{Message: "check the sheet"})

		assert.Equal(t, chat.StatusError, res.Status)
		assert.Equal(t, chat.ReasonNotConfigured, res.Reason)
		assert.Equal(t, chat.MsgNotConfigured, res.ErrorMessage)
		assert.Empty(t, convLog.entries)
	})

	t.Run("no retry and no fallback", func(t *testing.T) {
		p := newProviders()
		p.search.err = errors.New("boom")

		newTestUseCase(p, &fakeConvLogger{}, time.Second).Handle(context.Background(), chat.Request{Message: "find x"})

		assert.Equal(t, 1, p.search.calls())
		assert.Zero(t, p.ai.calls())
		assert.Zero(t, p.lookup.calls())
	})
}

func TestHandle_Timeout(t *testing.T) {
	p := newProviders()
	p.ai.delay = time.Second
	convLog := &fakeConvLogger{}

	start := time.Now()
	res := newTestUseCase(p, convLog, 20*time.Millisecond).Handle(context.Background(), chat.Request{Message: "hello"})

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, chat.ReasonUpstreamFailure, res.Reason)
	assert.Equal(t, chat.MsgAIFailure, res.ErrorMessage)
	assert.Empty(t, convLog.entries)
}

func TestHandle_ProviderUnavailable(t *testing.T) {
	p := newProviders()
	registry := p.registry()
	delete(registry, router.CategoryWebSearch)
	registry[router.CategoryStructuredLookup] = nil

	uc := New(log.NewNop(), router.New(), registry, &fakeConvLogger{}, time.Second)

	for _, msg := range []string{"search cats", "open the sheet"} {
		res := uc.Handle(context.Background(), chat.Request{Message: msg})
		assert.Equal(t, chat.StatusError, res.Status, msg)
		assert.Equal(t, chat.ReasonProviderUnavailable, res.Reason, msg)
		assert.Equal(t, chat.MsgProviderUnavailable, res.ErrorMessage, msg)
	}
}

func TestHandle_RegistryIsCopied(t *testing.T) {
	p := newProviders()
	registry := p.registry()
	uc := New(log.NewNop(), router.New(), registry, &fakeConvLogger{}, time.Second)

	delete(registry, router.CategoryAICompletion)

	res := uc.Handle(context.Background(), chat.Request{Message: "hello"})
	assert.True(t, res.Succeeded())
}

func TestHandle_Concurrent(t *testing.T) {
	p := newProviders()
	convLog := &fakeConvLogger{}
	uc := newTestUseCase(p, convLog, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := fmt.Sprintf("hello %d", i)
			res := uc.Handle(context.Background(), chat.Request{Message: msg})
			assert.True(t, res.Succeeded())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, p.ai.calls())
	assert.Len(t, convLog.entries, 50)
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, chat.MsgAIFailure, failureMessage(router.CategoryAICompletion, chat.ReasonUpstreamFailure))
	assert.Equal(t, chat.MsgProviderFailure, failureMessage(router.CategoryWebSearch, chat.ReasonUpstreamFailure))
	assert.Equal(t, chat.MsgNotConfigured, failureMessage(router.CategoryAICompletion, chat.ReasonNotConfigured))
}
