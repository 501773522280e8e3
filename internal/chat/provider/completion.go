package provider

import (
	"context"
	"strings"

	"argo-assistant/internal/chat"
	"argo-assistant/pkg/llmprovider"
)

const completionName = "ai_completion"

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// CompletionOptions tunes the completion request.
type CompletionOptions struct {
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

// Completion answers free-form messages with an AI completion API.
type Completion struct {
	gen  Generator
	opts CompletionOptions
}

var _ chat.ResponseProvider = (*Completion)(nil)

// NewCompletion creates the AI completion provider. A nil gen reports NOT_CONFIGURED on every call.
func NewCompletion(gen Generator, opts CompletionOptions) *Completion {
	return &Completion{gen: gen, opts: opts}
}

// Respond sends message as the single user turn under the configured system prompt.
func (p *Completion) Respond(ctx context.Context, message string) (string, error) {
	if p.gen == nil {
		return "", chat.NewNotConfiguredError(completionName)
	}

	resp, err := p.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: p.opts.SystemPrompt,
		Messages:          []llmprovider.Message{llmprovider.UserMessage(message)},
		MaxTokens:         p.opts.MaxTokens,
		Temperature:       p.opts.Temperature,
	})
	if err != nil {
		return "", chat.NewUpstreamError(completionName, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", chat.NewUpstreamError(completionName, llmprovider.ErrEmptyResponse)
	}
	return text, nil
}
