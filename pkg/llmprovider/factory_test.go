package llmprovider_test

import (
	"errors"
	"testing"

	"argo-assistant/config"
	"argo-assistant/pkg/llmprovider"
)

func TestInitializeProvider(t *testing.T) {
	t.Run("OpenAI", func(t *testing.T) {
		p, err := llmprovider.InitializeProvider(config.LLMConfig{Provider: "openai", APIKey: "k", Model: "gpt-4o-mini"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name() != "openai" || p.Model() != "gpt-4o-mini" {
			t.Errorf("unexpected provider %s/%s", p.Name(), p.Model())
		}
	})

	t.Run("Anthropic", func(t *testing.T) {
		p, err := llmprovider.InitializeProvider(config.LLMConfig{Provider: "anthropic", APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name() != "anthropic" {
			t.Errorf("unexpected provider %s", p.Name())
		}
	})

	t.Run("Default Model Per Provider", func(t *testing.T) {
		tests := map[string]string{
			"openai":    llmprovider.DefaultOpenAIModel,
			"anthropic": llmprovider.DefaultAnthropicModel,
		}
		for provider, want := range tests {
			p, err := llmprovider.InitializeProvider(config.LLMConfig{Provider: provider, APIKey: "k"})
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", provider, err)
			}
			if p.Model() != want {
				t.Errorf("%s: expected model %s, got %s", provider, want, p.Model())
			}
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		_, err := llmprovider.InitializeProvider(config.LLMConfig{Provider: "openai"})
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("Unknown Provider", func(t *testing.T) {
		_, err := llmprovider.InitializeProvider(config.LLMConfig{Provider: "gemini", APIKey: "k"})
		if !errors.Is(err, llmprovider.ErrUnknownProvider) {
			t.Errorf("expected ErrUnknownProvider, got %v", err)
		}
	})
}
