package llmprovider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"argo-assistant/pkg/llmprovider"
)

func TestAnthropicAdapter(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "claude-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			MaxTokens int `json:"max_tokens"`
			System    []struct {
				Text string `json:"text"`
			} `json:"system"`
			Messages []struct {
				Content []struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if req.Messages[0].Content[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
			return
		}
		if len(req.System) != 1 || req.MaxTokens != 1024 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-opus-20240229",
			"content": [{"type": "text", "text": "Hi from Claude"}],
			"stop_reason": "end_turn",
			"stop_sequence": null,
			"usage": {"input_tokens": 12, "output_tokens": 6}
		}`))
	}))
	defer ts.Close()

	adapter, err := llmprovider.NewAnthropicAdapter("claude-key", ts.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := adapter.GenerateContent(context.Background(), &llmprovider.Request{
			SystemInstruction: "You are a helpful voice assistant.",
			Messages:          []llmprovider.Message{llmprovider.UserMessage("hello")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "Hi from Claude" {
			t.Errorf("unexpected text %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 18 || adapter.Model() != llmprovider.DefaultAnthropicModel {
			t.Errorf("unexpected metadata %+v model=%s", resp.Usage, adapter.Model())
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := adapter.GenerateContent(context.Background(), &llmprovider.Request{
			SystemInstruction: "sys",
			Messages:          []llmprovider.Message{llmprovider.UserMessage("cause_500")},
		})
		var perr *llmprovider.ProviderError
		if !errors.As(err, &perr) || perr.Provider != "anthropic" {
			t.Fatalf("expected anthropic ProviderError, got %v", err)
		}
	})
}
