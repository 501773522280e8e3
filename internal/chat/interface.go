package chat

import "context"

// UseCase runs one chat request through the dispatch pipeline.
type UseCase interface {
	// Handle validates, classifies and dispatches req. It always returns a Result;
	// failures are reported through Result.Status, never as a Go error.
	Handle(ctx context.Context, req Request) Result
}

// ResponseProvider produces a response text for a message.
// Implementations are safe for concurrent use and return *ProviderError on failure.
type ResponseProvider interface {
	Respond(ctx context.Context, message string) (string, error)
}
