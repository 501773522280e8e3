package usecase

import (
	"context"
	"strings"

	"argo-assistant/internal/chat"
	"argo-assistant/internal/model"
)

// Handle runs validate, classify, resolve, respond and log, in that order.
// Exactly one provider is called at most once; nothing is retried.
func (uc *implUseCase) Handle(ctx context.Context, req chat.Request) chat.Result {
	message := req.Message
	if strings.TrimSpace(message) == "" {
		return chat.NewFailure("", chat.ReasonValidation, chat.MsgNoMessage)
	}

	category := uc.router.Classify(message)

	p, ok := uc.providers[category]
	if !ok {
		uc.l.Errorf(ctx, "chat.Handle: %v: %s", chat.ErrProviderUnavailable, category)
		return chat.NewFailure(category, chat.ReasonProviderUnavailable, chat.MsgProviderUnavailable)
	}

	text, err := uc.respond(ctx, p, message)
	if err != nil {
		reason := normalizeReason(err)
		uc.l.Errorf(ctx, "chat.Handle: category=%s reason=%s: %v", category, reason, err)
		return chat.NewFailure(category, reason, failureMessage(category, reason))
	}

	uc.convLog.Append(ctx, model.LogEntry{
		Timestamp:         uc.now(),
		UserMessage:       message,
		AssistantResponse: text,
	})

	return chat.NewSuccess(category, text)
}

func (uc *implUseCase) respond(ctx context.Context, p chat.ResponseProvider, message string) (string, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}
	return p.Respond(ctx, message)
}
