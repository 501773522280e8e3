package usecase

import (
	"errors"

	"argo-assistant/internal/chat"
	"argo-assistant/internal/router"
)

// normalizeReason maps any provider error to a failure reason.
// Errors that are not *chat.ProviderError, including deadline expiry, count as upstream failures.
func normalizeReason(err error) chat.Reason {
	var perr *chat.ProviderError
	if errors.As(err, &perr) && perr.Reason == chat.ReasonNotConfigured {
		return chat.ReasonNotConfigured
	}
	return chat.ReasonUpstreamFailure
}

func failureMessage(category router.Category, reason chat.Reason) string {
	switch reason {
	case chat.ReasonNotConfigured:
		return chat.MsgNotConfigured
	case chat.ReasonUpstreamFailure:
		if category == router.CategoryAICompletion {
			return chat.MsgAIFailure
		}
		return chat.MsgProviderFailure
	default:
		return chat.MsgProviderFailure
	}
}
