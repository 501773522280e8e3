package conversation

import (
	"context"
	"errors"

	"argo-assistant/internal/conversation/repository"
	"argo-assistant/internal/model"
)

func (lg *implLogger) Append(ctx context.Context, entry model.LogEntry) {
	if lg.repo == nil {
		lg.l.Warnf(ctx, "conversation.Append: store not configured, entry dropped")
		return
	}

	// The exchange already completed; request cancellation must not abort the write.
	ctx = context.WithoutCancel(ctx)
	if lg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, lg.timeout)
		defer cancel()
	}

	if err := lg.repo.AppendEntry(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrMalformedAck) {
			lg.l.Errorf(ctx, "conversation.Append: store returned a malformed acknowledgement: %v", err)
			return
		}
		lg.l.Errorf(ctx, "conversation.Append: failed to write entry: %v", err)
		return
	}

	lg.l.Debugf(ctx, "conversation.Append: entry logged")
}
