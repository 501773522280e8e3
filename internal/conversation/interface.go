package conversation

import (
	"context"

	"argo-assistant/internal/model"
)

// Logger persists completed exchanges on a best-effort basis.
// Append never fails from the caller's point of view; problems are reported through the service log.
type Logger interface {
	Append(ctx context.Context, entry model.LogEntry)
}
