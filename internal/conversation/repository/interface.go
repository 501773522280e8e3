package repository

import (
	"context"

	"argo-assistant/internal/model"
)

// Repository is the conversation store. Implementations are safe for concurrent use.
type Repository interface {
	// AppendEntry writes one entry as a new row after all existing rows.
	AppendEntry(ctx context.Context, entry model.LogEntry) error

	// FindRecords returns stored records matching opt, most recent first.
	FindRecords(ctx context.Context, opt FindRecordsOptions) ([]model.Record, error)
}
