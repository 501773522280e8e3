package sheets

import (
	"context"

	"argo-assistant/internal/conversation/repository"
	pkgLog "argo-assistant/pkg/log"
	pkgSheets "argo-assistant/pkg/sheets"
)

// Client is the subset of the Sheets client the repository uses.
type Client interface {
	AppendRow(ctx context.Context, rng string, row []interface{}) (*pkgSheets.AppendResult, error)
	ReadRows(ctx context.Context, rng string) ([]pkgSheets.Row, error)
}

type implRepository struct {
	client   Client
	logRange string // e.g. "Sheet1!A:C"
	l        pkgLog.Logger
}

// New creates a Sheets-backed conversation repository.
func New(client Client, logRange string, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:   client,
		logRange: logRange,
		l:        l,
	}
}
