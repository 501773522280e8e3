package conversation

import (
	"time"

	"argo-assistant/internal/conversation/repository"
	pkgLog "argo-assistant/pkg/log"
)

type implLogger struct {
	l       pkgLog.Logger
	repo    repository.Repository
	timeout time.Duration
}

// New creates a conversation Logger. A nil repo means no store is configured;
// every Append is then reported and skipped.
func New(l pkgLog.Logger, repo repository.Repository, timeout time.Duration) Logger {
	return &implLogger{
		l:       l,
		repo:    repo,
		timeout: timeout,
	}
}
