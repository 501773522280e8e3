package usecase

import (
	"time"

	"argo-assistant/internal/chat"
	"argo-assistant/internal/conversation"
	"argo-assistant/internal/router"
	pkgLog "argo-assistant/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
// All fields are read-only after New, so Handle may run concurrently.
type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	providers map[router.Category]chat.ResponseProvider
	convLog   conversation.Logger
	timeout   time.Duration
	now       func() time.Time
}

// New creates the dispatch pipeline. providers is copied; later changes to the caller's map have no effect.
func New(
	l pkgLog.Logger,
	r router.Router,
	providers map[router.Category]chat.ResponseProvider,
	convLog conversation.Logger,
	timeout time.Duration,
) chat.UseCase {
	registry := make(map[router.Category]chat.ResponseProvider, len(providers))
	for category, p := range providers {
		if p != nil {
			registry[category] = p
		}
	}

	return &implUseCase{
		l:         l,
		router:    r,
		providers: registry,
		convLog:   convLog,
		timeout:   timeout,
		now:       time.Now,
	}
}
