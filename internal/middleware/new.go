package middleware

import (
	"argo-assistant/config"
	"argo-assistant/pkg/log"
)

type Middleware struct {
	l              log.Logger
	allowedOrigins map[string]struct{}
	allowAll       bool
}

func New(l log.Logger, corsConfig config.CORSConfig) Middleware {
	mw := Middleware{
		l:              l,
		allowedOrigins: make(map[string]struct{}, len(corsConfig.AllowedOrigins)),
	}
	for _, origin := range corsConfig.AllowedOrigins {
		if origin == "*" {
			mw.allowAll = true
			continue
		}
		mw.allowedOrigins[origin] = struct{}{}
	}
	return mw
}
