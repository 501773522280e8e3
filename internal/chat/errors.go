package chat

import (
	"errors"
	"fmt"
)

var (
	ErrProviderUnavailable = errors.New("no provider registered for category")
	ErrNotConfigured       = errors.New("provider is not configured")
)

// ProviderError is the failure returned by a ResponseProvider.
type ProviderError struct {
	Reason   Reason // ReasonUpstreamFailure or ReasonNotConfigured
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Reason, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err as an UPSTREAM_FAILURE from provider.
func NewUpstreamError(provider string, err error) *ProviderError {
	return &ProviderError{Reason: ReasonUpstreamFailure, Provider: provider, Err: err}
}

// NewNotConfiguredError reports that provider has no backing service.
func NewNotConfiguredError(provider string) *ProviderError {
	return &ProviderError{Reason: ReasonNotConfigured, Provider: provider, Err: ErrNotConfigured}
}
