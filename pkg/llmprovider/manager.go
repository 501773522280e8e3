package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"argo-assistant/pkg/log"
)

// Manager runs generation requests against a single provider with a bounded timeout.
// A failed call is returned as-is; the manager never retries.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	Timeout time.Duration
}

// NewManager creates a new Provider Manager with the given provider, config, and logger
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// GenerateContent sends req to the provider once.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	resp, err := m.provider.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", ErrProviderTimeout, err)
		}
		m.logFailure(ctx, err)
		return nil, err
	}

	m.logSuccess(ctx, resp)
	return resp, nil
}

// Name returns the name of the managed provider
func (m *Manager) Name() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

// Model returns the model of the managed provider
func (m *Manager) Model() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Model()
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		m.provider.Name(), m.provider.Model(), in, out)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s: %v",
		m.provider.Name(), m.provider.Model(), err)
}
