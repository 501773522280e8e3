package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"argo-assistant/internal/health"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name      string
		avail     health.Availability
		wantState health.State
		wantMsg   string
	}{
		{"all configured", health.Availability{AICompletion: true, Store: true, WebSearch: true}, health.StateHealthy, health.MsgHealthy},
		{"search missing stays healthy", health.Availability{AICompletion: true, Store: true}, health.StateHealthy, health.MsgHealthy},
		{"store missing", health.Availability{AICompletion: true, WebSearch: true}, health.StateDegraded, health.MsgStoreMissing},
		{"ai key missing", health.Availability{Store: true, WebSearch: true}, health.StateUnhealthy, health.MsgAIKeyMissing},
		{"nothing configured", health.Availability{}, health.StateUnhealthy, health.MsgAIKeyMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := health.New(tt.avail).Report()
			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, tt.avail, got.Providers)
		})
	}
}
