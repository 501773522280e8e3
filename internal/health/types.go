package health

// State is the overall service health.
type State string

const (
	StateHealthy   State = "healthy"
	StateDegraded  State = "degraded"
	StateUnhealthy State = "unhealthy"
)

const (
	MsgHealthy      = "All services operational"
	MsgStoreMissing = "Conversation store not configured"
	MsgAIKeyMissing = "AI completion API key not configured"
)

// Availability records which backends were configured at startup.
type Availability struct {
	AICompletion bool `json:"ai_completion"`
	Store        bool `json:"store"`
	WebSearch    bool `json:"web_search"`
}

// Status is one health report. Message explains a non-healthy state.
type Status struct {
	State     State
	Message   string
	Providers Availability
}
