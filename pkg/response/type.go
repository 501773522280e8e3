package response

// Status values carried in the "status" field of response bodies.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DefaultErrorMessage is returned when no caller-safe message is available.
const DefaultErrorMessage = "An unexpected error occurred"

// ChatResp is the success body of the chat endpoint.
type ChatResp struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

// ErrorResp is the body of every error response. Status is omitted for client errors.
type ErrorResp struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}
