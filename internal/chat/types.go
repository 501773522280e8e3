package chat

import "argo-assistant/internal/router"

// Request is an incoming chat message.
type Request struct {
	Message string
}

// Status is the outcome of a Result.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

// Reason classifies why a Result failed. It drives the HTTP status and is never shown to callers.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonValidation          Reason = "VALIDATION"
	ReasonProviderUnavailable Reason = "PROVIDER_UNAVAILABLE"
	ReasonUpstreamFailure     Reason = "UPSTREAM_FAILURE"
	ReasonNotConfigured       Reason = "NOT_CONFIGURED"
)

// Caller-facing messages.
const (
	MsgNoMessage           = "No message provided"
	MsgAIFailure           = "Failed to get AI response"
	MsgProviderFailure     = "Failed to get a response"
	MsgNotConfigured       = "This capability is not configured"
	MsgProviderUnavailable = "No provider available for this request"
)

// Result is the uniform outcome of Handle.
// Exactly one of ResponseText and ErrorMessage is set, matching Status.
type Result struct {
	Status       Status
	ResponseText string
	ErrorMessage string
	Category     router.Category // empty when the message was rejected before classification
	Reason       Reason
}

// Succeeded reports whether r carries a response.
func (r Result) Succeeded() bool {
	return r.Status == StatusSuccess
}

// NewSuccess builds a successful Result.
func NewSuccess(category router.Category, text string) Result {
	return Result{Status: StatusSuccess, ResponseText: text, Category: category}
}

// NewFailure builds a failed Result.
func NewFailure(category router.Category, reason Reason, message string) Result {
	return Result{Status: StatusError, ErrorMessage: message, Category: category, Reason: reason}
}
