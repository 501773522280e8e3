package http

import "argo-assistant/internal/chat"

// MsgNoData is returned when the body is missing or is not a non-empty JSON object.
const MsgNoData = "No data provided"

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" example:"What's the weather like today?"`
}

func (r chatReq) toInput() chat.Request {
	return chat.Request{Message: r.Message}
}

// --- Response DTOs (documentation only; bodies are written by pkg/response) ---

type chatResp struct {
	Response string `json:"response" example:"Hello! How can I help you today?"`
	Status   string `json:"status" example:"success"`
}

type errorResp struct {
	Error  string `json:"error" example:"Failed to get AI response"`
	Status string `json:"status,omitempty" example:"error"`
}
