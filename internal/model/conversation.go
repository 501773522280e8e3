package model

import "time"

// TimestampLayout is the layout used when a LogEntry timestamp is persisted.
const TimestampLayout = time.RFC3339

// LogEntry is one completed exchange, persisted append-only.
type LogEntry struct {
	Timestamp         time.Time
	UserMessage       string
	AssistantResponse string
}

// Record renders the entry in its persisted form.
func (e LogEntry) Record() Record {
	return Record{
		Timestamp:         e.Timestamp.Format(TimestampLayout),
		UserMessage:       e.UserMessage,
		AssistantResponse: e.AssistantResponse,
	}
}

// Record is a row read back from the conversation store.
// Columns are ordered timestamp, user message, assistant response.
type Record struct {
	Timestamp         string
	UserMessage       string
	AssistantResponse string
}
