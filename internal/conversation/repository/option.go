package repository

import (
	"strings"

	"argo-assistant/internal/model"
)

// DefaultFindLimit is used when FindRecordsOptions.Limit is zero.
const DefaultFindLimit = 5

// FindRecordsOptions holds the parameters for looking up stored records.
type FindRecordsOptions struct {
	Keywords []string // Match any keyword in either message, case-insensitive. Empty matches everything.
	Limit    int      // Max number of records (default 5)
}

// EffectiveLimit returns Limit or the default.
func (o FindRecordsOptions) EffectiveLimit() int {
	if o.Limit <= 0 {
		return DefaultFindLimit
	}
	return o.Limit
}

// Matches reports whether rec contains any of the keywords.
func (o FindRecordsOptions) Matches(rec model.Record) bool {
	if len(o.Keywords) == 0 {
		return true
	}
	user := strings.ToLower(rec.UserMessage)
	assistant := strings.ToLower(rec.AssistantResponse)
	for _, kw := range o.Keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(user, kw) || strings.Contains(assistant, kw) {
			return true
		}
	}
	return false
}
