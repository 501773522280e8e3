package provider

import (
	"context"
	"fmt"
	"strings"

	"argo-assistant/internal/chat"
	"argo-assistant/internal/conversation/repository"
)

const lookupName = "structured_lookup"

// Lookup answers questions about stored records from the conversation store.
type Lookup struct {
	repo  repository.Repository
	limit int
}

var _ chat.ResponseProvider = (*Lookup)(nil)

// NewLookup creates the structured lookup provider. A nil repo reports NOT_CONFIGURED on every call.
func NewLookup(repo repository.Repository, limit int) *Lookup {
	return &Lookup{repo: repo, limit: limit}
}

// Respond finds records sharing content words with message and summarises them.
func (p *Lookup) Respond(ctx context.Context, message string) (string, error) {
	if p.repo == nil {
		return "", chat.NewNotConfiguredError(lookupName)
	}

	keywords := extractKeywords(message)
	records, err := p.repo.FindRecords(ctx, repository.FindRecordsOptions{
		Keywords: keywords,
		Limit:    p.limit,
	})
	if err != nil {
		return "", chat.NewUpstreamError(lookupName, err)
	}

	if len(records) == 0 {
		if len(keywords) == 0 {
			return "There are no records stored yet.", nil
		}
		return fmt.Sprintf("I couldn't find any records matching %q.", strings.Join(keywords, " ")), nil
	}

	var sb strings.Builder
	if len(records) == 1 {
		sb.WriteString("I found 1 matching record:")
	} else {
		fmt.Fprintf(&sb, "I found %d matching records:", len(records))
	}
	for i, rec := range records {
		fmt.Fprintf(&sb, "\n%d. [%s] You: %s\n   ARGO: %s", i+1, rec.Timestamp, rec.UserMessage, rec.AssistantResponse)
	}
	return sb.String(), nil
}
