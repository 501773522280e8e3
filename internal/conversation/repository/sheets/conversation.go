package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"argo-assistant/internal/conversation/repository"
	"argo-assistant/internal/model"
	pkgSheets "argo-assistant/pkg/sheets"
)

const headerTimestamp = "timestamp"

func (r *implRepository) AppendEntry(ctx context.Context, entry model.LogEntry) error {
	rec := entry.Record()
	row := []interface{}{rec.Timestamp, rec.UserMessage, rec.AssistantResponse}

	res, err := r.client.AppendRow(ctx, r.logRange, row)
	if err != nil {
		if errors.Is(err, pkgSheets.ErrMalformedAppend) {
			return fmt.Errorf("%w: %v", repository.ErrMalformedAck, err)
		}
		return err
	}

	r.l.Debugf(ctx, "sheets repository: appended row at %s", res.UpdatedRange)
	return nil
}

func (r *implRepository) FindRecords(ctx context.Context, opt repository.FindRecordsOptions) ([]model.Record, error) {
	rows, err := r.client.ReadRows(ctx, r.logRange)
	if err != nil {
		return nil, err
	}

	limit := opt.EffectiveLimit()
	records := make([]model.Record, 0, limit)

	// Newest rows are at the bottom of the sheet.
	for i := len(rows) - 1; i >= 0 && len(records) < limit; i-- {
		rec, ok := rowToRecord(rows[i])
		if !ok || !opt.Matches(rec) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// rowToRecord converts a sheet row. Header rows and rows without a user message are skipped.
func rowToRecord(row pkgSheets.Row) (model.Record, bool) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	rec := model.Record{
		Timestamp:         cell(0),
		UserMessage:       cell(1),
		AssistantResponse: cell(2),
	}
	if rec.UserMessage == "" || strings.EqualFold(rec.Timestamp, headerTimestamp) {
		return model.Record{}, false
	}
	return rec, true
}
