package sqlite

import (
	"context"
	"fmt"
	"strings"

	"argo-assistant/internal/conversation/repository"
	"argo-assistant/internal/model"
)

func (r *implRepository) AppendEntry(ctx context.Context, entry model.LogEntry) error {
	rec := entry.Record()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO conversation_log (timestamp, user_message, assistant_response) VALUES (?, ?, ?)`,
		rec.Timestamp, rec.UserMessage, rec.AssistantResponse,
	)
	if err != nil {
		return fmt.Errorf("insert conversation entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrMalformedAck, err)
	}
	if n != 1 {
		return fmt.Errorf("%w: %d rows affected", repository.ErrMalformedAck, n)
	}

	if id, err := res.LastInsertId(); err == nil {
		r.l.Debugf(ctx, "sqlite repository: appended row id=%d", id)
	}
	return nil
}

func (r *implRepository) FindRecords(ctx context.Context, opt repository.FindRecordsOptions) ([]model.Record, error) {
	var (
		conds []string
		args  []any
	)
	for _, kw := range opt.Keywords {
		// LIKE is case-insensitive for ASCII in SQLite
		pattern := "%" + escapeLike(kw) + "%"
		conds = append(conds, `(user_message LIKE ? ESCAPE '\' OR assistant_response LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	query := `SELECT timestamp, user_message, assistant_response FROM conversation_log`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " OR ")
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, opt.EffectiveLimit())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query conversation log: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(&rec.Timestamp, &rec.UserMessage, &rec.AssistantResponse); err != nil {
			return nil, fmt.Errorf("scan conversation row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversation rows: %w", err)
	}
	return records, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
