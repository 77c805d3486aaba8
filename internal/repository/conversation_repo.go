package repository

import (
	"context"
	"database/sql"
	"time"

	"astrid/internal/models"

	"github.com/google/uuid"
)

// sqliteTimeLayout matches SQLite's TIMESTAMP column format.
const sqliteTimeLayout = "2006-01-02 15:04:05"

type ConversationSQLite struct {
	db *sql.DB
}

func NewConversationSQLite(db *sql.DB) *ConversationSQLite {
	return &ConversationSQLite{db: db}
}

// Append inserts one exchange. A zero timestamp is set to now.
func (r *ConversationSQLite) Append(ctx context.Context, e models.ConversationEntry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conversation_log (entry_id, created_at, user_message, bot_response)
		VALUES (?, ?, ?, ?)
	`,
		uuid.NewString(),
		ts.Format(sqliteTimeLayout),
		e.UserMessage,
		e.BotResponse,
	)
	return err
}

// Trim drops everything but the newest keep entries, oldest first.
func (r *ConversationSQLite) Trim(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM conversation_log
		WHERE seq NOT IN (SELECT seq FROM conversation_log ORDER BY seq DESC LIMIT ?)
	`, keep)
	return err
}

// List returns all entries in insertion order.
func (r *ConversationSQLite) List(ctx context.Context) ([]models.ConversationEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT created_at, user_message, bot_response
		FROM conversation_log ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ConversationEntry, 0, 32)
	for rows.Next() {
		var e models.ConversationEntry
		if err := rows.Scan(&e.Timestamp, &e.UserMessage, &e.BotResponse); err != nil {
			return nil, err
		}
		e.Timestamp = e.Timestamp.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count reports the number of stored entries.
func (r *ConversationSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversation_log`).Scan(&n)
	return n, err
}
