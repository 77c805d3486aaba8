package repository

import (
	"context"
	"database/sql"

	"astrid/internal/models"
	"astrid/internal/repository/db"
)

// ConversationRepo is the append-mostly store behind the conversation log.
type ConversationRepo interface {
	Append(ctx context.Context, e models.ConversationEntry) error
	// Trim deletes all but the newest keep entries.
	Trim(ctx context.Context, keep int) error
	List(ctx context.Context) ([]models.ConversationEntry, error)
	Count(ctx context.Context) (int, error)
}

type Repository struct {
	Conversation ConversationRepo
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Conversation: NewConversationSQLite(sqlDB),
	}
}

// InitDB opens the SQLite database and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
