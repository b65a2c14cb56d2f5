package repository

import (
	"context"
	"time"

	"moneyflow/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ChatRepository persists the conversation transcript. The transcript is
// an append-only log: the repository deliberately exposes no update or
// delete operations, so no message can ever be edited once written.
type ChatRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChatRepository(db *pgxpool.Pool, logger *zap.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts the message and fills in ID and Timestamp.
func (r *ChatRepository) Append(ctx context.Context, m *models.ChatMessage) error {
	m.Timestamp = time.Now().UTC()

	query := squirrel.Insert("chat_messages").
		Columns("message", "is_user", "timestamp").
		Values(m.Message, m.IsUser, m.Timestamp).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&m.ID)
}

// List returns the full transcript ordered ascending by timestamp. The id
// tie-break keeps the user/assistant pair of a single turn in insertion
// order even when both land on the same timestamp.
func (r *ChatRepository) List(ctx context.Context) ([]*models.ChatMessage, error) {
	query := squirrel.Select("id", "message", "is_user", "timestamp").
		From("chat_messages").
		OrderBy("timestamp ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.Message, &m.IsUser, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}

	return messages, rows.Err()
}
