package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, tx pgx.Tx, msg model.Message) error {
	if strings.TrimSpace(msg.ID) == "" ||
		strings.TrimSpace(msg.MatchID) == "" ||
		strings.TrimSpace(msg.SenderID) == "" ||
		strings.TrimSpace(msg.Content) == "" {
		return fmt.Errorf("invalid message payload")
	}
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO messages (
	message_id,
	match_id,
	sender_id,
	content,
	created_at
) VALUES ($1, $2, $3, $4, $5)
`, msg.ID, msg.MatchID, msg.SenderID, msg.Content, createdAt.UTC()); err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

func (r *MessageRepo) ListByMatch(ctx context.Context, matchID string, limit int) ([]model.Message, error) {
	if strings.TrimSpace(matchID) == "" {
		return nil, fmt.Errorf("invalid match id")
	}
	if limit <= 0 {
		limit = 500
	}
	if r.pool == nil {
		return []model.Message{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT message_id, match_id, sender_id, content, created_at
FROM messages
WHERE match_id = $1
ORDER BY created_at ASC, message_id ASC
LIMIT $2
`, matchID, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	items := make([]model.Message, 0, limit)
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.ID, &msg.MatchID, &msg.SenderID, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		items = append(items, msg)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate messages: %w", rows.Err())
	}

	return items, nil
}

func (r *MessageRepo) LastByMatch(ctx context.Context, matchID string) (model.Message, bool, error) {
	if strings.TrimSpace(matchID) == "" {
		return model.Message{}, false, fmt.Errorf("invalid match id")
	}
	if r.pool == nil {
		return model.Message{}, false, nil
	}

	var msg model.Message
	err := r.pool.QueryRow(ctx, `
SELECT message_id, match_id, sender_id, content, created_at
FROM messages
WHERE match_id = $1
ORDER BY created_at DESC, message_id DESC
LIMIT 1
`, matchID).Scan(&msg.ID, &msg.MatchID, &msg.SenderID, &msg.Content, &msg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Message{}, false, nil
		}
		return model.Message{}, false, fmt.Errorf("get last message: %w", err)
	}

	return msg, true, nil
}
