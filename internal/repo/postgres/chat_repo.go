package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

// ChatRepo composes the message and match repos for writes that must land
// together: a sent message and the match's last_message_at marker.
type ChatRepo struct {
	pool     *pgxpool.Pool
	messages *MessageRepo
	matches  *MatchRepo
}

func NewChatRepo(pool *pgxpool.Pool, messages *MessageRepo, matches *MatchRepo) *ChatRepo {
	return &ChatRepo{pool: pool, messages: messages, matches: matches}
}

func (r *ChatRepo) SendMessage(ctx context.Context, msg model.Message) error {
	if r.messages == nil || r.matches == nil {
		return fmt.Errorf("chat repo is not configured")
	}

	return WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.messages.Create(ctx, tx, msg); err != nil {
			return err
		}
		return r.matches.TouchLastMessage(ctx, tx, msg.MatchID, msg.CreatedAt)
	})
}
