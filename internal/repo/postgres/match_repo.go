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
	"github.com/askorokhod/unhinged/backend/internal/domain/rules"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepo struct {
	pool *pgxpool.Pool
}

func NewMatchRepo(pool *pgxpool.Pool) *MatchRepo {
	return &MatchRepo{pool: pool}
}

// MatchListRecord is one row of a user's match list with the counterpart
// profile summary joined in.
type MatchListRecord struct {
	MatchID          string
	OtherUserID      string
	OtherName        string
	OtherDisplayName string
	OtherPicture     string
	OtherAge         *int
	CreatedAt        time.Time
	LastMessageAt    *time.Time
}

// CreateIfAbsent inserts the match for the canonical pair unless one already
// exists. The unique index on (user1_id, user2_id) is the only guard two
// concurrent mutual likes race against; the conflicting caller reads back the
// winner's row and reports it as the match.
func (r *MatchRepo) CreateIfAbsent(ctx context.Context, matchID, userID, targetID string, now time.Time) (model.Match, bool, error) {
	if strings.TrimSpace(matchID) == "" || strings.TrimSpace(userID) == "" || strings.TrimSpace(targetID) == "" {
		return model.Match{}, false, fmt.Errorf("invalid match payload")
	}
	if r.pool == nil {
		return model.Match{}, false, fmt.Errorf("postgres pool is nil")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	user1, user2 := rules.PairKey(userID, targetID)

	var m model.Match
	err := r.pool.QueryRow(ctx, `
INSERT INTO matches (
	match_id,
	user1_id,
	user2_id,
	created_at
) VALUES ($1, $2, $3, $4)
ON CONFLICT (user1_id, user2_id) DO NOTHING
RETURNING match_id, user1_id, user2_id, created_at, last_message_at
`, matchID, user1, user2, now.UTC()).Scan(&m.ID, &m.User1ID, &m.User2ID, &m.CreatedAt, &m.LastMessageAt)
	if err == nil {
		return m, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.Match{}, false, fmt.Errorf("create match: %w", err)
	}

	existing, err := r.getByPair(ctx, user1, user2)
	if err != nil {
		return model.Match{}, false, err
	}
	return existing, false, nil
}

func (r *MatchRepo) getByPair(ctx context.Context, user1, user2 string) (model.Match, error) {
	var m model.Match
	err := r.pool.QueryRow(ctx, `
SELECT match_id, user1_id, user2_id, created_at, last_message_at
FROM matches
WHERE user1_id = $1 AND user2_id = $2
`, user1, user2).Scan(&m.ID, &m.User1ID, &m.User2ID, &m.CreatedAt, &m.LastMessageAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, ErrMatchNotFound
		}
		return model.Match{}, fmt.Errorf("get match by pair: %w", err)
	}
	return m, nil
}

// GetForUser loads a match only if userID is one of its two members.
func (r *MatchRepo) GetForUser(ctx context.Context, matchID, userID string) (model.Match, error) {
	if strings.TrimSpace(matchID) == "" || strings.TrimSpace(userID) == "" {
		return model.Match{}, fmt.Errorf("invalid match lookup payload")
	}
	if r.pool == nil {
		return model.Match{}, fmt.Errorf("postgres pool is nil")
	}

	var m model.Match
	err := r.pool.QueryRow(ctx, `
SELECT match_id, user1_id, user2_id, created_at, last_message_at
FROM matches
WHERE match_id = $1 AND (user1_id = $2 OR user2_id = $2)
`, matchID, userID).Scan(&m.ID, &m.User1ID, &m.User2ID, &m.CreatedAt, &m.LastMessageAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, ErrMatchNotFound
		}
		return model.Match{}, fmt.Errorf("get match for user: %w", err)
	}

	return m, nil
}

func (r *MatchRepo) ListForUser(ctx context.Context, userID string, limit int) ([]MatchListRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("invalid user id")
	}
	if limit <= 0 {
		limit = 100
	}
	if r.pool == nil {
		return []MatchListRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT
	m.match_id,
	CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END AS other_user_id,
	COALESCE(p.name, ''),
	COALESCE(p.display_name, ''),
	COALESCE(p.picture, ''),
	p.age,
	m.created_at,
	m.last_message_at
FROM matches m
JOIN profiles p ON p.user_id = CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END
WHERE m.user1_id = $1 OR m.user2_id = $1
ORDER BY m.created_at DESC, m.match_id DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	items := make([]MatchListRecord, 0, limit)
	for rows.Next() {
		var rec MatchListRecord
		if err := rows.Scan(
			&rec.MatchID,
			&rec.OtherUserID,
			&rec.OtherName,
			&rec.OtherDisplayName,
			&rec.OtherPicture,
			&rec.OtherAge,
			&rec.CreatedAt,
			&rec.LastMessageAt,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		items = append(items, rec)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate matches: %w", rows.Err())
	}

	return items, nil
}

func (r *MatchRepo) TouchLastMessage(ctx context.Context, tx pgx.Tx, matchID string, at time.Time) error {
	if strings.TrimSpace(matchID) == "" {
		return fmt.Errorf("invalid match id")
	}
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	result, err := tx.Exec(ctx, `
UPDATE matches
SET last_message_at = $2
WHERE match_id = $1
`, matchID, at.UTC())
	if err != nil {
		return fmt.Errorf("touch match last message: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrMatchNotFound
	}

	return nil
}
