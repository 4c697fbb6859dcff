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

// SwipeRepo is the append-only swipe ledger. Rows are never updated or
// deleted; re-swiping the same target appends another fact.
type SwipeRepo struct {
	pool *pgxpool.Pool
}

func NewSwipeRepo(pool *pgxpool.Pool) *SwipeRepo {
	return &SwipeRepo{pool: pool}
}

func (r *SwipeRepo) Append(ctx context.Context, swipe model.Swipe) error {
	if strings.TrimSpace(swipe.ID) == "" ||
		strings.TrimSpace(swipe.SwiperID) == "" ||
		strings.TrimSpace(swipe.TargetID) == "" ||
		!swipe.Action.Valid() {
		return fmt.Errorf("invalid swipe payload")
	}
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	createdAt := swipe.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO swipes (
	swipe_id,
	swiper_id,
	target_id,
	action,
	created_at
) VALUES ($1, $2, $3, $4, $5)
`, swipe.ID, swipe.SwiperID, swipe.TargetID, string(swipe.Action), createdAt.UTC()); err != nil {
		return fmt.Errorf("append swipe: %w", err)
	}

	return nil
}

// TargetsSwipedBy returns every target the user has swiped on, any action.
func (r *SwipeRepo) TargetsSwipedBy(ctx context.Context, swiperID string) (map[string]struct{}, error) {
	if strings.TrimSpace(swiperID) == "" {
		return nil, fmt.Errorf("invalid swiper id")
	}
	if r.pool == nil {
		return map[string]struct{}{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT DISTINCT target_id
FROM swipes
WHERE swiper_id = $1
`, swiperID)
	if err != nil {
		return nil, fmt.Errorf("list swiped targets: %w", err)
	}
	defer rows.Close()

	targets := make(map[string]struct{})
	for rows.Next() {
		var targetID string
		if err := rows.Scan(&targetID); err != nil {
			return nil, fmt.Errorf("scan swiped target: %w", err)
		}
		targets[targetID] = struct{}{}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate swiped targets: %w", rows.Err())
	}

	return targets, nil
}

// HasLike reports whether swiperID has ever recorded a like on targetID.
func (r *SwipeRepo) HasLike(ctx context.Context, swiperID, targetID string) (bool, error) {
	if strings.TrimSpace(swiperID) == "" || strings.TrimSpace(targetID) == "" {
		return false, fmt.Errorf("invalid like lookup payload")
	}
	if r.pool == nil {
		return false, fmt.Errorf("postgres pool is nil")
	}

	var one int
	err := r.pool.QueryRow(ctx, `
SELECT 1
FROM swipes
WHERE swiper_id = $1 AND target_id = $2 AND action = 'like'
LIMIT 1
`, swiperID, targetID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup reciprocal like: %w", err)
	}

	return true, nil
}
