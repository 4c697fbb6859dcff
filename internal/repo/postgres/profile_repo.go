package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

const profileColumns = `
	user_id,
	COALESCE(email, ''),
	COALESCE(name, ''),
	COALESCE(display_name, ''),
	COALESCE(picture, ''),
	age,
	COALESCE(bio, ''),
	COALESCE(gender_identity, ''),
	COALESCE(pronouns, ''),
	COALESCE(looking_for, ''),
	COALESCE(red_flags, '{}'),
	COALESCE(dealbreaker_red_flags, '{}'),
	COALESCE(negative_qualities, '{}'),
	COALESCE(photos, '{}'),
	COALESCE(worst_photo_caption, ''),
	COALESCE(prompts, '[]'::jsonb),
	pref_age_min,
	pref_age_max,
	COALESCE(pref_genders, '{}'),
	pref_distance_km,
	profile_complete,
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (model.Profile, error) {
	var (
		p       model.Profile
		prompts []byte
	)
	err := row.Scan(
		&p.UserID,
		&p.Email,
		&p.Name,
		&p.DisplayName,
		&p.Picture,
		&p.Age,
		&p.Bio,
		&p.GenderIdentity,
		&p.Pronouns,
		&p.LookingFor,
		&p.RedFlags,
		&p.DealbreakerRedFlags,
		&p.NegativeQualities,
		&p.Photos,
		&p.WorstPhotoCaption,
		&prompts,
		&p.PrefAgeMin,
		&p.PrefAgeMax,
		&p.PrefGenders,
		&p.PrefDistanceKM,
		&p.ProfileComplete,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, err
	}

	if len(prompts) > 0 {
		if err := json.Unmarshal(prompts, &p.Prompts); err != nil {
			return model.Profile{}, fmt.Errorf("decode profile prompts: %w", err)
		}
	}

	return p, nil
}

func (r *ProfileRepo) Get(ctx context.Context, userID string) (model.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Profile{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return model.Profile{}, fmt.Errorf("postgres pool is nil")
	}

	row := r.pool.QueryRow(ctx, `
SELECT`+profileColumns+`
FROM profiles
WHERE user_id = $1
`, userID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return p, nil
}

func (r *ProfileRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, userID string) (model.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Profile{}, fmt.Errorf("invalid user id")
	}
	if tx == nil {
		return model.Profile{}, fmt.Errorf("transaction is required")
	}

	row := tx.QueryRow(ctx, `
SELECT`+profileColumns+`
FROM profiles
WHERE user_id = $1
FOR UPDATE
`, userID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("get profile for update: %w", err)
	}

	return p, nil
}

func (r *ProfileRepo) Exists(ctx context.Context, userID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return false, fmt.Errorf("postgres pool is nil")
	}

	var one int
	err := r.pool.QueryRow(ctx, `
SELECT 1
FROM profiles
WHERE user_id = $1
`, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check profile exists: %w", err)
	}

	return true, nil
}

// ListComplete scans profiles visible to discovery. The limit is a guard
// against unbounded scans, not part of the result contract.
func (r *ProfileRepo) ListComplete(ctx context.Context, limit int) ([]model.Profile, error) {
	if limit <= 0 {
		limit = 500
	}
	if r.pool == nil {
		return []model.Profile{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT`+profileColumns+`
FROM profiles
WHERE profile_complete = TRUE
ORDER BY created_at ASC, user_id ASC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list complete profiles: %w", err)
	}
	defer rows.Close()

	items := make([]model.Profile, 0, limit)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan complete profile: %w", err)
		}
		items = append(items, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate complete profiles: %w", rows.Err())
	}

	return items, nil
}

func (r *ProfileRepo) Create(ctx context.Context, p model.Profile) error {
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("invalid profile payload")
	}
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	prompts, err := json.Marshal(p.Prompts)
	if err != nil {
		return fmt.Errorf("encode profile prompts: %w", err)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO profiles (
	user_id, email, name, display_name, picture,
	age, bio, gender_identity, pronouns, looking_for,
	red_flags, dealbreaker_red_flags, negative_qualities,
	photos, worst_photo_caption, prompts,
	pref_age_min, pref_age_max, pref_genders, pref_distance_km,
	profile_complete, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5,
	$6, $7, $8, $9, $10,
	$11, $12, $13,
	$14, $15, $16,
	$17, $18, $19, $20,
	$21, $22, $22
)
`,
		p.UserID, p.Email, p.Name, p.DisplayName, p.Picture,
		p.Age, p.Bio, p.GenderIdentity, p.Pronouns, p.LookingFor,
		p.RedFlags, p.DealbreakerRedFlags, p.NegativeQualities,
		p.Photos, p.WorstPhotoCaption, prompts,
		p.PrefAgeMin, p.PrefAgeMax, p.PrefGenders, p.PrefDistanceKM,
		p.ProfileComplete, p.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	return nil
}

// Save writes the full merged profile row. Callers hold the row lock from
// GetForUpdate so merge updates do not lose concurrent writes.
func (r *ProfileRepo) Save(ctx context.Context, tx pgx.Tx, p model.Profile) error {
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("invalid profile payload")
	}
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	prompts, err := json.Marshal(p.Prompts)
	if err != nil {
		return fmt.Errorf("encode profile prompts: %w", err)
	}

	result, err := tx.Exec(ctx, `
UPDATE profiles SET
	name = $2,
	display_name = $3,
	picture = $4,
	age = $5,
	bio = $6,
	gender_identity = $7,
	pronouns = $8,
	looking_for = $9,
	red_flags = $10,
	dealbreaker_red_flags = $11,
	negative_qualities = $12,
	photos = $13,
	worst_photo_caption = $14,
	prompts = $15,
	pref_age_min = $16,
	pref_age_max = $17,
	pref_genders = $18,
	pref_distance_km = $19,
	profile_complete = $20,
	updated_at = NOW()
WHERE user_id = $1
`,
		p.UserID, p.Name, p.DisplayName, p.Picture,
		p.Age, p.Bio, p.GenderIdentity, p.Pronouns, p.LookingFor,
		p.RedFlags, p.DealbreakerRedFlags, p.NegativeQualities,
		p.Photos, p.WorstPhotoCaption, prompts,
		p.PrefAgeMin, p.PrefAgeMax, p.PrefGenders, p.PrefDistanceKM,
		p.ProfileComplete,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// Update runs mutate against the locked profile row and saves the result in
// one transaction. The mutated profile is returned as stored.
func (r *ProfileRepo) Update(ctx context.Context, userID string, mutate func(*model.Profile) error) (model.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Profile{}, fmt.Errorf("user id is required")
	}
	if mutate == nil {
		return model.Profile{}, fmt.Errorf("mutate func is required")
	}

	var updated model.Profile
	err := WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		p, err := r.GetForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := mutate(&p); err != nil {
			return err
		}
		if err := r.Save(ctx, tx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return model.Profile{}, err
	}

	return updated, nil
}
