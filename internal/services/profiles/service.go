package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
	"github.com/askorokhod/unhinged/backend/internal/domain/rules"
	pgrepo "github.com/askorokhod/unhinged/backend/internal/repo/postgres"
)

const (
	minAge    = 18
	maxAge    = 120
	maxBioLen = 2000
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("profile not found")
)

type Store interface {
	Get(ctx context.Context, userID string) (model.Profile, error)
	Update(ctx context.Context, userID string, mutate func(*model.Profile) error) (model.Profile, error)
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) Get(ctx context.Context, userID string) (model.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Profile{}, ErrValidation
	}

	p, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return model.Profile{}, ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	return p, nil
}

// Apply merges a partial update into the stored profile. Only fields present
// in the patch change; profile_complete is always recomputed from the merged
// state and never taken from the caller.
func (s *Service) Apply(ctx context.Context, userID string, patch model.ProfilePatch) (model.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Profile{}, ErrValidation
	}
	if err := validatePatch(patch); err != nil {
		return model.Profile{}, err
	}

	updated, err := s.store.Update(ctx, userID, func(p *model.Profile) error {
		mergePatch(p, patch)
		p.ProfileComplete = rules.ProfileComplete(p.Age, p.Bio, p.RedFlags, p.Photos)
		p.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return model.Profile{}, ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	return updated, nil
}

func validatePatch(patch model.ProfilePatch) error {
	if patch.Age != nil && (*patch.Age < minAge || *patch.Age > maxAge) {
		return fmt.Errorf("%w: age must be between %d and %d", ErrValidation, minAge, maxAge)
	}
	if patch.Bio != nil && len(*patch.Bio) > maxBioLen {
		return fmt.Errorf("%w: bio is too long", ErrValidation)
	}
	if patch.PrefAgeMin != nil && *patch.PrefAgeMin < minAge {
		return fmt.Errorf("%w: pref_age_min must be at least %d", ErrValidation, minAge)
	}
	if patch.PrefAgeMin != nil && patch.PrefAgeMax != nil && *patch.PrefAgeMin > *patch.PrefAgeMax {
		return fmt.Errorf("%w: pref_age_min exceeds pref_age_max", ErrValidation)
	}
	return nil
}

func mergePatch(p *model.Profile, patch model.ProfilePatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.Picture != nil {
		p.Picture = *patch.Picture
	}
	if patch.Age != nil {
		p.Age = patch.Age
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.GenderIdentity != nil {
		p.GenderIdentity = *patch.GenderIdentity
	}
	if patch.Pronouns != nil {
		p.Pronouns = *patch.Pronouns
	}
	if patch.LookingFor != nil {
		p.LookingFor = *patch.LookingFor
	}
	if patch.RedFlags != nil {
		p.RedFlags = *patch.RedFlags
	}
	if patch.DealbreakerRedFlags != nil {
		p.DealbreakerRedFlags = *patch.DealbreakerRedFlags
	}
	if patch.NegativeQualities != nil {
		p.NegativeQualities = *patch.NegativeQualities
	}
	if patch.Photos != nil {
		p.Photos = *patch.Photos
	}
	if patch.WorstPhotoCaption != nil {
		p.WorstPhotoCaption = *patch.WorstPhotoCaption
	}
	if patch.Prompts != nil {
		p.Prompts = *patch.Prompts
	}
	if patch.PrefAgeMin != nil {
		p.PrefAgeMin = patch.PrefAgeMin
	}
	if patch.PrefAgeMax != nil {
		p.PrefAgeMax = patch.PrefAgeMax
	}
	if patch.PrefGenders != nil {
		p.PrefGenders = *patch.PrefGenders
	}
	if patch.PrefDistanceKM != nil {
		p.PrefDistanceKM = patch.PrefDistanceKM
	}
}
