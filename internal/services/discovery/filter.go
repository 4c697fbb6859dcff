package discovery

import (
	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

// FilterCandidates narrows the candidate pool to the profiles the viewer may
// be shown. Pure: no side effects, input order preserved. The caller is
// responsible for handing in only complete profiles.
//
// A candidate is dropped by the first rule it fails:
//  1. self
//  2. already swiped, regardless of action
//  3. outside the viewer's age bounds (inclusive; an unset candidate age
//     fails any set bound, no bounds means no age filtering at all)
//  4. gender not in pref_genders (empty pref_genders is unrestricted)
//  5. candidate red flags intersect the viewer's dealbreakers
func FilterCandidates(viewer model.Profile, pool []model.Profile, alreadySwiped map[string]struct{}) []model.Profile {
	eligible := make([]model.Profile, 0, len(pool))

	for _, candidate := range pool {
		if candidate.UserID == viewer.UserID {
			continue
		}
		if _, swiped := alreadySwiped[candidate.UserID]; swiped {
			continue
		}
		if !withinAgeBounds(viewer, candidate) {
			continue
		}
		if !matchesGenderPrefs(viewer, candidate) {
			continue
		}
		if hasAnyOverlap(candidate.RedFlags, viewer.DealbreakerRedFlags) {
			continue
		}
		eligible = append(eligible, candidate)
	}

	return eligible
}

func withinAgeBounds(viewer, candidate model.Profile) bool {
	if viewer.PrefAgeMin == nil && viewer.PrefAgeMax == nil {
		return true
	}
	if candidate.Age == nil {
		return false
	}
	if viewer.PrefAgeMin != nil && *candidate.Age < *viewer.PrefAgeMin {
		return false
	}
	if viewer.PrefAgeMax != nil && *candidate.Age > *viewer.PrefAgeMax {
		return false
	}
	return true
}

func matchesGenderPrefs(viewer, candidate model.Profile) bool {
	if len(viewer.PrefGenders) == 0 {
		return true
	}
	if candidate.GenderIdentity == "" {
		return false
	}
	for _, gender := range viewer.PrefGenders {
		if candidate.GenderIdentity == gender {
			return true
		}
	}
	return false
}

func hasAnyOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, item := range a {
		set[item] = struct{}{}
	}
	for _, item := range b {
		if _, ok := set[item]; ok {
			return true
		}
	}
	return false
}
