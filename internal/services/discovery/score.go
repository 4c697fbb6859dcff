package discovery

import (
	"math"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

// Scoring weights. The exact values are tuning knobs; only the resulting
// order is an observable contract.
const (
	ageFitWeight          = 40.0
	sharedRedFlagWeight   = 12.0
	sharedQualityWeight   = 8.0
	signalRichnessWeight  = 0.5
	signalRichnessCeiling = 5.0
)

// Score ranks a candidate for the viewer. Deterministic and total: any pair
// of well-formed profiles scores without error, missing optional fields just
// contribute nothing. Higher is better; ordering ties are broken by user id
// at the sort site, not here.
//
// The shape: closeness to the center of the viewer's preferred age range,
// shared red flags and shared negative qualities (shared chaos is the whole
// point of the product), and a small richness component so fuller profiles
// edge out sparse ones.
func Score(viewer, candidate model.Profile) float64 {
	score := 0.0

	score += ageFitWeight * ageFit(viewer, candidate)
	score += sharedRedFlagWeight * float64(overlapCount(viewer.RedFlags, candidate.RedFlags))
	score += sharedQualityWeight * float64(overlapCount(viewer.NegativeQualities, candidate.NegativeQualities))
	score += signalRichness(candidate)

	return score
}

// ageFit is 1.0 at the center of [pref_age_min, pref_age_max], falling off
// linearly to 0 at and beyond the bounds. Candidates already passed the
// bounds check in the filter; this only rewards being near the middle.
func ageFit(viewer, candidate model.Profile) float64 {
	if viewer.PrefAgeMin == nil || viewer.PrefAgeMax == nil || candidate.Age == nil {
		return 0
	}

	low := float64(*viewer.PrefAgeMin)
	high := float64(*viewer.PrefAgeMax)
	center := (low + high) / 2
	halfRange := (high - low) / 2
	if halfRange <= 0 {
		if float64(*candidate.Age) == center {
			return 1
		}
		return 0
	}

	fit := 1 - math.Abs(float64(*candidate.Age)-center)/halfRange
	if fit < 0 {
		return 0
	}
	return fit
}

func overlapCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, item := range a {
		set[item] = struct{}{}
	}
	count := 0
	for _, item := range b {
		if _, ok := set[item]; ok {
			count++
		}
	}
	return count
}

func signalRichness(candidate model.Profile) float64 {
	richness := signalRichnessWeight * float64(len(candidate.Photos)+len(candidate.Prompts))
	if richness > signalRichnessCeiling {
		return signalRichnessCeiling
	}
	return richness
}
