package discovery

import (
	"testing"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

func TestScoreDeterministic(t *testing.T) {
	viewer := completeProfile("user_viewer", 25)
	viewer.PrefAgeMin = intptr(20)
	viewer.PrefAgeMax = intptr(30)
	viewer.RedFlags = []string{"i double text", "i reply with just 'lol'"}
	viewer.NegativeQualities = []string{"chronically late"}

	candidate := completeProfile("user_cand", 25)
	candidate.RedFlags = []string{"i double text"}
	candidate.NegativeQualities = []string{"chronically late"}

	first := Score(viewer, candidate)
	for i := 0; i < 10; i++ {
		if got := Score(viewer, candidate); got != first {
			t.Fatalf("score not deterministic: %v vs %v", got, first)
		}
	}
}

func TestScorePrefersAgeRangeCenter(t *testing.T) {
	viewer := completeProfile("user_viewer", 25)
	viewer.PrefAgeMin = intptr(20)
	viewer.PrefAgeMax = intptr(30)

	center := completeProfile("user_center", 25)
	edge := completeProfile("user_edge", 30)

	if Score(viewer, center) <= Score(viewer, edge) {
		t.Fatalf("center-of-range candidate should outscore edge candidate")
	}
}

func TestScoreNoAgeBoundsContributesNothing(t *testing.T) {
	viewer := completeProfile("user_viewer", 25)

	a := completeProfile("user_a", 18)
	b := completeProfile("user_b", 60)

	if Score(viewer, a) != Score(viewer, b) {
		t.Fatalf("without age bounds, age must not affect the score")
	}
}

func TestScoreRedFlagOverlapMonotone(t *testing.T) {
	viewer := completeProfile("user_viewer", 25)
	viewer.RedFlags = []string{"a", "b", "c"}

	one := completeProfile("user_one", 25)
	one.RedFlags = []string{"a"}
	two := completeProfile("user_two", 25)
	two.RedFlags = []string{"a", "b"}

	if Score(viewer, two) <= Score(viewer, one) {
		t.Fatalf("more shared red flags must score strictly higher")
	}
}

func TestScoreSharedQualitiesCount(t *testing.T) {
	viewer := completeProfile("user_viewer", 25)
	viewer.NegativeQualities = []string{"commitment issues", "chews loudly"}

	plain := completeProfile("user_plain", 25)
	kindred := completeProfile("user_kindred", 25)
	kindred.NegativeQualities = []string{"chews loudly"}

	if Score(viewer, kindred) <= Score(viewer, plain) {
		t.Fatalf("shared negative qualities must raise the score")
	}
}

func TestScoreRichnessIsCapped(t *testing.T) {
	viewer := completeProfile("user_viewer", 25)

	full := completeProfile("user_full", 25)
	full.Photos = []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i := 0; i < 8; i++ {
		full.Prompts = append(full.Prompts, model.Prompt{ID: "p", Question: "q", Answer: "a"})
	}

	fuller := full
	fuller.Photos = append([]string{}, full.Photos...)
	fuller.Photos = append(fuller.Photos, "i", "j")

	if Score(viewer, full) != Score(viewer, fuller) {
		t.Fatalf("richness beyond the cap must not change the score")
	}
}

func TestScoreIgnoresDistancePreference(t *testing.T) {
	viewer := completeProfile("user_viewer", 25)
	viewer.PrefDistanceKM = intptr(5)

	near := completeProfile("user_near", 25)
	base := Score(viewer, near)

	viewer.PrefDistanceKM = intptr(5000)
	if Score(viewer, near) != base {
		t.Fatalf("distance preference is cosmetic and must not affect scoring")
	}
}
