package swipes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/askorokhod/unhinged/backend/internal/domain/enums"
	"github.com/askorokhod/unhinged/backend/internal/domain/model"
	"github.com/askorokhod/unhinged/backend/internal/domain/rules"
)

type profileStoreStub struct {
	existing map[string]bool
	err      error
}

func (s *profileStoreStub) Exists(ctx context.Context, userID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.existing[userID], nil
}

type swipeStoreStub struct {
	appended  []model.Swipe
	likes     map[[2]string]bool
	appendErr error
}

func (s *swipeStoreStub) Append(ctx context.Context, swipe model.Swipe) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, swipe)
	if swipe.Action == enums.SwipeLike {
		if s.likes == nil {
			s.likes = make(map[[2]string]bool)
		}
		s.likes[[2]string{swipe.SwiperID, swipe.TargetID}] = true
	}
	return nil
}

func (s *swipeStoreStub) HasLike(ctx context.Context, swiperID, targetID string) (bool, error) {
	return s.likes[[2]string{swiperID, targetID}], nil
}

type matchStoreStub struct {
	matches map[string]model.Match
	creates int
}

func (s *matchStoreStub) CreateIfAbsent(ctx context.Context, matchID, userID, targetID string, now time.Time) (model.Match, bool, error) {
	u1, u2 := rules.PairKey(userID, targetID)
	key := u1 + "|" + u2
	if s.matches == nil {
		s.matches = make(map[string]model.Match)
	}
	if existing, ok := s.matches[key]; ok {
		return existing, false, nil
	}
	m := model.Match{ID: matchID, User1ID: u1, User2ID: u2, CreatedAt: now}
	s.matches[key] = m
	s.creates++
	return m, true, nil
}

func newTestService(existing ...string) (*Service, *swipeStoreStub, *matchStoreStub) {
	profiles := &profileStoreStub{existing: make(map[string]bool)}
	for _, id := range existing {
		profiles.existing[id] = true
	}
	swipeStore := &swipeStoreStub{}
	matchStore := &matchStoreStub{}
	return NewService(profiles, swipeStore, matchStore), swipeStore, matchStore
}

func TestRecordSwipePassAppendsOnly(t *testing.T) {
	svc, swipeStore, matchStore := newTestService("user_a", "user_b")

	res, err := svc.RecordSwipe(context.Background(), "user_a", "user_b", enums.SwipePass)
	if err != nil {
		t.Fatalf("RecordSwipe: %v", err)
	}
	if res.MatchCreated || res.Match != nil {
		t.Fatalf("pass must never create a match: %+v", res)
	}
	if len(swipeStore.appended) != 1 {
		t.Fatalf("expected one ledger entry, got %d", len(swipeStore.appended))
	}
	if matchStore.creates != 0 {
		t.Fatalf("match store must be untouched on pass")
	}
}

func TestRecordSwipeLikeWithoutReverseLike(t *testing.T) {
	svc, _, _ := newTestService("user_a", "user_b")

	res, err := svc.RecordSwipe(context.Background(), "user_a", "user_b", enums.SwipeLike)
	if err != nil {
		t.Fatalf("RecordSwipe: %v", err)
	}
	if res.MatchCreated {
		t.Fatalf("one-sided like must not create a match")
	}
}

func TestRecordSwipeMutualLikeCreatesMatch(t *testing.T) {
	svc, _, matchStore := newTestService("user_a", "user_b")

	if _, err := svc.RecordSwipe(context.Background(), "user_b", "user_a", enums.SwipeLike); err != nil {
		t.Fatalf("first like: %v", err)
	}

	res, err := svc.RecordSwipe(context.Background(), "user_a", "user_b", enums.SwipeLike)
	if err != nil {
		t.Fatalf("second like: %v", err)
	}
	if !res.MatchCreated || res.Match == nil {
		t.Fatalf("mutual like must create a match: %+v", res)
	}
	if res.Match.User1ID != "user_a" || res.Match.User2ID != "user_b" {
		t.Fatalf("match pair not canonical: %+v", res.Match)
	}
	if matchStore.creates != 1 {
		t.Fatalf("expected exactly one match row")
	}
}

func TestRecordSwipeRepeatedLikeReportsExistingMatch(t *testing.T) {
	svc, _, matchStore := newTestService("user_a", "user_b")

	if _, err := svc.RecordSwipe(context.Background(), "user_b", "user_a", enums.SwipeLike); err != nil {
		t.Fatalf("first like: %v", err)
	}
	first, err := svc.RecordSwipe(context.Background(), "user_a", "user_b", enums.SwipeLike)
	if err != nil {
		t.Fatalf("second like: %v", err)
	}

	// Liking again after the match exists still reports the match, and the
	// registry keeps a single row for the pair.
	again, err := svc.RecordSwipe(context.Background(), "user_a", "user_b", enums.SwipeLike)
	if err != nil {
		t.Fatalf("repeat like: %v", err)
	}
	if !again.MatchCreated || again.Match == nil {
		t.Fatalf("repeat like should report the match: %+v", again)
	}
	if again.Match.ID != first.Match.ID {
		t.Fatalf("repeat like returned a different match: %s vs %s", again.Match.ID, first.Match.ID)
	}
	if matchStore.creates != 1 {
		t.Fatalf("pair must map to exactly one match row, got %d", matchStore.creates)
	}
}

func TestRecordSwipeSelf(t *testing.T) {
	svc, swipeStore, _ := newTestService("user_a")

	if _, err := svc.RecordSwipe(context.Background(), "user_a", "user_a", enums.SwipeLike); !errors.Is(err, ErrSelfSwipe) {
		t.Fatalf("expected ErrSelfSwipe, got %v", err)
	}
	if len(swipeStore.appended) != 0 {
		t.Fatalf("self swipe must not reach the ledger")
	}
}

func TestRecordSwipeMissingTargetLeavesNoTrace(t *testing.T) {
	svc, swipeStore, _ := newTestService("user_a")

	if _, err := svc.RecordSwipe(context.Background(), "user_a", "user_ghost", enums.SwipeLike); !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}
	if len(swipeStore.appended) != 0 {
		t.Fatalf("failed swipe must not be recorded")
	}
}

func TestRecordSwipeInvalidAction(t *testing.T) {
	svc, _, _ := newTestService("user_a", "user_b")

	if _, err := svc.RecordSwipe(context.Background(), "user_a", "user_b", enums.SwipeAction("superlike")); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRecordSwipeIDsHavePrefix(t *testing.T) {
	svc, swipeStore, _ := newTestService("user_a", "user_b")

	res, err := svc.RecordSwipe(context.Background(), "user_a", "user_b", enums.SwipePass)
	if err != nil {
		t.Fatalf("RecordSwipe: %v", err)
	}
	if len(res.Swipe.ID) < 7 || res.Swipe.ID[:6] != "swipe_" {
		t.Fatalf("swipe id missing prefix: %s", res.Swipe.ID)
	}
	if swipeStore.appended[0].ID != res.Swipe.ID {
		t.Fatalf("ledger entry id mismatch")
	}
}
