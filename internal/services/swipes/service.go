package swipes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/askorokhod/unhinged/backend/internal/domain/enums"
	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrSelfSwipe      = errors.New("cannot swipe on yourself")
	ErrTargetNotFound = errors.New("swipe target not found")
)

type ProfileStore interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type SwipeStore interface {
	Append(ctx context.Context, swipe model.Swipe) error
	HasLike(ctx context.Context, swiperID, targetID string) (bool, error)
}

type MatchStore interface {
	CreateIfAbsent(ctx context.Context, matchID, userID, targetID string, now time.Time) (model.Match, bool, error)
}

// Result reports the outcome of one swipe. Match is set only when
// MatchCreated is true.
type Result struct {
	Swipe        model.Swipe
	MatchCreated bool
	Match        *model.Match
}

type Service struct {
	profiles ProfileStore
	swipes   SwipeStore
	matches  MatchStore
	now      func() time.Time
}

func NewService(profiles ProfileStore, swipes SwipeStore, matches MatchStore) *Service {
	return &Service{
		profiles: profiles,
		swipes:   swipes,
		matches:  matches,
		now:      time.Now,
	}
}

// RecordSwipe appends one swipe to the ledger and, for a like, checks for a
// reverse like and creates the match. The target existence check runs before
// any write: a swipe on a missing user leaves no trace in the ledger.
//
// The match insert is conditional on the canonical pair key, so two mutual
// likes racing each other settle on a single match row; the loser reports the
// winner's match.
func (s *Service) RecordSwipe(ctx context.Context, swiperID, targetID string, action enums.SwipeAction) (Result, error) {
	swiperID = strings.TrimSpace(swiperID)
	targetID = strings.TrimSpace(targetID)

	if swiperID == "" || targetID == "" {
		return Result{}, fmt.Errorf("%w: swiper and target ids are required", ErrValidation)
	}
	if !action.Valid() {
		return Result{}, fmt.Errorf("%w: unknown swipe action %q", ErrValidation, action)
	}
	if swiperID == targetID {
		return Result{}, ErrSelfSwipe
	}

	exists, err := s.profiles.Exists(ctx, targetID)
	if err != nil {
		return Result{}, fmt.Errorf("check swipe target: %w", err)
	}
	if !exists {
		return Result{}, ErrTargetNotFound
	}

	swipe := model.Swipe{
		ID:        "swipe_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		SwiperID:  swiperID,
		TargetID:  targetID,
		Action:    action,
		CreatedAt: s.now().UTC(),
	}
	if err := s.swipes.Append(ctx, swipe); err != nil {
		return Result{}, fmt.Errorf("append swipe: %w", err)
	}

	if action != enums.SwipeLike {
		return Result{Swipe: swipe}, nil
	}

	reverse, err := s.swipes.HasLike(ctx, targetID, swiperID)
	if err != nil {
		return Result{}, fmt.Errorf("check reverse like: %w", err)
	}
	if !reverse {
		return Result{Swipe: swipe}, nil
	}

	matchID := "match_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	match, _, err := s.matches.CreateIfAbsent(ctx, matchID, swiperID, targetID, s.now().UTC())
	if err != nil {
		return Result{}, fmt.Errorf("create match: %w", err)
	}

	return Result{Swipe: swipe, MatchCreated: true, Match: &match}, nil
}
