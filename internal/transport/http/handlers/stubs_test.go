package handlers

import (
	"context"
	"time"

	"github.com/askorokhod/unhinged/backend/internal/domain/enums"
	"github.com/askorokhod/unhinged/backend/internal/domain/model"
	"github.com/askorokhod/unhinged/backend/internal/domain/rules"
	pgrepo "github.com/askorokhod/unhinged/backend/internal/repo/postgres"
)

// In-memory stand-ins for the postgres repos, shared by the handler tests.

type fakeProfileStore struct {
	profiles map[string]model.Profile
}

func newFakeProfileStore(profiles ...model.Profile) *fakeProfileStore {
	s := &fakeProfileStore{profiles: make(map[string]model.Profile)}
	for _, p := range profiles {
		s.profiles[p.UserID] = p
	}
	return s
}

func (s *fakeProfileStore) Get(ctx context.Context, userID string) (model.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return model.Profile{}, pgrepo.ErrProfileNotFound
	}
	return p, nil
}

func (s *fakeProfileStore) Update(ctx context.Context, userID string, mutate func(*model.Profile) error) (model.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return model.Profile{}, pgrepo.ErrProfileNotFound
	}
	if err := mutate(&p); err != nil {
		return model.Profile{}, err
	}
	s.profiles[userID] = p
	return p, nil
}

func (s *fakeProfileStore) Exists(ctx context.Context, userID string) (bool, error) {
	_, ok := s.profiles[userID]
	return ok, nil
}

func (s *fakeProfileStore) ListComplete(ctx context.Context, limit int) ([]model.Profile, error) {
	items := make([]model.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		if p.ProfileComplete {
			items = append(items, p)
		}
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

type fakeSwipeStore struct {
	swipes []model.Swipe
}

func (s *fakeSwipeStore) Append(ctx context.Context, swipe model.Swipe) error {
	s.swipes = append(s.swipes, swipe)
	return nil
}

func (s *fakeSwipeStore) TargetsSwipedBy(ctx context.Context, swiperID string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for _, sw := range s.swipes {
		if sw.SwiperID == swiperID {
			out[sw.TargetID] = struct{}{}
		}
	}
	return out, nil
}

func (s *fakeSwipeStore) HasLike(ctx context.Context, swiperID, targetID string) (bool, error) {
	for _, sw := range s.swipes {
		if sw.SwiperID == swiperID && sw.TargetID == targetID && sw.Action == enums.SwipeLike {
			return true, nil
		}
	}
	return false, nil
}

type fakeMatchStore struct {
	byPair map[string]model.Match
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{byPair: make(map[string]model.Match)}
}

func (s *fakeMatchStore) CreateIfAbsent(ctx context.Context, matchID, userID, targetID string, now time.Time) (model.Match, bool, error) {
	u1, u2 := rules.PairKey(userID, targetID)
	key := u1 + "|" + u2
	if existing, ok := s.byPair[key]; ok {
		return existing, false, nil
	}
	m := model.Match{ID: matchID, User1ID: u1, User2ID: u2, CreatedAt: now}
	s.byPair[key] = m
	return m, true, nil
}

func (s *fakeMatchStore) GetForUser(ctx context.Context, matchID, userID string) (model.Match, error) {
	for _, m := range s.byPair {
		if m.ID == matchID && (m.User1ID == userID || m.User2ID == userID) {
			return m, nil
		}
	}
	return model.Match{}, pgrepo.ErrMatchNotFound
}

func (s *fakeMatchStore) ListForUser(ctx context.Context, userID string, limit int) ([]pgrepo.MatchListRecord, error) {
	items := make([]pgrepo.MatchListRecord, 0)
	for _, m := range s.byPair {
		if m.User1ID != userID && m.User2ID != userID {
			continue
		}
		items = append(items, pgrepo.MatchListRecord{
			MatchID:       m.ID,
			OtherUserID:   m.OtherUser(userID),
			CreatedAt:     m.CreatedAt,
			LastMessageAt: m.LastMessageAt,
		})
	}
	return items, nil
}

type fakeMessageStore struct {
	byMatch map[string][]model.Message
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{byMatch: make(map[string][]model.Message)}
}

func (s *fakeMessageStore) ListByMatch(ctx context.Context, matchID string, limit int) ([]model.Message, error) {
	return s.byMatch[matchID], nil
}

func (s *fakeMessageStore) LastByMatch(ctx context.Context, matchID string) (model.Message, bool, error) {
	msgs := s.byMatch[matchID]
	if len(msgs) == 0 {
		return model.Message{}, false, nil
	}
	return msgs[len(msgs)-1], true, nil
}

func (s *fakeMessageStore) SendMessage(ctx context.Context, msg model.Message) error {
	s.byMatch[msg.MatchID] = append(s.byMatch[msg.MatchID], msg)
	return nil
}
