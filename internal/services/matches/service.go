package matches

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
	pgrepo "github.com/askorokhod/unhinged/backend/internal/repo/postgres"
)

const (
	defaultListLimit    = 100
	defaultMessageLimit = 500
	maxMessageLen       = 4000
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("match not found")
)

type MatchStore interface {
	GetForUser(ctx context.Context, matchID, userID string) (model.Match, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]pgrepo.MatchListRecord, error)
}

type MessageStore interface {
	ListByMatch(ctx context.Context, matchID string, limit int) ([]model.Message, error)
	LastByMatch(ctx context.Context, matchID string) (model.Message, bool, error)
}

type MessageSender interface {
	SendMessage(ctx context.Context, msg model.Message) error
}

// Summary is one match-list entry: the match, the counterpart summary, and
// the most recent message if any.
type Summary struct {
	Record      pgrepo.MatchListRecord
	LastMessage *model.Message
}

type Service struct {
	matches  MatchStore
	messages MessageStore
	sender   MessageSender
	now      func() time.Time
}

func NewService(matches MatchStore, messages MessageStore, sender MessageSender) *Service {
	return &Service{
		matches:  matches,
		messages: messages,
		sender:   sender,
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context, userID string) ([]Summary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrValidation
	}

	records, err := s.matches.ListForUser(ctx, userID, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	items := make([]Summary, 0, len(records))
	for _, rec := range records {
		summary := Summary{Record: rec}
		last, ok, err := s.messages.LastByMatch(ctx, rec.MatchID)
		if err != nil {
			return nil, fmt.Errorf("load last message: %w", err)
		}
		if ok {
			summary.LastMessage = &last
		}
		items = append(items, summary)
	}

	return items, nil
}

// Messages returns the history of a match the user belongs to. Membership is
// the access check: a match id that exists but belongs to two other users is
// indistinguishable from one that does not exist.
func (s *Service) Messages(ctx context.Context, userID, matchID string) ([]model.Message, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(matchID) == "" {
		return nil, ErrValidation
	}

	if _, err := s.matches.GetForUser(ctx, matchID, userID); err != nil {
		if errors.Is(err, pgrepo.ErrMatchNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load match: %w", err)
	}

	msgs, err := s.messages.ListByMatch(ctx, matchID, defaultMessageLimit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return msgs, nil
}

func (s *Service) SendMessage(ctx context.Context, userID, matchID, content string) (model.Message, error) {
	content = strings.TrimSpace(content)
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(matchID) == "" {
		return model.Message{}, ErrValidation
	}
	if content == "" {
		return model.Message{}, fmt.Errorf("%w: message content is required", ErrValidation)
	}
	if len(content) > maxMessageLen {
		return model.Message{}, fmt.Errorf("%w: message is too long", ErrValidation)
	}

	if _, err := s.matches.GetForUser(ctx, matchID, userID); err != nil {
		if errors.Is(err, pgrepo.ErrMatchNotFound) {
			return model.Message{}, ErrNotFound
		}
		return model.Message{}, fmt.Errorf("load match: %w", err)
	}

	msg := model.Message{
		ID:        "msg_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		MatchID:   matchID,
		SenderID:  userID,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sender.SendMessage(ctx, msg); err != nil {
		return model.Message{}, fmt.Errorf("send message: %w", err)
	}

	return msg, nil
}
