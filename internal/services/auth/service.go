package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SessionWriter interface {
	SessionStore
	Create(ctx context.Context, session SessionRecord) error
	Delete(ctx context.Context, token string) error
}

// Service issues credentials for the login collaborator and backs the
// resolver's strategies. The engine itself only uses Resolve.
type Service struct {
	jwt        *JWTManager
	sessions   SessionWriter
	resolver   *Resolver
	sessionTTL time.Duration
	now        func() time.Time
}

func NewService(jwtManager *JWTManager, sessions SessionWriter, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}

	return &Service{
		jwt:        jwtManager,
		sessions:   sessions,
		resolver:   NewResolver(NewBearerJWTStrategy(jwtManager), NewSessionTokenStrategy(sessions)),
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Resolve maps credential material to a Principal, or ErrUnauthorized.
func (s *Service) Resolve(ctx context.Context, credential string) (Principal, error) {
	return s.resolver.Resolve(ctx, credential)
}

// Issue creates both credential shapes for userID: a signed access token and
// an opaque session token stored with a TTL.
func (s *Service) Issue(ctx context.Context, userID string) (IssueResult, error) {
	if strings.TrimSpace(userID) == "" {
		return IssueResult{}, ErrInvalidInput
	}
	if s.jwt == nil || s.sessions == nil {
		return IssueResult{}, fmt.Errorf("auth dependencies are not configured")
	}

	accessToken, accessExpires, err := s.jwt.GenerateAccessToken(userID)
	if err != nil {
		return IssueResult{}, fmt.Errorf("generate access token: %w", err)
	}

	sessionToken := "session_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	session := SessionRecord{
		Token:     sessionToken,
		UserID:    userID,
		ExpiresAt: s.now().UTC().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return IssueResult{}, fmt.Errorf("create session: %w", err)
	}

	return IssueResult{
		AccessToken:   accessToken,
		SessionToken:  sessionToken,
		AccessExpires: accessExpires,
	}, nil
}

func (s *Service) Revoke(ctx context.Context, sessionToken string) error {
	if strings.TrimSpace(sessionToken) == "" {
		return ErrInvalidInput
	}
	if s.sessions == nil {
		return fmt.Errorf("session store is nil")
	}
	if err := s.sessions.Delete(ctx, sessionToken); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
