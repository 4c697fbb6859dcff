package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Strategy attempts to resolve one credential shape. A strategy declines
// (ok=false, err=nil) when the credential is not its shape; it errors only on
// infrastructure failures. The resolver tries strategies in order, so adding
// a scheme never adds a branch to the engine.
type Strategy interface {
	Resolve(ctx context.Context, credential string) (Principal, bool, error)
}

type Resolver struct {
	strategies []Strategy
}

func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

func (r *Resolver) Resolve(ctx context.Context, credential string) (Principal, error) {
	if strings.TrimSpace(credential) == "" {
		return Principal{}, ErrUnauthorized
	}

	for _, strategy := range r.strategies {
		principal, ok, err := strategy.Resolve(ctx, credential)
		if err != nil {
			return Principal{}, fmt.Errorf("resolve principal: %w", err)
		}
		if ok {
			return principal, nil
		}
	}

	return Principal{}, ErrUnauthorized
}

// BearerJWTStrategy resolves HS256 access tokens.
type BearerJWTStrategy struct {
	jwt *JWTManager
}

func NewBearerJWTStrategy(jwt *JWTManager) *BearerJWTStrategy {
	return &BearerJWTStrategy{jwt: jwt}
}

func (s *BearerJWTStrategy) Resolve(_ context.Context, credential string) (Principal, bool, error) {
	if s.jwt == nil {
		return Principal{}, false, nil
	}

	userID, err := s.jwt.ParseAccessToken(credential)
	if err != nil {
		// Not a valid JWT for us; let the next strategy try.
		return Principal{}, false, nil
	}

	return Principal{UserID: userID}, true, nil
}

type SessionStore interface {
	Get(ctx context.Context, token string) (SessionRecord, error)
}

// SessionTokenStrategy resolves opaque session tokens against the store.
type SessionTokenStrategy struct {
	sessions SessionStore
	now      func() time.Time
}

func NewSessionTokenStrategy(sessions SessionStore) *SessionTokenStrategy {
	return &SessionTokenStrategy{
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *SessionTokenStrategy) Resolve(ctx context.Context, credential string) (Principal, bool, error) {
	if s.sessions == nil {
		return Principal{}, false, nil
	}

	session, err := s.sessions.Get(ctx, credential)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Principal{}, false, nil
		}
		return Principal{}, false, fmt.Errorf("get session: %w", err)
	}
	if s.now().After(session.ExpiresAt) {
		return Principal{}, false, nil
	}

	return Principal{UserID: session.UserID}, true, nil
}
