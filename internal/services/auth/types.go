package auth

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionNotFound = errors.New("session not found")
)

// Principal is the resolved identity of the caller. The engine only ever
// consumes the user id; how the credential resolved is invisible past here.
type Principal struct {
	UserID string
}

type SessionRecord struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

type IssueResult struct {
	AccessToken   string
	SessionToken  string
	AccessExpires time.Time
}
