package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	authsvc "github.com/askorokhod/unhinged/backend/internal/services/auth"
)

func newTestRepo(t *testing.T) (*SessionRepo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRepo(client), mr
}

func TestSessionRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second).UTC()
	record := authsvc.SessionRecord{
		Token:     "session_deadbeef",
		UserID:    "user_abc123",
		ExpiresAt: expiresAt,
	}

	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := repo.Get(ctx, "session_deadbeef")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.UserID != "user_abc123" {
		t.Fatalf("unexpected user id: %q", got.UserID)
	}
	if !got.ExpiresAt.Equal(expiresAt) {
		t.Fatalf("unexpected expiry: got %v want %v", got.ExpiresAt, expiresAt)
	}
}

func TestSessionExpiresWithTTL(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	record := authsvc.SessionRecord{
		Token:     "session_shortlived",
		UserID:    "user_abc123",
		ExpiresAt: time.Now().Add(30 * time.Second),
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("create session: %v", err)
	}

	mr.FastForward(time.Minute)

	if _, err := repo.Get(ctx, "session_shortlived"); !errors.Is(err, authsvc.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after TTL, got %v", err)
	}
}

func TestSessionDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	record := authsvc.SessionRecord{
		Token:     "session_gone",
		UserID:    "user_abc123",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := repo.Delete(ctx, "session_gone"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := repo.Get(ctx, "session_gone"); !errors.Is(err, authsvc.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestCreateRejectsEmptyToken(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Create(context.Background(), authsvc.SessionRecord{UserID: "user_abc123"})
	if !errors.Is(err, authsvc.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
