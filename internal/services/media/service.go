package media

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrPhotoLimitReached = errors.New("photo limit reached")
	ErrPhotoNotFound     = errors.New("photo not found")
)

const (
	signedURLTTL = 5 * time.Minute
	maxPhotos    = 6
	maxPhotoSize = 10 << 20
)

// Profiles is the slice of the profile service the photo flow needs: read
// the current photo keys, write them back through the merge update so
// profile_complete stays in sync.
type Profiles interface {
	Get(ctx context.Context, userID string) (model.Profile, error)
	Apply(ctx context.Context, userID string, patch model.ProfilePatch) (model.Profile, error)
}

type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	PutPhoto(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type Service struct {
	profiles Profiles
	storage  ObjectStorage
}

func NewService(profiles Profiles, storage ObjectStorage) *Service {
	return &Service{
		profiles: profiles,
		storage:  storage,
	}
}

// UploadPhoto stores the file, appends its key to the profile's photo list,
// and returns the updated profile with a viewing URL for the new photo.
func (s *Service) UploadPhoto(ctx context.Context, userID, fileName, contentType string, body io.Reader, size int64) (model.Profile, string, error) {
	if strings.TrimSpace(userID) == "" || body == nil || size <= 0 {
		return model.Profile{}, "", ErrValidation
	}
	if size > maxPhotoSize {
		return model.Profile{}, "", fmt.Errorf("%w: photo exceeds %d bytes", ErrValidation, maxPhotoSize)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return model.Profile{}, "", fmt.Errorf("%w: unsupported content type %q", ErrValidation, contentType)
	}
	if s.profiles == nil || s.storage == nil {
		return model.Profile{}, "", fmt.Errorf("media dependencies are not configured")
	}

	current, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return model.Profile{}, "", err
	}
	if len(current.Photos) >= maxPhotos {
		return model.Profile{}, "", ErrPhotoLimitReached
	}

	if err := s.storage.EnsureBucket(ctx); err != nil {
		return model.Profile{}, "", fmt.Errorf("ensure bucket: %w", err)
	}

	key, err := objectKey(userID, fileName)
	if err != nil {
		return model.Profile{}, "", err
	}
	if err := s.storage.PutPhoto(ctx, key, body, size, contentType); err != nil {
		return model.Profile{}, "", fmt.Errorf("upload photo: %w", err)
	}

	photos := append(append([]string{}, current.Photos...), key)
	updated, err := s.profiles.Apply(ctx, userID, model.ProfilePatch{Photos: &photos})
	if err != nil {
		// Keep the bucket tidy when the profile write loses.
		_ = s.storage.Delete(ctx, key)
		return model.Profile{}, "", err
	}

	url, err := s.storage.PresignGet(ctx, key, signedURLTTL)
	if err != nil {
		return updated, "", nil
	}

	return updated, url, nil
}

// RemovePhoto drops the key from the profile and deletes the object.
func (s *Service) RemovePhoto(ctx context.Context, userID, key string) (model.Profile, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(key) == "" {
		return model.Profile{}, ErrValidation
	}

	current, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}

	photos := make([]string, 0, len(current.Photos))
	found := false
	for _, existing := range current.Photos {
		if existing == key {
			found = true
			continue
		}
		photos = append(photos, existing)
	}
	if !found {
		return model.Profile{}, ErrPhotoNotFound
	}

	updated, err := s.profiles.Apply(ctx, userID, model.ProfilePatch{Photos: &photos})
	if err != nil {
		return model.Profile{}, err
	}

	_ = s.storage.Delete(ctx, key)

	return updated, nil
}

func objectKey(userID, fileName string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate object key: %w", err)
	}

	ext := strings.ToLower(path.Ext(fileName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
	default:
		ext = ".jpg"
	}

	return fmt.Sprintf("photos/%s/%s%s", userID, hex.EncodeToString(buf), ext), nil
}
