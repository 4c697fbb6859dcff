package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
	pgrepo "github.com/askorokhod/unhinged/backend/internal/repo/postgres"
)

const (
	defaultMaxResults = 50
	defaultMaxScan    = 500
	photoURLTTL       = 5 * time.Minute
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type ProfileStore interface {
	Get(ctx context.Context, userID string) (model.Profile, error)
	ListComplete(ctx context.Context, limit int) ([]model.Profile, error)
}

type SwipeStore interface {
	TargetsSwipedBy(ctx context.Context, swiperID string) (map[string]struct{}, error)
}

type PhotoURLSigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type Config struct {
	MaxResults int
	MaxScan    int
}

// Candidate is one ranked discovery result.
type Candidate struct {
	Profile    model.Profile
	MatchScore float64
	PhotoURLs  []string
}

type Service struct {
	profiles  ProfileStore
	swipes    SwipeStore
	photoSign PhotoURLSigner
	cfg       Config
}

func NewService(profiles ProfileStore, swipes SwipeStore, cfg Config) *Service {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.MaxScan <= 0 {
		cfg.MaxScan = defaultMaxScan
	}

	return &Service{
		profiles: profiles,
		swipes:   swipes,
		cfg:      cfg,
	}
}

func (s *Service) AttachPhotoSigner(signer PhotoURLSigner) {
	s.photoSign = signer
}

// Discover composes the pipeline for one viewer: load viewer, load the swiped
// set, scan complete profiles, filter, score, sort. The returned order is the
// API contract: match_score descending, user id ascending on ties.
func (s *Service) Discover(ctx context.Context, viewerID string) ([]Candidate, error) {
	if strings.TrimSpace(viewerID) == "" {
		return nil, ErrValidation
	}
	if s.profiles == nil || s.swipes == nil {
		return nil, fmt.Errorf("discovery dependencies are not configured")
	}

	viewer, err := s.profiles.Get(ctx, viewerID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load viewer profile: %w", err)
	}

	swiped, err := s.swipes.TargetsSwipedBy(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("load swiped targets: %w", err)
	}

	pool, err := s.profiles.ListComplete(ctx, s.cfg.MaxScan)
	if err != nil {
		return nil, fmt.Errorf("scan candidate pool: %w", err)
	}

	eligible := FilterCandidates(viewer, pool, swiped)

	candidates := make([]Candidate, 0, len(eligible))
	for _, profile := range eligible {
		candidates = append(candidates, Candidate{
			Profile:    profile,
			MatchScore: Score(viewer, profile),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].MatchScore != candidates[j].MatchScore {
			return candidates[i].MatchScore > candidates[j].MatchScore
		}
		return candidates[i].Profile.UserID < candidates[j].Profile.UserID
	})

	if len(candidates) > s.cfg.MaxResults {
		candidates = candidates[:s.cfg.MaxResults]
	}

	for i := range candidates {
		candidates[i].PhotoURLs = s.buildPhotoURLs(ctx, candidates[i].Profile.Photos)
	}

	return candidates, nil
}

func (s *Service) buildPhotoURLs(ctx context.Context, keys []string) []string {
	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
			urls = append(urls, trimmed)
			continue
		}
		if s.photoSign == nil {
			continue
		}
		url, err := s.photoSign.PresignGet(ctx, trimmed, photoURLTTL)
		if err != nil {
			continue
		}
		urls = append(urls, url)
	}
	return urls
}
