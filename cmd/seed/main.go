package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/askorokhod/unhinged/backend/internal/config"
	"github.com/askorokhod/unhinged/backend/internal/domain/model"
	"github.com/askorokhod/unhinged/backend/internal/domain/rules"
	"github.com/askorokhod/unhinged/backend/internal/infra/logger"
	pgrepo "github.com/askorokhod/unhinged/backend/internal/repo/postgres"
	authsvc "github.com/askorokhod/unhinged/backend/internal/services/auth"
)

var (
	firstNames = []string{
		"Alex", "Blake", "Casey", "Drew", "Emery", "Finley", "Harper",
		"Jordan", "Kai", "Logan", "Morgan", "Quinn", "Riley", "Sage", "Taylor",
	}
	genders  = []string{"Man", "Woman", "Non-binary"}
	redFlags = []string{
		"I reply to texts 3 days later",
		"My ex is still my best friend",
		"I have a mattress on the floor",
		"I double text... a lot",
		"I put milk before cereal",
		"I think astrology is real",
		"I use the word 'vibes' unironically",
		"I own multiple swords",
		"My love language is leaving people on read",
		"I have 47 unread books",
	}
	negativeQualities = []string{
		"Chronically late to everything",
		"Can't cook anything besides cereal",
		"Talks to plants more than people",
		"Has strong opinions about fonts",
		"Cries at commercials",
		"Gives unsolicited advice",
		"Can't keep a plant alive",
		"Thinks pineapple belongs on pizza",
		"Watches movies on 1.5x speed",
		"Leaves cabinet doors open",
	}
	bios = []string{
		"Professional overthinker seeking co-conspirator.",
		"My therapist said I should put myself out there.",
		"Here for the wrong reasons, honestly.",
		"Emotionally unavailable but in a fun way.",
		"Walking red flag with great taste in takeout.",
	}
)

func main() {
	var (
		cfgPath    = flag.String("config", os.Getenv("APP_CONFIG"), "path to config yaml")
		usersCount = flag.Int("users", 20, "number of profiles to create")
		seed       = flag.Int64("seed", 42, "rng seed, fixed for reproducible data")
		tokens     = flag.Bool("tokens", false, "print an access token per seeded user")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	profileRepo := pgrepo.NewProfileRepo(pool)
	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	rng := rand.New(rand.NewSource(*seed))

	for i := 0; i < *usersCount; i++ {
		profile := randomProfile(rng, i)
		if err := profileRepo.Create(ctx, profile); err != nil {
			log.Fatal("create profile", zap.String("user_id", profile.UserID), zap.Error(err))
		}

		fields := []zap.Field{
			zap.String("user_id", profile.UserID),
			zap.String("name", profile.Name),
			zap.Bool("complete", profile.ProfileComplete),
		}
		if *tokens {
			token, _, err := jwtManager.GenerateAccessToken(profile.UserID)
			if err != nil {
				log.Fatal("generate token", zap.Error(err))
			}
			fields = append(fields, zap.String("access_token", token))
		}
		log.Info("seeded profile", fields...)
	}

	log.Info("seed complete", zap.Int("users", *usersCount))
}

func randomProfile(rng *rand.Rand, n int) model.Profile {
	name := firstNames[rng.Intn(len(firstNames))]
	age := 21 + rng.Intn(20)
	bio := bios[rng.Intn(len(bios))]
	flags := pick(rng, redFlags, 1+rng.Intn(3))
	qualities := pick(rng, negativeQualities, rng.Intn(3))
	photos := []string{fmt.Sprintf("photos/seed/%02d.jpg", n)}

	prefMin := age - 3
	if prefMin < 18 {
		prefMin = 18
	}
	prefMax := age + 4

	// Roughly one in five profiles stays incomplete to exercise the
	// discovery scan filter.
	if rng.Intn(5) == 0 {
		photos = nil
	}

	userID := "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	now := time.Now().UTC()

	return model.Profile{
		UserID:            userID,
		Email:             fmt.Sprintf("%s%02d@example.com", strings.ToLower(name), n),
		Name:              name,
		Age:               &age,
		Bio:               bio,
		GenderIdentity:    genders[rng.Intn(len(genders))],
		RedFlags:          flags,
		NegativeQualities: qualities,
		Photos:            photos,
		PrefAgeMin:        &prefMin,
		PrefAgeMax:        &prefMax,
		ProfileComplete:   rules.ProfileComplete(&age, bio, flags, photos),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func pick(rng *rand.Rand, from []string, count int) []string {
	if count > len(from) {
		count = len(from)
	}
	idx := rng.Perm(len(from))[:count]
	out := make([]string, 0, count)
	for _, i := range idx {
		out = append(out, from[i])
	}
	return out
}
