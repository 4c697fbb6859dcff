package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/askorokhod/unhinged/backend/internal/config"
	s3infra "github.com/askorokhod/unhinged/backend/internal/infra/s3"
	pgrepo "github.com/askorokhod/unhinged/backend/internal/repo/postgres"
	redrepo "github.com/askorokhod/unhinged/backend/internal/repo/redis"
	authsvc "github.com/askorokhod/unhinged/backend/internal/services/auth"
	discoverysvc "github.com/askorokhod/unhinged/backend/internal/services/discovery"
	matchessvc "github.com/askorokhod/unhinged/backend/internal/services/matches"
	mediasvc "github.com/askorokhod/unhinged/backend/internal/services/media"
	profilesvc "github.com/askorokhod/unhinged/backend/internal/services/profiles"
	swipesvc "github.com/askorokhod/unhinged/backend/internal/services/swipes"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	s3         *minio.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	sessionRepo := redrepo.NewSessionRepo(redisClient)

	profileRepo := pgrepo.NewProfileRepo(pool)
	swipeRepo := pgrepo.NewSwipeRepo(pool)
	matchRepo := pgrepo.NewMatchRepo(pool)
	messageRepo := pgrepo.NewMessageRepo(pool)
	chatRepo := pgrepo.NewChatRepo(pool, messageRepo, matchRepo)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	authService := authsvc.NewService(jwtManager, sessionRepo, cfg.Auth.SessionTTL)

	profileService := profilesvc.NewService(profileRepo)
	discoveryService := discoverysvc.NewService(profileRepo, swipeRepo, discoverysvc.Config{
		MaxResults: cfg.Discovery.MaxResults,
		MaxScan:    cfg.Discovery.MaxScan,
	})
	swipeService := swipesvc.NewService(profileRepo, swipeRepo, matchRepo)
	matchService := matchessvc.NewService(matchRepo, messageRepo, chatRepo)

	var s3Client *minio.Client
	if c, err := s3infra.NewClient(s3infra.Config{
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
	}); err != nil {
		log.Warn("s3 init failed, continuing in degraded mode", zap.Error(err))
	} else {
		s3Client = c
	}

	mediaStorage := mediasvc.NewS3Storage(s3Client, cfg.S3.Bucket)
	mediaService := mediasvc.NewService(profileService, mediaStorage)
	if s3Client != nil {
		discoveryService.AttachPhotoSigner(mediaStorage)
	}

	RegisterRoutes(r, Dependencies{
		AuthService:      authService,
		ProfileService:   profileService,
		DiscoveryService: discoveryService,
		SwipeService:     swipeService,
		MatchService:     matchService,
		MediaService:     mediaService,
		Logger:           log,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		s3:         s3Client,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
