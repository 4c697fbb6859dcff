package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authsvc "github.com/askorokhod/unhinged/backend/internal/services/auth"
	discoverysvc "github.com/askorokhod/unhinged/backend/internal/services/discovery"
	matchessvc "github.com/askorokhod/unhinged/backend/internal/services/matches"
	mediasvc "github.com/askorokhod/unhinged/backend/internal/services/media"
	profilesvc "github.com/askorokhod/unhinged/backend/internal/services/profiles"
	swipesvc "github.com/askorokhod/unhinged/backend/internal/services/swipes"
	"github.com/askorokhod/unhinged/backend/internal/transport/http/handlers"
)

type Dependencies struct {
	AuthService      *authsvc.Service
	ProfileService   *profilesvc.Service
	DiscoveryService *discoverysvc.Service
	SwipeService     *swipesvc.Service
	MatchService     *matchessvc.Service
	MediaService     *mediasvc.Service
	Logger           *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	suggestionsHandler := handlers.NewSuggestionsHandler()
	profileHandler := handlers.NewProfileHandler(deps.ProfileService, deps.MediaService)
	discoverHandler := handlers.NewDiscoverHandler(deps.DiscoveryService)
	swipeHandler := handlers.NewSwipeHandler(deps.SwipeService, deps.ProfileService)
	matchesHandler := handlers.NewMatchesHandler(deps.MatchService)
	authMW := AuthMiddleware(deps.AuthService, deps.Logger)

	r.Get("/healthz", healthHandler.Handle)

	r.Route("/api", func(r chi.Router) {
		r.Get("/red-flags/suggestions", suggestionsHandler.RedFlags)
		r.Get("/prompts/suggestions", suggestionsHandler.Prompts)

		r.Group(func(r chi.Router) {
			r.Use(authMW)

			r.Get("/profile", profileHandler.Get)
			r.Put("/profile", profileHandler.Update)
			r.Post("/profile/photos", profileHandler.UploadPhoto)
			r.Delete("/profile/photos", profileHandler.RemovePhoto)

			r.Get("/discover", discoverHandler.Handle)
			r.Post("/swipe", swipeHandler.Handle)

			r.Get("/matches", matchesHandler.List)
			r.Get("/matches/{matchID}/messages", matchesHandler.Messages)
			r.Post("/matches/{matchID}/messages", matchesHandler.SendMessage)
		})
	})
}
