package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/askorokhod/unhinged/backend/internal/services/auth"
	discoverysvc "github.com/askorokhod/unhinged/backend/internal/services/discovery"
	"github.com/askorokhod/unhinged/backend/internal/transport/http/dto"
	httperrors "github.com/askorokhod/unhinged/backend/internal/transport/http/errors"
)

type DiscoverHandler struct {
	service *discoverysvc.Service
}

func NewDiscoverHandler(service *discoverysvc.Service) *DiscoverHandler {
	return &DiscoverHandler{service: service}
}

func (h *DiscoverHandler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := authsvc.PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "DISCOVERY_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	candidates, err := h.service.Discover(r.Context(), principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, discoverysvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid discovery request")
		case errors.Is(err, discoverysvc.ErrNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "viewer profile not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to build discovery feed")
		}
		return
	}

	items := make([]dto.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, dto.NewCandidateResponse(c.Profile, c.MatchScore, c.PhotoURLs))
	}

	httperrors.Write(w, http.StatusOK, dto.DiscoverResponse{Candidates: items})
}
