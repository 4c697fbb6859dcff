package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/askorokhod/unhinged/backend/internal/domain/enums"
	authsvc "github.com/askorokhod/unhinged/backend/internal/services/auth"
	profilesvc "github.com/askorokhod/unhinged/backend/internal/services/profiles"
	swipesvc "github.com/askorokhod/unhinged/backend/internal/services/swipes"
	"github.com/askorokhod/unhinged/backend/internal/transport/http/dto"
	httperrors "github.com/askorokhod/unhinged/backend/internal/transport/http/errors"
)

type SwipeHandler struct {
	swipes   *swipesvc.Service
	profiles *profilesvc.Service
}

func NewSwipeHandler(swipes *swipesvc.Service, profiles *profilesvc.Service) *SwipeHandler {
	return &SwipeHandler{swipes: swipes, profiles: profiles}
}

func (h *SwipeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := authsvc.PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.swipes == nil {
		writeInternal(w, "SWIPE_SERVICE_UNAVAILABLE", "swipe service is unavailable")
		return
	}

	var req dto.SwipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if strings.TrimSpace(req.TargetUserID) == "" || strings.TrimSpace(req.Action) == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "target_user_id and action are required")
		return
	}

	action, err := enums.ParseSwipeAction(req.Action)
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "action must be like or pass")
		return
	}

	result, err := h.swipes.RecordSwipe(r.Context(), principal.UserID, req.TargetUserID, action)
	if err != nil {
		switch {
		case errors.Is(err, swipesvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid swipe request")
		case errors.Is(err, swipesvc.ErrSelfSwipe):
			writeBadRequest(w, "SELF_SWIPE", "you cannot swipe on yourself")
		case errors.Is(err, swipesvc.ErrTargetNotFound):
			writeNotFound(w, "TARGET_NOT_FOUND", "swipe target not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to process swipe")
		}
		return
	}

	resp := dto.SwipeResponse{
		Success:      true,
		MatchCreated: result.MatchCreated,
	}
	if result.MatchCreated && result.Match != nil {
		resp.Match = &dto.MatchedResponse{
			MatchID:     result.Match.ID,
			MatchedUser: h.matchedUserSummary(r, result.Match.OtherUser(principal.UserID)),
		}
	}

	httperrors.Write(w, http.StatusOK, resp)
}

// matchedUserSummary is best effort: the match announcement still goes out
// even when the counterpart profile read fails.
func (h *SwipeHandler) matchedUserSummary(r *http.Request, userID string) dto.UserSummary {
	summary := dto.UserSummary{UserID: userID}
	if h.profiles == nil {
		return summary
	}

	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		return summary
	}

	summary.Name = profile.Name
	summary.DisplayName = profile.DisplayName
	summary.Picture = profile.Picture
	summary.Age = profile.Age
	return summary
}
