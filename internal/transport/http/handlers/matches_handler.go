package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	authsvc "github.com/askorokhod/unhinged/backend/internal/services/auth"
	matchsvc "github.com/askorokhod/unhinged/backend/internal/services/matches"
	"github.com/askorokhod/unhinged/backend/internal/transport/http/dto"
	httperrors "github.com/askorokhod/unhinged/backend/internal/transport/http/errors"
)

type MatchesHandler struct {
	service *matchsvc.Service
}

func NewMatchesHandler(service *matchsvc.Service) *MatchesHandler {
	return &MatchesHandler{service: service}
}

func (h *MatchesHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := authsvc.PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	summaries, err := h.service.List(r.Context(), principal.UserID)
	if err != nil {
		handleMatchError(w, err)
		return
	}

	items := make([]dto.MatchItemResponse, 0, len(summaries))
	for _, s := range summaries {
		item := dto.MatchItemResponse{
			MatchID: s.Record.MatchID,
			OtherUser: dto.UserSummary{
				UserID:      s.Record.OtherUserID,
				Name:        s.Record.OtherName,
				DisplayName: s.Record.OtherDisplayName,
				Picture:     s.Record.OtherPicture,
				Age:         s.Record.OtherAge,
			},
			CreatedAt:     s.Record.CreatedAt,
			LastMessageAt: s.Record.LastMessageAt,
		}
		if s.LastMessage != nil {
			msg := dto.NewMessageResponse(*s.LastMessage)
			item.LastMessage = &msg
		}
		items = append(items, item)
	}

	httperrors.Write(w, http.StatusOK, dto.MatchesResponse{Matches: items})
}

func (h *MatchesHandler) Messages(w http.ResponseWriter, r *http.Request) {
	principal, ok := authsvc.PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	matchID := chi.URLParam(r, "matchID")
	msgs, err := h.service.Messages(r.Context(), principal.UserID, matchID)
	if err != nil {
		handleMatchError(w, err)
		return
	}

	items := make([]dto.MessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		items = append(items, dto.NewMessageResponse(msg))
	}

	httperrors.Write(w, http.StatusOK, dto.MessagesResponse{Messages: items})
}

func (h *MatchesHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	principal, ok := authsvc.PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	var req dto.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	matchID := chi.URLParam(r, "matchID")
	msg, err := h.service.SendMessage(r.Context(), principal.UserID, matchID, req.Content)
	if err != nil {
		handleMatchError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.NewMessageResponse(msg))
}

func handleMatchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, matchsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, matchsvc.ErrNotFound):
		writeNotFound(w, "MATCH_NOT_FOUND", "match not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
