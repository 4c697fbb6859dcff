package handlers

import (
	"errors"
	"net/http"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
	authsvc "github.com/askorokhod/unhinged/backend/internal/services/auth"
	mediasvc "github.com/askorokhod/unhinged/backend/internal/services/media"
	profilesvc "github.com/askorokhod/unhinged/backend/internal/services/profiles"
	"github.com/askorokhod/unhinged/backend/internal/transport/http/dto"
	httperrors "github.com/askorokhod/unhinged/backend/internal/transport/http/errors"
)

const uploadMemoryLimit = 12 << 20

type ProfileHandler struct {
	profiles *profilesvc.Service
	media    *mediasvc.Service
}

func NewProfileHandler(profiles *profilesvc.Service, media *mediasvc.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, media: media}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := authsvc.PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	profile, err := h.profiles.Get(r.Context(), principal.UserID)
	if err != nil {
		handleProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewProfileResponse(profile))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := authsvc.PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	var patch model.ProfilePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	updated, err := h.profiles.Apply(r.Context(), principal.UserID, patch)
	if err != nil {
		handleProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewProfileResponse(updated))
}

func (h *ProfileHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	principal, ok := authsvc.PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.media == nil {
		writeInternal(w, "MEDIA_UNAVAILABLE", "photo storage is unavailable")
		return
	}

	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "photo file is required")
		return
	}
	defer func() { _ = file.Close() }()

	profile, url, err := h.media.UploadPhoto(
		r.Context(),
		principal.UserID,
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
		header.Size,
	)
	if err != nil {
		switch {
		case errors.Is(err, mediasvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid photo upload")
		case errors.Is(err, mediasvc.ErrPhotoLimitReached):
			httperrors.Write(w, http.StatusConflict, httperrors.APIError{
				Code:    "PHOTO_LIMIT_REACHED",
				Message: "photo limit reached",
			})
		case errors.Is(err, profilesvc.ErrNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "profile not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to upload photo")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.UploadPhotoResponse{
		Profile:  dto.NewProfileResponse(profile),
		PhotoURL: url,
	})
}

func (h *ProfileHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	principal, ok := authsvc.PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.media == nil {
		writeInternal(w, "MEDIA_UNAVAILABLE", "photo storage is unavailable")
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "key query parameter is required")
		return
	}

	profile, err := h.media.RemovePhoto(r.Context(), principal.UserID, key)
	if err != nil {
		switch {
		case errors.Is(err, mediasvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid photo key")
		case errors.Is(err, mediasvc.ErrPhotoNotFound):
			writeNotFound(w, "PHOTO_NOT_FOUND", "photo not found")
		case errors.Is(err, profilesvc.ErrNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "profile not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to remove photo")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewProfileResponse(profile))
}

func handleProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profilesvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "profile validation failed")
	case errors.Is(err, profilesvc.ErrNotFound):
		writeNotFound(w, "PROFILE_NOT_FOUND", "profile not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
