package dto

import (
	"time"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

// ProfileResponse is the authenticated user's own profile view.
type ProfileResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Picture     string `json:"picture,omitempty"`

	Age            *int   `json:"age"`
	Bio            string `json:"bio,omitempty"`
	GenderIdentity string `json:"gender_identity,omitempty"`
	Pronouns       string `json:"pronouns,omitempty"`
	LookingFor     string `json:"looking_for,omitempty"`

	RedFlags            []string       `json:"red_flags"`
	DealbreakerRedFlags []string       `json:"dealbreaker_red_flags"`
	NegativeQualities   []string       `json:"negative_qualities"`
	Photos              []string       `json:"photos"`
	WorstPhotoCaption   string         `json:"worst_photo_caption,omitempty"`
	Prompts             []model.Prompt `json:"prompts"`

	PrefAgeMin     *int     `json:"pref_age_min"`
	PrefAgeMax     *int     `json:"pref_age_max"`
	PrefGenders    []string `json:"pref_genders"`
	PrefDistanceKM *int     `json:"pref_distance_km"`

	ProfileComplete bool      `json:"profile_complete"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewProfileResponse(p model.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:              p.UserID,
		Email:               p.Email,
		Name:                p.Name,
		DisplayName:         p.DisplayName,
		Picture:             p.Picture,
		Age:                 p.Age,
		Bio:                 p.Bio,
		GenderIdentity:      p.GenderIdentity,
		Pronouns:            p.Pronouns,
		LookingFor:          p.LookingFor,
		RedFlags:            emptyIfNil(p.RedFlags),
		DealbreakerRedFlags: emptyIfNil(p.DealbreakerRedFlags),
		NegativeQualities:   emptyIfNil(p.NegativeQualities),
		Photos:              emptyIfNil(p.Photos),
		WorstPhotoCaption:   p.WorstPhotoCaption,
		Prompts:             p.Prompts,
		PrefAgeMin:          p.PrefAgeMin,
		PrefAgeMax:          p.PrefAgeMax,
		PrefGenders:         emptyIfNil(p.PrefGenders),
		PrefDistanceKM:      p.PrefDistanceKM,
		ProfileComplete:     p.ProfileComplete,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// UserSummary is the trimmed profile other users see in matches and swipes.
type UserSummary struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Picture     string `json:"picture,omitempty"`
	Age         *int   `json:"age"`
}

type UploadPhotoResponse struct {
	Profile  ProfileResponse `json:"profile"`
	PhotoURL string          `json:"photo_url,omitempty"`
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
