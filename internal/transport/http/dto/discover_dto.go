package dto

import "github.com/askorokhod/unhinged/backend/internal/domain/model"

// CandidateResponse is one ranked discovery card. Email never leaves the
// server here; the viewer only gets the public-facing fields.
type CandidateResponse struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`

	Age            *int   `json:"age"`
	Bio            string `json:"bio,omitempty"`
	GenderIdentity string `json:"gender_identity,omitempty"`
	Pronouns       string `json:"pronouns,omitempty"`
	LookingFor     string `json:"looking_for,omitempty"`

	RedFlags          []string       `json:"red_flags"`
	NegativeQualities []string       `json:"negative_qualities"`
	PhotoURLs         []string       `json:"photo_urls"`
	WorstPhotoCaption string         `json:"worst_photo_caption,omitempty"`
	Prompts           []model.Prompt `json:"prompts"`

	MatchScore float64 `json:"match_score"`
}

type DiscoverResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
}

func NewCandidateResponse(p model.Profile, score float64, photoURLs []string) CandidateResponse {
	return CandidateResponse{
		UserID:            p.UserID,
		Name:              p.Name,
		DisplayName:       p.DisplayName,
		Age:               p.Age,
		Bio:               p.Bio,
		GenderIdentity:    p.GenderIdentity,
		Pronouns:          p.Pronouns,
		LookingFor:        p.LookingFor,
		RedFlags:          emptyIfNil(p.RedFlags),
		NegativeQualities: emptyIfNil(p.NegativeQualities),
		PhotoURLs:         emptyIfNil(photoURLs),
		WorstPhotoCaption: p.WorstPhotoCaption,
		Prompts:           p.Prompts,
		MatchScore:        score,
	}
}
