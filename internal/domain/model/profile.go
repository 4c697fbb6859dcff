package model

import "time"

// Prompt is one answered profile prompt ("My most toxic trait is..." etc).
type Prompt struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Profile struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Picture     string `json:"picture,omitempty"`

	Age            *int   `json:"age"`
	Bio            string `json:"bio,omitempty"`
	GenderIdentity string `json:"gender_identity,omitempty"`
	Pronouns       string `json:"pronouns,omitempty"`
	LookingFor     string `json:"looking_for,omitempty"`

	RedFlags            []string `json:"red_flags"`
	DealbreakerRedFlags []string `json:"dealbreaker_red_flags"`
	NegativeQualities   []string `json:"negative_qualities"`
	Photos              []string `json:"photos"`
	WorstPhotoCaption   string   `json:"worst_photo_caption,omitempty"`
	Prompts             []Prompt `json:"prompts"`

	PrefAgeMin     *int     `json:"pref_age_min"`
	PrefAgeMax     *int     `json:"pref_age_max"`
	PrefGenders    []string `json:"pref_genders"`
	PrefDistanceKM *int     `json:"pref_distance_km"`

	ProfileComplete bool      `json:"profile_complete"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfilePatch is a partial profile update. Nil fields are left untouched;
// set fields overwrite the stored value, slices included.
type ProfilePatch struct {
	Name        *string `json:"name,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	Picture     *string `json:"picture,omitempty"`

	Age            *int    `json:"age,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	GenderIdentity *string `json:"gender_identity,omitempty"`
	Pronouns       *string `json:"pronouns,omitempty"`
	LookingFor     *string `json:"looking_for,omitempty"`

	RedFlags            *[]string `json:"red_flags,omitempty"`
	DealbreakerRedFlags *[]string `json:"dealbreaker_red_flags,omitempty"`
	NegativeQualities   *[]string `json:"negative_qualities,omitempty"`
	Photos              *[]string `json:"photos,omitempty"`
	WorstPhotoCaption   *string   `json:"worst_photo_caption,omitempty"`
	Prompts             *[]Prompt `json:"prompts,omitempty"`

	PrefAgeMin     *int      `json:"pref_age_min,omitempty"`
	PrefAgeMax     *int      `json:"pref_age_max,omitempty"`
	PrefGenders    *[]string `json:"pref_genders,omitempty"`
	PrefDistanceKM *int      `json:"pref_distance_km,omitempty"`
}
