package handlers

import (
	"net/http"

	"github.com/askorokhod/unhinged/backend/internal/transport/http/dto"
	httperrors "github.com/askorokhod/unhinged/backend/internal/transport/http/errors"
)

// Curated starter content for profile creation. Static on purpose: the lists
// are product copy, not data.
var (
	redFlagSuggestions = []string{
		"I reply to texts 3 days later",
		"My ex is still my best friend",
		"I have a mattress on the floor",
		"I say 'we should do this again' and never follow up",
		"I've never watched The Office",
		"I double text... a lot",
		"My Spotify Wrapped was embarrassing",
		"I still use Internet Explorer",
		"I put milk before cereal",
		"I think astrology is real",
		"I'm a reply guy on Twitter",
		"I use the word 'vibes' unironically",
		"I own multiple swords",
		"My love language is leaving people on read",
		"I have 47 unread books",
	}

	negativeQualitySuggestions = []string{
		"Chronically late to everything",
		"Can't cook anything besides cereal",
		"Talks to plants more than people",
		"Has strong opinions about fonts",
		"Cries at commercials",
		"Still uses 'XD' in texts",
		"Finishes other people's sentences wrong",
		"Gives unsolicited advice",
		"Can't keep a plant alive",
		"Still quotes Vine in 2024",
		"Thinks pineapple belongs on pizza",
		"Has a finsta with 3 followers",
		"Watches movies on 1.5x speed",
		"Leaves cabinet doors open",
		"Over-explains simple things",
	}

	promptSuggestions = []dto.PromptSuggestion{
		{ID: "worst_trait", Question: "My most toxic trait is..."},
		{ID: "dealbreaker", Question: "I'll immediately lose interest if you..."},
		{ID: "embarrassing", Question: "My most embarrassing moment was..."},
		{ID: "guilty_pleasure", Question: "My guilty pleasure is..."},
		{ID: "hot_take", Question: "My hottest take is..."},
		{ID: "red_flag_excuse", Question: "I justify my red flags by saying..."},
		{ID: "worst_date", Question: "My worst date story involves..."},
		{ID: "3am_thought", Question: "At 3am, I'm usually..."},
		{ID: "dealmaker", Question: "I'm a walking red flag but at least I..."},
		{ID: "self_aware", Question: "I know I'm problematic because..."},
	}
)

type SuggestionsHandler struct{}

func NewSuggestionsHandler() *SuggestionsHandler {
	return &SuggestionsHandler{}
}

func (h *SuggestionsHandler) RedFlags(w http.ResponseWriter, r *http.Request) {
	httperrors.Write(w, http.StatusOK, dto.RedFlagSuggestionsResponse{
		RedFlags:          redFlagSuggestions,
		NegativeQualities: negativeQualitySuggestions,
	})
}

func (h *SuggestionsHandler) Prompts(w http.ResponseWriter, r *http.Request) {
	httperrors.Write(w, http.StatusOK, dto.PromptSuggestionsResponse{
		Prompts: promptSuggestions,
	})
}
