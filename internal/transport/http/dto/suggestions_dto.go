package dto

type RedFlagSuggestionsResponse struct {
	RedFlags          []string `json:"red_flags"`
	NegativeQualities []string `json:"negative_qualities"`
}

type PromptSuggestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

type PromptSuggestionsResponse struct {
	Prompts []PromptSuggestion `json:"prompts"`
}
