package dto

type SwipeRequest struct {
	TargetUserID string `json:"target_user_id"`
	Action       string `json:"action"`
}

type SwipeResponse struct {
	Success      bool              `json:"success"`
	MatchCreated bool              `json:"match_created"`
	Match        *MatchedResponse  `json:"match,omitempty"`
}

// MatchedResponse announces a fresh match to the swiper.
type MatchedResponse struct {
	MatchID     string      `json:"match_id"`
	MatchedUser UserSummary `json:"matched_user"`
}
