package dto

import (
	"time"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
)

type MatchItemResponse struct {
	MatchID       string           `json:"match_id"`
	OtherUser     UserSummary      `json:"other_user"`
	CreatedAt     time.Time        `json:"created_at"`
	LastMessageAt *time.Time       `json:"last_message_at"`
	LastMessage   *MessageResponse `json:"last_message,omitempty"`
}

type MatchesResponse struct {
	Matches []MatchItemResponse `json:"matches"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type MessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

func NewMessageResponse(msg model.Message) MessageResponse {
	return MessageResponse{
		ID:        msg.ID,
		MatchID:   msg.MatchID,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}
