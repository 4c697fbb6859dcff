package model

import "time"

type Match struct {
	ID            string     `json:"match_id"`
	User1ID       string     `json:"user1_id"`
	User2ID       string     `json:"user2_id"`
	CreatedAt     time.Time  `json:"created_at"`
	LastMessageAt *time.Time `json:"last_message_at"`
}

// OtherUser returns the counterpart of userID in the pair.
func (m Match) OtherUser(userID string) string {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}
