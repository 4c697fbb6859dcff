package model

import (
	"time"

	"github.com/askorokhod/unhinged/backend/internal/domain/enums"
)

type Swipe struct {
	ID        string            `json:"swipe_id"`
	SwiperID  string            `json:"swiper_id"`
	TargetID  string            `json:"target_id"`
	Action    enums.SwipeAction `json:"action"`
	CreatedAt time.Time         `json:"created_at"`
}
