package enums

import (
	"fmt"
	"strings"
)

type SwipeAction string

const (
	SwipeLike SwipeAction = "like"
	SwipePass SwipeAction = "pass"
)

func ParseSwipeAction(input string) (SwipeAction, error) {
	switch SwipeAction(strings.ToLower(strings.TrimSpace(input))) {
	case SwipeLike:
		return SwipeLike, nil
	case SwipePass:
		return SwipePass, nil
	default:
		return "", fmt.Errorf("unknown swipe action %q", input)
	}
}

func (a SwipeAction) Valid() bool {
	return a == SwipeLike || a == SwipePass
}
