package domain

import (
	"fmt"
	"strings"
)

type SwipeDecision string

const (
	SwipeAccept SwipeDecision = "accept"
	SwipePass   SwipeDecision = "pass"
)

func ParseSwipeDecision(raw string) (SwipeDecision, error) {
	decision := SwipeDecision(strings.ToLower(strings.TrimSpace(raw)))
	switch decision {
	case SwipeAccept, SwipePass:
		return decision, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownDecision, raw)
	}
}

type SwipeResult struct {
	Mutual     bool
	PodUpdated bool
	PodID      string
}

type SwipeRequest struct {
	CourseCode string
	ActorID    Token
	TargetID   Token
	Decision   SwipeDecision
}
