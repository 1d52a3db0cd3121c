package application

import (
	"github.com/bnema/coursecupid-cli/internal/domain"
)

type JoinCommand struct {
	CourseCode  string
	DisplayName string
}

type SaveProfileCommand struct {
	Profile domain.Profile
}

type SwipeCommand struct {
	TargetID domain.Token
	Decision domain.SwipeDecision
}

type SetHubCommand struct {
	HubLink string
}
