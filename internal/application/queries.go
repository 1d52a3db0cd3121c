package application

import (
	"time"

	"github.com/bnema/coursecupid-cli/internal/domain"
)

type GuardDecision int

const (
	GuardAllow GuardDecision = iota
	GuardRedirect
)

func (d GuardDecision) String() string {
	if d == GuardAllow {
		return "allow"
	}
	return "redirect"
}

// GuardResult is the outcome of a session check. Purged is set when a
// malformed stored identity was removed during the check.
type GuardResult struct {
	Decision GuardDecision
	Identity domain.Identity
	Purged   bool
}

type ProfileSaveResult struct {
	// Local is set when the service was unreachable and the profile was kept
	// as a draft instead.
	Local     bool
	DraftPath string
	SavedAt   time.Time
}

type SwipeOutcome struct {
	Result     domain.SwipeResult
	Candidates []domain.CandidateProfile
	Group      domain.GroupState
}

type PodView struct {
	Self        domain.Token
	Group       domain.ActiveGroup
	Disclosures map[domain.Token]domain.Disclosure
	Links       domain.InstantLinks
	Now         time.Time
}
