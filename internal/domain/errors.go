package domain

import "errors"

var (
	ErrCourseCodeRequired = errors.New("course code is required")
	ErrMissingUserID      = errors.New("service did not return a user id")
	ErrMalformedUserID    = errors.New("service returned a malformed user id")
	ErrInvalidGroupState  = errors.New("invalid group state")
	ErrNoGroup            = errors.New("not in a pod yet")
	ErrNotLeader          = errors.New("only the pod leader can set the hub link")
	ErrHubLinkRequired    = errors.New("hub link is required")
	ErrQuestionRequired   = errors.New("question is required")
	ErrDraftNotFound      = errors.New("profile draft not found")
	ErrUnknownDecision    = errors.New("unknown swipe decision")
	ErrCorruptIdentity    = errors.New("stored identity is corrupt")
)

// Request failure classes. Transport adapters wrap these so services can react
// without knowing the transport.
var (
	ErrNoSession          = errors.New("no session")
	ErrInvalidSession     = errors.New("invalid session")
	ErrTimeout            = errors.New("request timed out")
	ErrServiceUnreachable = errors.New("service unreachable")
	ErrRejected           = errors.New("request rejected")
)
