package domain

import (
	"fmt"
	"strings"
	"time"
)

// GroupState is either NoGroup or ActiveGroup. Consumers switch on the
// concrete type; there is no "has group" flag to inspect.
type GroupState interface {
	isGroupState()
}

type NoGroup struct{}

type ActiveGroup struct {
	GroupID            string
	CourseCode         string
	LeaderID           Token
	Members            []Member
	UnlockedContactIDs map[Token]struct{}
	HubLink            string
}

func (NoGroup) isGroupState()     {}
func (ActiveGroup) isGroupState() {}

type ContactInfo struct {
	Discord  string
	LinkedIn string
	Email    string
}

func (c ContactInfo) Empty() bool {
	return c.Discord == "" && c.LinkedIn == "" && c.Email == ""
}

type Member struct {
	UserID          Token
	DisplayName     string
	RolePreferences []string
	Skills          []string
	Availability    []string
	LastActiveAt    *time.Time
	ContactUnlocked bool
	Contact         ContactInfo
}

type ActiveGroupParams struct {
	GroupID            string
	CourseCode         string
	LeaderID           Token
	Members            []Member
	UnlockedContactIDs []Token
	HubLink            string
}

// NewActiveGroup builds an ActiveGroup and enforces its invariants: a group id,
// at least one member, a stated leader that is a member, and unlocked ids
// restricted to members. The leader is never inferred.
func NewActiveGroup(p ActiveGroupParams) (ActiveGroup, error) {
	groupID := strings.TrimSpace(p.GroupID)
	if groupID == "" {
		return ActiveGroup{}, fmt.Errorf("%w: group id is empty", ErrInvalidGroupState)
	}
	if len(p.Members) == 0 {
		return ActiveGroup{}, fmt.Errorf("%w: group %s has no members", ErrInvalidGroupState, groupID)
	}

	members := make([]Member, 0, len(p.Members))
	memberIDs := make(map[Token]struct{}, len(p.Members))
	for _, member := range p.Members {
		if member.UserID == "" {
			return ActiveGroup{}, fmt.Errorf("%w: member without user id", ErrInvalidGroupState)
		}
		if _, ok := memberIDs[member.UserID]; ok {
			continue
		}
		memberIDs[member.UserID] = struct{}{}
		members = append(members, member)
	}

	if p.LeaderID != "" {
		if _, ok := memberIDs[p.LeaderID]; !ok {
			return ActiveGroup{}, fmt.Errorf("%w: leader %s is not a member", ErrInvalidGroupState, p.LeaderID)
		}
	}

	unlocked := make(map[Token]struct{}, len(p.UnlockedContactIDs))
	for _, id := range p.UnlockedContactIDs {
		if _, ok := memberIDs[id]; ok {
			unlocked[id] = struct{}{}
		}
	}

	return ActiveGroup{
		GroupID:            groupID,
		CourseCode:         p.CourseCode,
		LeaderID:           p.LeaderID,
		Members:            members,
		UnlockedContactIDs: unlocked,
		HubLink:            strings.TrimSpace(p.HubLink),
	}, nil
}

func (g ActiveGroup) IsLeader(id Token) bool {
	return g.LeaderID != "" && g.LeaderID == id
}

func (g ActiveGroup) Member(id Token) (Member, bool) {
	for _, member := range g.Members {
		if member.UserID == id {
			return member, true
		}
	}

	return Member{}, false
}

// HasGroup reports whether state is an ActiveGroup with at least one member.
func HasGroup(state GroupState) bool {
	switch s := state.(type) {
	case ActiveGroup:
		return len(s.Members) > 0
	case NoGroup:
		return false
	case nil:
		return false
	default:
		panic(fmt.Sprintf("unhandled group state %T", state))
	}
}
