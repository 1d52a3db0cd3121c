package domain

type Disclosure int

const (
	Locked Disclosure = iota
	Unlocked
)

func (d Disclosure) String() string {
	if d == Unlocked {
		return "unlocked"
	}

	return "locked"
}

// ResolveDisclosure decides whether member's contact details may be shown to
// self. It holds no memory between calls: callers pass the unlocked set of the
// latest group snapshot every time.
func ResolveDisclosure(self Token, member Member, unlocked map[Token]struct{}) Disclosure {
	if self != "" && member.UserID == self {
		return Unlocked
	}
	if member.ContactUnlocked {
		return Unlocked
	}
	if _, ok := unlocked[member.UserID]; ok {
		return Unlocked
	}

	return Locked
}

// MemberDisclosures resolves every member of the group for self.
func MemberDisclosures(self Token, group ActiveGroup) map[Token]Disclosure {
	out := make(map[Token]Disclosure, len(group.Members))
	for _, member := range group.Members {
		out[member.UserID] = ResolveDisclosure(self, member, group.UnlockedContactIDs)
	}

	return out
}
