package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDisclosure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		self     Token
		member   Member
		unlocked map[Token]struct{}
		want     Disclosure
	}{
		{name: "self is always unlocked", self: aliceID, member: Member{UserID: aliceID}, want: Unlocked},
		{name: "explicit flag", self: aliceID, member: Member{UserID: bobID, ContactUnlocked: true}, want: Unlocked},
		{name: "listed in unlocked set", self: aliceID, member: Member{UserID: bobID}, unlocked: map[Token]struct{}{bobID: {}}, want: Unlocked},
		{name: "nothing grants access", self: aliceID, member: Member{UserID: bobID}, unlocked: map[Token]struct{}{carolID: {}}, want: Locked},
		{name: "nil set", self: aliceID, member: Member{UserID: bobID}, want: Locked},
		{name: "empty self never matches", member: Member{UserID: ""}, want: Locked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDisclosure(tt.self, tt.member, tt.unlocked))
		})
	}
}

func TestDisclosureIsMonotonicAcrossSnapshots(t *testing.T) {
	t.Parallel()

	first, err := NewActiveGroup(ActiveGroupParams{
		GroupID:            "pod-1",
		Members:            []Member{{UserID: aliceID}, {UserID: bobID}},
		UnlockedContactIDs: []Token{bobID},
	})
	require.NoError(t, err)

	second, err := NewActiveGroup(ActiveGroupParams{
		GroupID:            "pod-1",
		Members:            []Member{{UserID: aliceID}, {UserID: bobID}, {UserID: carolID}},
		UnlockedContactIDs: []Token{bobID, carolID},
	})
	require.NoError(t, err)

	before := MemberDisclosures(aliceID, first)
	after := MemberDisclosures(aliceID, second)
	for id, disclosure := range before {
		if disclosure != Unlocked {
			continue
		}
		assert.Equal(t, Unlocked, after[id], "member %s regressed", id)
	}
	assert.Equal(t, Unlocked, after[carolID])
}
