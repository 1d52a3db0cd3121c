package domain

import "strings"

const (
	roomSlugMaxLen = 64
	roomKeyLen     = 5
)

type InstantLinks struct {
	Video string
	Files string
}

// PodInstantLinks derives shareable rooms from the group id so every member
// lands in the same room without exchanging anything.
func PodInstantLinks(groupID string) InstantLinks {
	return InstantLinks{
		Video: "https://meet.jit.si/coursecupid-" + RoomSlug(groupID),
		Files: "https://pairdrop.net/?room_id=" + RoomKey(groupID),
	}
}

// RoomSlug lowercases raw and collapses every run of characters outside
// [a-z0-9] into a single dash.
func RoomSlug(raw string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	slug := b.String()
	if len(slug) > roomSlugMaxLen {
		slug = strings.TrimRight(slug[:roomSlugMaxLen], "-")
	}
	if slug == "" {
		return "pod"
	}

	return slug
}

// RoomKey is a deterministic five-letter key for input.
func RoomKey(input string) string {
	var hash uint32
	for _, r := range input {
		hash = hash*31 + uint32(r)
	}

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	out := make([]byte, roomKeyLen)
	for i := range out {
		out[i] = letters[hash%26]
		hash /= 26
	}

	return string(out)
}
