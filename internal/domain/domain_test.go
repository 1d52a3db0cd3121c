package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLabel(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		v := now.Add(-d)
		return &v
	}

	tests := []struct {
		name  string
		label string
		at    *time.Time
		want  string
	}{
		{name: "server label wins", label: "active today", at: at(72 * time.Hour), want: "active today"},
		{name: "no data", want: "unknown"},
		{name: "same day", at: at(2 * time.Hour), want: "active today"},
		{name: "yesterday", at: at(30 * time.Hour), want: "active 1d ago"},
		{name: "days ago", at: at(5 * 24 * time.Hour), want: "active 5d ago"},
		{name: "future timestamp", at: at(-time.Hour), want: "active today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActivityLabel(tt.label, tt.at, now))
		})
	}
}

func TestNewLinkFillsMissingFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Link{Title: "https://a.example", URL: "https://a.example"}, NewLink("", "https://a.example"))
	assert.Equal(t, Link{Title: "Syllabus", URL: "Syllabus"}, NewLink("Syllabus", ""))
	assert.Equal(t, Link{Title: "link", URL: ""}, NewLink("", ""))
	assert.Equal(t, Link{Title: "Docs", URL: "https://d.example"}, NewLink(" Docs ", "https://d.example"))
}

func TestProfileValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile Profile
		wantErr string
	}{
		{name: "valid", profile: Profile{CourseCode: "CS471", RolePreferences: []string{"Frontend"}}},
		{name: "two roles", profile: Profile{CourseCode: "CS471", RolePreferences: []string{"Frontend", "Backend"}}},
		{name: "no roles", profile: Profile{CourseCode: "CS471"}, wantErr: "choose 1-2 roles"},
		{name: "three roles", profile: Profile{CourseCode: "CS471", RolePreferences: []string{"Frontend", "Backend", "Platform"}}, wantErr: "choose 1-2 roles"},
		{name: "unknown role", profile: Profile{CourseCode: "CS471", RolePreferences: []string{"Chef"}}, wantErr: "unsupported role"},
		{name: "missing course", profile: Profile{RolePreferences: []string{"Frontend"}}, wantErr: "course code is required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.profile.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestProfileNormalizeDeduplicatesAndTrims(t *testing.T) {
	t.Parallel()

	p := Profile{
		CourseCode:      " cs471 ",
		DisplayName:     "  Ava ",
		RolePreferences: []string{"Frontend", "Frontend", " "},
		Skills:          []string{"Go", " Go ", "SQL"},
	}
	p.Normalize()

	assert.Equal(t, "CS471", p.CourseCode)
	assert.Equal(t, "Ava", p.DisplayName)
	assert.Equal(t, []string{"Frontend"}, p.RolePreferences)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
}

func TestParseSwipeDecision(t *testing.T) {
	t.Parallel()

	d, err := ParseSwipeDecision(" Accept ")
	require.NoError(t, err)
	assert.Equal(t, SwipeAccept, d)

	_, err = ParseSwipeDecision("maybe")
	assert.ErrorIs(t, err, ErrUnknownDecision)
}

func TestRoomSlugAndKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pod-42-alpha", RoomSlug("  Pod #42 -- Alpha!"))
	assert.Equal(t, "pod", RoomSlug("###"))
	assert.Len(t, RoomSlug(strings.Repeat("b", 100)), 64)

	assert.Equal(t, "YNMFA", RoomKey("abc"))
	assert.Equal(t, RoomKey("pod-1"), RoomKey("pod-1"))

	links := PodInstantLinks("65f0c0ffee65f0c0ffee65f0")
	assert.Equal(t, "https://meet.jit.si/coursecupid-65f0c0ffee65f0c0ffee65f0", links.Video)
	assert.Contains(t, links.Files, RoomKey("65f0c0ffee65f0c0ffee65f0"))
}

func TestParsePreferences(t *testing.T) {
	t.Parallel()

	theme, err := ParseTheme("DARK")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	_, err = ParseTheme("neon")
	assert.Error(t, err)

	mode, err := ParseMatchMode("QuickMatch")
	require.NoError(t, err)
	assert.Equal(t, MatchModeQuick, mode)
}
