package view

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/bnema/coursecupid-cli/internal/application"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selfID  = domain.Token("65a1f0c2b3d4e5f6a7b8c9d0")
	peerID  = domain.Token("65a1f0c2b3d4e5f6a7b8c9d1")
	thirdID = domain.Token("65a1f0c2b3d4e5f6a7b8c9d2")
)

func TestRenderFeedKeepsRankingOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	activeAt := now.Add(-3 * 24 * time.Hour)
	score := 0.87

	output, err := RenderFeed([]domain.CandidateProfile{
		{
			UserID:          peerID,
			DisplayName:     "Grace",
			RolePreferences: []string{"Backend", "Matching"},
			Skills:          []string{"Go", "SQL", "Kafka", "Docker", "Rust"},
			Availability:    []string{"Mon evening", "Wed evening", "Sat"},
			LastActiveAt:    &activeAt,
			Score:           &score,
			Reasons:         []string{"Complements your role mix", "Overlapping evenings", "Same goals", "Fourth reason"},
		},
		{UserID: thirdID, LastActiveLabel: "online now"},
	}, FeedOptions{CourseCode: "CS471", Mode: domain.MatchModeSkill, Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "course: CS471 · mode: skillmatch · candidates: 2")
	assert.Contains(t, output, "1. Grace")
	assert.Contains(t, output, "[active 3d ago]")
	assert.Contains(t, output, "score 0.87")
	assert.Contains(t, output, "Skills: Go, SQL, Kafka, Docker")
	assert.NotContains(t, output, "Rust")
	assert.Contains(t, output, "Availability: Mon evening • Wed evening")
	assert.NotContains(t, output, "Fourth reason")
	assert.Contains(t, output, "2. Anonymous")
	assert.Contains(t, output, "[online now]")
	assert.Contains(t, output, "Roles: n/a")
	assert.Less(t, strings.Index(output, "Grace"), strings.Index(output, "Anonymous"))
}

func TestRenderFeedEmpty(t *testing.T) {
	output, err := RenderFeed(nil, FeedOptions{CourseCode: "CS471", Mode: domain.MatchModeQuick, InPod: true})

	require.NoError(t, err)
	assert.Contains(t, output, "No matches yet")
	assert.Contains(t, output, "You already have a pod")
}

func TestRenderPodDisclosesOnlyUnlockedContacts(t *testing.T) {
	group, err := domain.NewActiveGroup(domain.ActiveGroupParams{
		GroupID:    "pod-7",
		CourseCode: "CS471",
		LeaderID:   peerID,
		Members: []domain.Member{
			{UserID: selfID, DisplayName: "Ada", Contact: domain.ContactInfo{Email: "ada@example.edu"}},
			{UserID: peerID, DisplayName: "Grace", ContactUnlocked: true, Contact: domain.ContactInfo{Discord: "grace#1"}},
			{UserID: thirdID, DisplayName: "Alan", Contact: domain.ContactInfo{Email: "alan@example.edu"}},
		},
	})
	require.NoError(t, err)

	output, err := RenderPod(application.PodView{
		Self:        selfID,
		Group:       group,
		Disclosures: domain.MemberDisclosures(selfID, group),
		Links:       domain.PodInstantLinks(group.GroupID),
		Now:         time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Pod pod-7")
	assert.Contains(t, output, "members: 3/4")
	assert.Contains(t, output, "Ada (you)")
	assert.Contains(t, output, "Grace ★ leader")
	assert.Contains(t, output, "ada@example.edu")
	assert.Contains(t, output, "Discord: grace#1")
	assert.NotContains(t, output, "alan@example.edu")
	assert.Contains(t, output, "Mutual accept required")
	assert.Contains(t, output, "https://meet.jit.si/coursecupid-pod-7")
	assert.Contains(t, output, "The leader can set a custom hub link.")
}

func TestRenderPodLeaderHint(t *testing.T) {
	group, err := domain.NewActiveGroup(domain.ActiveGroupParams{
		GroupID:  "pod-8",
		LeaderID: selfID,
		Members:  []domain.Member{{UserID: selfID}, {UserID: peerID}},
	})
	require.NoError(t, err)

	output, err := RenderPod(application.PodView{Self: selfID, Group: group, Disclosures: domain.MemberDisclosures(selfID, group)})
	require.NoError(t, err)
	assert.Contains(t, output, "cupid pod hub <link>")

	group.HubLink = "https://docs.example.com/pod-8"
	output, err = RenderPod(application.PodView{Self: selfID, Group: group})
	require.NoError(t, err)
	assert.Contains(t, output, "Custom hub:")
	assert.Contains(t, output, "https://docs.example.com/pod-8")
}

func TestRenderNoPod(t *testing.T) {
	output, err := RenderNoPod()

	require.NoError(t, err)
	assert.Contains(t, output, "No pod yet")
}

func TestRenderAnswer(t *testing.T) {
	links := make([]domain.Link, 0, 8)
	for i := 0; i < 8; i++ {
		links = append(links, domain.NewLink("", "https://example.edu/"+string(rune('a'+i))))
	}

	output, err := RenderAnswer(domain.AskExchange{Question: "When is the exam?", RoutingLayer: 2, Links: links})

	require.NoError(t, err)
	assert.Contains(t, output, "Q: When is the exam? · layer 2")
	assert.Contains(t, output, "No response.")
	assert.Contains(t, output, "https://example.edu/f")
	assert.NotContains(t, output, "https://example.edu/g")
}

func TestNewPodDocumentOmitsLockedContacts(t *testing.T) {
	group, err := domain.NewActiveGroup(domain.ActiveGroupParams{
		GroupID:            "pod-7",
		CourseCode:         "CS471",
		LeaderID:           peerID,
		UnlockedContactIDs: []domain.Token{peerID},
		Members: []domain.Member{
			{UserID: selfID, DisplayName: "Ada", Contact: domain.ContactInfo{Email: "ada@example.edu"}},
			{UserID: peerID, DisplayName: "Grace", Contact: domain.ContactInfo{Discord: "grace#1"}},
			{UserID: thirdID, DisplayName: "Alan", Contact: domain.ContactInfo{Email: "alan@example.edu"}},
		},
	})
	require.NoError(t, err)

	doc := NewPodDocument(application.PodView{
		Self:        selfID,
		Group:       group,
		Disclosures: domain.MemberDisclosures(selfID, group),
		Links:       domain.PodInstantLinks(group.GroupID),
	})

	require.Len(t, doc.Members, 3)
	assert.True(t, doc.HasGroup)
	assert.Equal(t, "pod-7", doc.PodID)
	assert.True(t, doc.Members[0].Self)
	assert.True(t, doc.Members[1].Leader)
	require.NotNil(t, doc.Members[0].Contact)
	require.NotNil(t, doc.Members[1].Contact)
	assert.Equal(t, "grace#1", doc.Members[1].Contact.Discord)
	assert.Equal(t, "locked", doc.Members[2].Disclosure)
	assert.Nil(t, doc.Members[2].Contact)

	encoded, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "alan@example.edu")
	assert.Contains(t, string(encoded), `"disclosure":"unlocked"`)
}

func TestNewPodDocumentWithoutDisclosuresRevealsNothing(t *testing.T) {
	group, err := domain.NewActiveGroup(domain.ActiveGroupParams{
		GroupID: "pod-9",
		Members: []domain.Member{{UserID: peerID, ContactUnlocked: true, Contact: domain.ContactInfo{Email: "grace@example.edu"}}},
	})
	require.NoError(t, err)

	doc := NewPodDocument(application.PodView{Self: selfID, Group: group})
	assert.Nil(t, doc.Members[0].Contact)
	assert.Equal(t, "locked", doc.Members[0].Disclosure)
}
