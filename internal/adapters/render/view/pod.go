package view

import (
	"fmt"

	"github.com/bnema/coursecupid-cli/internal/application"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const maxPodSize = 4

func RenderPod(pod application.PodView) (string, error) {
	return run(func(s styles) string { return podView(pod, s) })
}

// RenderNoPod is shown while the user has not been matched yet.
func RenderNoPod() (string, error) {
	return run(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("No pod yet"),
			s.empty.Render("Accept a few people in the feed: `cupid feed` then `cupid swipe <id> accept`."),
		)
	})
}

func podView(pod application.PodView, s styles) string {
	group := pod.Group
	lines := []string{
		s.title.Render("Pod " + group.GroupID),
		s.header.Render(fmt.Sprintf("course: %s · members: %d/%d", group.CourseCode, len(group.Members), maxPodSize)),
	}

	for _, member := range group.Members {
		lines = append(lines, s.section.Render(memberCard(pod, member, s)))
	}

	lines = append(lines, s.section.Render(hubSection(pod, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func memberCard(pod application.PodView, m domain.Member, s styles) string {
	heading := s.name.Render(displayName(m.DisplayName))
	if m.UserID == pod.Self {
		heading += " " + s.faint.Render("(you)")
	}
	if pod.Group.IsLeader(m.UserID) {
		heading += " " + s.leader.Render("★ leader")
	}

	parts := []string{
		heading,
		s.detail.Render(joinOr(domain.Top(m.RolePreferences, 2), ", ") + " · " + joinOr(domain.Top(m.Skills, 3), ", ")),
		s.faint.Render(domain.ActivityLabel("", m.LastActiveAt, pod.Now)),
	}

	if pod.Disclosures[m.UserID] != domain.Unlocked {
		parts = append(parts,
			s.locked.Render("Locked"),
			s.faint.Render("Mutual accept required to reveal contact."),
		)
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts,
		s.unlocked.Render("Unlocked"),
		s.detail.Render("LinkedIn: "+revealed(m.Contact.LinkedIn)),
		s.detail.Render("Discord: "+revealed(m.Contact.Discord)),
		s.detail.Render("Email: "+revealed(m.Contact.Email)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func hubSection(pod application.PodView, s styles) string {
	parts := []string{
		s.title.Render("Pod Hub"),
		s.detail.Render("Video + chat: ") + s.link.Render(pod.Links.Video),
		s.detail.Render("File drop:    ") + s.link.Render(pod.Links.Files),
	}

	switch {
	case pod.Group.HubLink != "":
		parts = append(parts, s.detail.Render("Custom hub:   ")+s.link.Render(pod.Group.HubLink))
	case pod.Group.IsLeader(pod.Self):
		parts = append(parts, s.faint.Render("Set a custom hub link with `cupid pod hub <link>`."))
	default:
		parts = append(parts, s.faint.Render("The leader can set a custom hub link."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func revealed(value string) string {
	if value == "" {
		return "contact revealed"
	}
	return value
}
