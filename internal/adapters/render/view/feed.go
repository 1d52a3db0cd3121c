package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type FeedOptions struct {
	CourseCode string
	Mode       domain.MatchMode
	Now        time.Time
	// InPod adds a hint that the user already belongs to a pod.
	InPod bool
}

func RenderFeed(candidates []domain.CandidateProfile, opts FeedOptions) (string, error) {
	return run(func(s styles) string { return feedView(candidates, opts, s) })
}

func feedView(candidates []domain.CandidateProfile, opts FeedOptions, s styles) string {
	lines := []string{
		s.title.Render("Match Feed"),
		s.header.Render(fmt.Sprintf("course: %s · mode: %s · candidates: %d", opts.CourseCode, opts.Mode, len(candidates))),
	}
	if opts.InPod {
		lines = append(lines, s.badge.Render("You already have a pod. Run `cupid pod` to see it."))
	}

	if len(candidates) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No matches yet. Check back once classmates have built their profiles.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, candidate := range candidates {
		lines = append(lines, s.section.Render(candidateCard(i+1, candidate, opts.Now, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func candidateCard(rank int, c domain.CandidateProfile, now time.Time, s styles) string {
	heading := lipgloss.JoinHorizontal(lipgloss.Top,
		s.name.Render(fmt.Sprintf("%d. %s", rank, displayName(c.DisplayName))),
		"  ",
		s.badge.Render("["+domain.ActivityLabel(c.LastActiveLabel, c.LastActiveAt, now)+"]"),
	)
	if c.Score != nil {
		heading += "  " + s.faint.Render(fmt.Sprintf("score %.2f", *c.Score))
	}

	parts := []string{
		heading,
		s.faint.Render("id: " + string(c.UserID)),
		s.detail.Render("Roles: " + joinOr(domain.Top(c.RolePreferences, 2), ", ")),
		s.detail.Render("Skills: " + joinOr(domain.Top(c.Skills, 4), ", ")),
		s.detail.Render("Availability: " + joinOr(domain.Top(c.Availability, 2), " • ")),
	}
	if bio := strings.TrimSpace(c.Bio); bio != "" {
		parts = append(parts, s.faint.Render(bio))
	}
	if len(c.Reasons) > 0 {
		parts = append(parts, s.header.Render("Why this match"))
		for _, reason := range domain.Top(c.Reasons, 3) {
			parts = append(parts, s.detail.Render("  - "+reason))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func displayName(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return "Anonymous"
}

func joinOr(items []string, sep string) string {
	if len(items) == 0 {
		return "n/a"
	}
	return strings.Join(items, sep)
}
