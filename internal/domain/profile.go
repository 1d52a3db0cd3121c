package domain

import (
	"fmt"
	"strings"
	"time"
)

const MaxRolePreferences = 2

var Roles = []string{"Frontend", "Backend", "Matching", "Platform"}

type Profile struct {
	CourseCode      string
	DisplayName     string
	RolePreferences []string
	Skills          []string
	Availability    []string
	Goals           string
	Contact         ContactInfo
}

// ProfileDraft is a profile kept locally because the service could not be
// reached when it was saved.
type ProfileDraft struct {
	UserID  Token
	Profile Profile
	SavedAt time.Time
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.CourseCode) == "" {
		return ErrCourseCodeRequired
	}
	if len(p.RolePreferences) < 1 || len(p.RolePreferences) > MaxRolePreferences {
		return fmt.Errorf("choose 1-%d roles, got %d", MaxRolePreferences, len(p.RolePreferences))
	}
	for _, role := range p.RolePreferences {
		if !knownRole(role) {
			return fmt.Errorf("unsupported role %q", role)
		}
	}

	return nil
}

// Normalize trims free text and drops duplicate or empty list entries.
func (p *Profile) Normalize() {
	if p == nil {
		return
	}

	p.CourseCode = NormalizeCourseCode(p.CourseCode)
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.Goals = strings.TrimSpace(p.Goals)
	p.RolePreferences = dedupe(p.RolePreferences)
	p.Skills = dedupe(p.Skills)
	p.Availability = dedupe(p.Availability)
	p.Contact = ContactInfo{
		Discord:  strings.TrimSpace(p.Contact.Discord),
		LinkedIn: strings.TrimSpace(p.Contact.LinkedIn),
		Email:    strings.TrimSpace(p.Contact.Email),
	}
}

func knownRole(role string) bool {
	for _, known := range Roles {
		if known == role {
			return true
		}
	}

	return false
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	return out
}
