package domain

import (
	"fmt"
	"strings"
	"time"
)

// CandidateProfile is a ranked recommendation. The slice order returned by the
// service is the ranking and is never re-sorted.
type CandidateProfile struct {
	UserID          Token
	DisplayName     string
	Bio             string
	RolePreferences []string
	Skills          []string
	Availability    []string
	LastActiveAt    *time.Time
	LastActiveLabel string
	Score           *float64
	Reasons         []string
}

// ActivityLabel renders a last-active badge. A server-provided label wins over
// a timestamp.
func ActivityLabel(label string, at *time.Time, now time.Time) string {
	if label = strings.TrimSpace(label); label != "" {
		return label
	}
	if at == nil || at.IsZero() {
		return "unknown"
	}

	days := int(now.Sub(*at) / (24 * time.Hour))
	switch {
	case days <= 0:
		return "active today"
	case days == 1:
		return "active 1d ago"
	default:
		return fmt.Sprintf("active %dd ago", days)
	}
}

// Top returns at most n leading items.
func Top(items []string, n int) []string {
	if n < 0 || len(items) <= n {
		return items
	}

	return items[:n]
}
