package file

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
)

const (
	themeKey         = "theme"
	matchModeKey     = "mode"
	pendingCourseKey = "pending_course"
)

type Preferences struct {
	store *Store
}

var _ ports.PreferenceStore = (*Preferences)(nil)

func NewPreferences(store *Store) *Preferences {
	return &Preferences{store: store}
}

// Theme falls back to the system theme when nothing valid is stored.
func (p *Preferences) Theme(ctx context.Context) (domain.Theme, error) {
	raw, err := p.getString(ctx, themeKey)
	if err != nil {
		return "", err
	}

	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return domain.ThemeSystem, nil
	}

	return theme, nil
}

func (p *Preferences) SetTheme(ctx context.Context, theme domain.Theme) error {
	return p.store.Put(ctx, themeKey, string(theme))
}

func (p *Preferences) MatchMode(ctx context.Context) (domain.MatchMode, error) {
	raw, err := p.getString(ctx, matchModeKey)
	if err != nil {
		return "", err
	}

	mode, err := domain.ParseMatchMode(raw)
	if err != nil {
		return domain.MatchModeSkill, nil
	}

	return mode, nil
}

func (p *Preferences) SetMatchMode(ctx context.Context, mode domain.MatchMode) error {
	return p.store.Put(ctx, matchModeKey, string(mode))
}

func (p *Preferences) PendingCourse(ctx context.Context) (string, bool, error) {
	raw, err := p.getString(ctx, pendingCourseKey)
	if err != nil {
		return "", false, err
	}

	code := domain.NormalizeCourseCode(raw)
	return code, code != "", nil
}

func (p *Preferences) SetPendingCourse(ctx context.Context, courseCode string) error {
	return p.store.Put(ctx, pendingCourseKey, domain.NormalizeCourseCode(courseCode))
}

func (p *Preferences) ClearPendingCourse(ctx context.Context) error {
	return p.store.Delete(ctx, pendingCourseKey)
}

// getString treats an undecodable entry as unset.
func (p *Preferences) getString(ctx context.Context, key string) (string, error) {
	var value string
	if _, err := p.store.Get(ctx, key, &value); err != nil {
		if errors.Is(err, ErrCorruptEntry) {
			return "", nil
		}
		return "", err
	}

	return strings.TrimSpace(value), nil
}
