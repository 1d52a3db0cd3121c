package ports

import (
	"context"

	"github.com/bnema/coursecupid-cli/internal/domain"
)

type PreferenceStore interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
	MatchMode(ctx context.Context) (domain.MatchMode, error)
	SetMatchMode(ctx context.Context, mode domain.MatchMode) error
	PendingCourse(ctx context.Context) (string, bool, error)
	SetPendingCourse(ctx context.Context, courseCode string) error
	ClearPendingCourse(ctx context.Context) error
}
