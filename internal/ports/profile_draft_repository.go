package ports

import (
	"context"

	"github.com/bnema/coursecupid-cli/internal/domain"
)

type ProfileDraftRepository interface {
	Get(ctx context.Context, courseCode string) (domain.ProfileDraft, error)
	Save(ctx context.Context, draft domain.ProfileDraft) error
	Delete(ctx context.Context, courseCode string) error
}
