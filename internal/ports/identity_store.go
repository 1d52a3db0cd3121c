package ports

import (
	"context"

	"github.com/bnema/coursecupid-cli/internal/domain"
)

type IdentityReader interface {
	Get(ctx context.Context) (domain.Identity, bool, error)
}

// IdentityStore is the single source of truth for the local session. Set
// replaces the whole identity; readers never observe a partial write.
type IdentityStore interface {
	IdentityReader
	Set(ctx context.Context, identity domain.Identity) error
	Clear(ctx context.Context) error
}
