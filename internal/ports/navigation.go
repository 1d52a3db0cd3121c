package ports

import (
	"context"

	"github.com/bnema/coursecupid-cli/internal/domain"
)

// Notifier surfaces transient messages to the user.
type Notifier interface {
	GroupFormed(group domain.ActiveGroup)
}

// Navigator moves the user to another view.
type Navigator interface {
	ToGroup(ctx context.Context)
}
