package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/spf13/cobra"
)

// terminal announces pod formation on stderr and hands navigation to
// whichever command is following the pod.
type terminal struct {
	mu      sync.Mutex
	errOut  io.Writer
	onGroup func(ctx context.Context)
}

func (t *terminal) bind(cmd *cobra.Command) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errOut = cmd.ErrOrStderr()
}

func (t *terminal) follow(onGroup func(ctx context.Context)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onGroup = onGroup
}

func (t *terminal) GroupFormed(group domain.ActiveGroup) {
	t.mu.Lock()
	out := t.errOut
	t.mu.Unlock()
	if out == nil {
		return
	}

	_, _ = fmt.Fprintf(out, "It's a match! Pod %s formed with %d members.\n", group.GroupID, len(group.Members))
}

func (t *terminal) ToGroup(ctx context.Context) {
	t.mu.Lock()
	onGroup := t.onGroup
	t.mu.Unlock()
	if onGroup != nil {
		onGroup(ctx)
	}
}
