package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/rs/zerolog"
)

// SessionGuard decides whether a protected command may run. It is evaluated
// on every protected command and purges identities whose user id is
// malformed. An absent identity is left alone.
type SessionGuard struct {
	identities ports.IdentityStore
	logger     zerolog.Logger
}

func NewSessionGuard(identities ports.IdentityStore, logger zerolog.Logger) *SessionGuard {
	return &SessionGuard{identities: identities, logger: logger}
}

func (g *SessionGuard) Check(ctx context.Context) (GuardResult, error) {
	identity, ok, err := g.identities.Get(ctx)
	switch {
	case errors.Is(err, domain.ErrCorruptIdentity):
		return g.purge(ctx, err)
	case err != nil:
		return GuardResult{}, fmt.Errorf("read identity: %w", err)
	case !ok:
		return GuardResult{Decision: GuardRedirect}, nil
	case identity.Corrupt():
		return g.purge(ctx, fmt.Errorf("%w: user id %q", domain.ErrCorruptIdentity, identity.UserID))
	case !identity.Usable():
		return GuardResult{Decision: GuardRedirect, Identity: identity}, nil
	}

	return GuardResult{Decision: GuardAllow, Identity: identity}, nil
}

// Require returns the usable identity or an error wrapping domain.ErrNoSession.
func (g *SessionGuard) Require(ctx context.Context) (domain.Identity, error) {
	result, err := g.Check(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	if result.Decision != GuardAllow {
		if result.Purged {
			return domain.Identity{}, fmt.Errorf("%w: stored identity was malformed and has been cleared", domain.ErrNoSession)
		}
		return domain.Identity{}, fmt.Errorf("%w: join a course first", domain.ErrNoSession)
	}

	return result.Identity, nil
}

// Forget purges the stored identity when err reports a malformed token.
// Other session failures keep it so the user can retry.
func (g *SessionGuard) Forget(ctx context.Context, err error) {
	if !errors.Is(err, domain.ErrCorruptIdentity) {
		return
	}
	if clearErr := g.identities.Clear(ctx); clearErr != nil {
		g.logger.Warn().Err(clearErr).Msg("clear corrupt identity")
	}
}

func (g *SessionGuard) purge(ctx context.Context, cause error) (GuardResult, error) {
	g.logger.Warn().Err(cause).Msg("purging corrupt identity")
	if err := g.identities.Clear(ctx); err != nil {
		return GuardResult{}, fmt.Errorf("clear corrupt identity: %w", err)
	}

	return GuardResult{Decision: GuardRedirect, Purged: true}, nil
}
