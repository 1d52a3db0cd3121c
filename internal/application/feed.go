package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/rs/zerolog"
)

// Feed holds the ranked candidates of the current course.
type Feed struct {
	service ports.MatchService
	guard   *SessionGuard
	prefs   ports.PreferenceStore
	logger  zerolog.Logger

	mu         sync.RWMutex
	candidates []domain.CandidateProfile
}

func NewFeed(service ports.MatchService, guard *SessionGuard, prefs ports.PreferenceStore, logger zerolog.Logger) *Feed {
	return &Feed{service: service, guard: guard, prefs: prefs, logger: logger}
}

// Load fetches recommendations in the preferred match mode. The service's
// order is kept.
func (f *Feed) Load(ctx context.Context) ([]domain.CandidateProfile, error) {
	identity, err := f.guard.Require(ctx)
	if err != nil {
		return nil, err
	}

	mode, err := f.prefs.MatchMode(ctx)
	if err != nil {
		f.logger.Debug().Err(err).Msg("read match mode")
		mode = domain.MatchModeSkill
	}

	candidates, err := f.service.Recommendations(ctx, identity.CourseCode, mode)
	if err != nil {
		f.guard.Forget(ctx, err)
		return nil, fmt.Errorf("load recommendations: %w", err)
	}

	f.mu.Lock()
	f.candidates = candidates
	f.mu.Unlock()

	return candidates, nil
}

func (f *Feed) Candidates() []domain.CandidateProfile {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.CandidateProfile, len(f.candidates))
	copy(out, f.candidates)
	return out
}
