package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/rs/zerolog"
)

var ErrSwipeInFlight = errors.New("a swipe for this user is already in flight")

// SwipeSubmitter records decisions and refreshes the feed and pod afterwards.
type SwipeSubmitter struct {
	service    ports.MatchService
	guard      *SessionGuard
	feed       *Feed
	reconciler *Reconciler
	logger     zerolog.Logger

	mu       sync.Mutex
	inFlight map[domain.Token]struct{}
}

func NewSwipeSubmitter(service ports.MatchService, guard *SessionGuard, feed *Feed, reconciler *Reconciler, logger zerolog.Logger) *SwipeSubmitter {
	return &SwipeSubmitter{
		service:    service,
		guard:      guard,
		feed:       feed,
		reconciler: reconciler,
		logger:     logger,
		inFlight:   map[domain.Token]struct{}{},
	}
}

func (s *SwipeSubmitter) Submit(ctx context.Context, cmd SwipeCommand) (SwipeOutcome, error) {
	identity, err := s.guard.Require(ctx)
	if err != nil {
		return SwipeOutcome{}, err
	}

	target := domain.Token(domain.CleanToken(string(cmd.TargetID)))
	if target == "" {
		return SwipeOutcome{}, errors.New("swipe target is required")
	}
	decision, err := domain.ParseSwipeDecision(string(cmd.Decision))
	if err != nil {
		return SwipeOutcome{}, err
	}

	if !s.acquire(target) {
		return SwipeOutcome{}, ErrSwipeInFlight
	}
	defer s.release(target)

	result, err := s.service.Swipe(ctx, domain.SwipeRequest{
		CourseCode: identity.CourseCode,
		ActorID:    identity.UserID,
		TargetID:   target,
		Decision:   decision,
	})
	if err != nil {
		s.guard.Forget(ctx, err)
		return SwipeOutcome{}, fmt.Errorf("swipe %s: %w", target, err)
	}

	outcome := SwipeOutcome{Result: result}
	if s.feed != nil {
		candidates, err := s.feed.Load(ctx)
		if err != nil {
			s.logger.Debug().Err(err).Msg("refresh feed after swipe")
		}
		outcome.Candidates = candidates
	}
	if s.reconciler != nil {
		group, err := s.reconciler.Refresh(ctx)
		if err != nil {
			s.logger.Debug().Err(err).Msg("refresh pod after swipe")
			group, _ = s.reconciler.Current()
		}
		outcome.Group = group
	}

	return outcome, nil
}

func (s *SwipeSubmitter) acquire(target domain.Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[target]; busy {
		return false
	}
	s.inFlight[target] = struct{}{}
	return true
}

func (s *SwipeSubmitter) release(target domain.Token) {
	s.mu.Lock()
	delete(s.inFlight, target)
	s.mu.Unlock()
}
