package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/coursecupid-cli/internal/application/schedule"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/rs/zerolog"
)

const DefaultPollInterval = 5 * time.Second

// Reconciler keeps the local view of the user's pod in sync with the service.
// It announces a formed group exactly once per transition from no group to a
// group with members.
type Reconciler struct {
	service   ports.MatchService
	guard     *SessionGuard
	notifier  ports.Notifier
	navigator ports.Navigator
	clock     ports.Clock
	interval  time.Duration
	logger    zerolog.Logger

	mu      sync.RWMutex
	current domain.GroupState
}

func NewReconciler(
	service ports.MatchService,
	guard *SessionGuard,
	notifier ports.Notifier,
	navigator ports.Navigator,
	clock ports.Clock,
	interval time.Duration,
	logger zerolog.Logger,
) *Reconciler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Reconciler{
		service:   service,
		guard:     guard,
		notifier:  notifier,
		navigator: navigator,
		clock:     clock,
		interval:  interval,
		logger:    logger,
	}
}

// Run polls until ctx is done. Poll failures are logged and leave the known
// state untouched.
func (r *Reconciler) Run(ctx context.Context) {
	task := schedule.New(r.clock, r.interval, r.poll)
	task.Start(ctx)
	<-ctx.Done()
	task.Stop()
}

// Refresh fetches the pod now. On failure the known state is kept.
func (r *Reconciler) Refresh(ctx context.Context) (domain.GroupState, error) {
	state, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}
	r.apply(ctx, state)

	return state, nil
}

// Current returns the last known state. ok is false until a fetch succeeded.
func (r *Reconciler) Current() (domain.GroupState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.current, r.current != nil
}

func (r *Reconciler) poll(ctx context.Context) {
	state, err := r.fetch(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		r.logger.Debug().Err(err).Msg("pod poll failed")
		return
	}
	r.apply(ctx, state)
}

func (r *Reconciler) fetch(ctx context.Context) (domain.GroupState, error) {
	identity, err := r.guard.Require(ctx)
	if err != nil {
		return nil, err
	}

	state, err := r.service.Pod(ctx, identity.CourseCode)
	if err != nil {
		r.guard.Forget(ctx, err)
		return nil, fmt.Errorf("load pod: %w", err)
	}

	return state, nil
}

// apply stores next and announces a newly formed group. Nothing is stored,
// announced or navigated once ctx is done.
func (r *Reconciler) apply(ctx context.Context, next domain.GroupState) {
	r.mu.Lock()
	if ctx.Err() != nil {
		r.mu.Unlock()
		return
	}
	formed := !domain.HasGroup(r.current) && domain.HasGroup(next)
	r.current = next
	r.mu.Unlock()

	if !formed {
		return
	}

	group := next.(domain.ActiveGroup)
	r.logger.Info().Str("group_id", group.GroupID).Int("members", len(group.Members)).Msg("pod formed")
	if r.notifier != nil && ctx.Err() == nil {
		r.notifier.GroupFormed(group)
	}
	if r.navigator != nil && ctx.Err() == nil {
		r.navigator.ToGroup(ctx)
	}
}
