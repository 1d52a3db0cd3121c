package application

import (
	"context"
	"time"

	"github.com/bnema/coursecupid-cli/internal/application/schedule"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/rs/zerolog"
)

const DefaultHeartbeatInterval = 20 * time.Second

// LivenessReporter tells the service the user is still around. Beats are
// fire-and-forget; a failed beat waits for the next tick.
type LivenessReporter struct {
	service  ports.MatchService
	guard    *SessionGuard
	clock    ports.Clock
	interval time.Duration
	logger   zerolog.Logger
}

func NewLivenessReporter(service ports.MatchService, guard *SessionGuard, clock ports.Clock, interval time.Duration, logger zerolog.Logger) *LivenessReporter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}

	return &LivenessReporter{service: service, guard: guard, clock: clock, interval: interval, logger: logger}
}

// Run beats immediately and then every interval until ctx is done.
func (r *LivenessReporter) Run(ctx context.Context) {
	task := schedule.New(r.clock, r.interval, r.Beat)
	task.Start(ctx)
	<-ctx.Done()
	task.Stop()
}

// Beat sends one heartbeat. Without a usable session it does nothing.
func (r *LivenessReporter) Beat(ctx context.Context) {
	identity, err := r.guard.Require(ctx)
	if err != nil {
		r.logger.Debug().Err(err).Msg("heartbeat skipped")
		return
	}

	if err := r.service.Heartbeat(ctx, identity.CourseCode, identity.UserID); err != nil {
		r.logger.Debug().Err(err).Msg("heartbeat failed")
	}
}
