package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLivenessReporterBeatsUntilCanceled(t *testing.T) {
	t.Parallel()

	identities := mocks.NewMockIdentityStore(t)
	service := mocks.NewMockMatchService(t)
	clock := mocks.NewMockClock(t)
	ticker := newFakeTicker()

	identities.EXPECT().Get(mockAnyContext()).Return(testIdentity(), true, nil)
	clock.EXPECT().NewTicker(20 * time.Second).Return(ticker).Once()

	var beats atomic.Int64
	service.EXPECT().Heartbeat(mockAnyContext(), "CS471", testUserID).RunAndReturn(func(context.Context, string, domain.Token) error {
		if beats.Add(1) == 1 {
			return errors.New("503")
		}
		return nil
	})

	reporter := NewLivenessReporter(service, NewSessionGuard(identities, zerolog.Nop()), clock, 0, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		reporter.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		select {
		case ticker.ch <- time.Now():
		default:
		}
		return beats.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestLivenessReporterSkipsWithoutSession(t *testing.T) {
	t.Parallel()

	identities := mocks.NewMockIdentityStore(t)
	service := mocks.NewMockMatchService(t)
	identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{}, false, nil).Once()

	reporter := NewLivenessReporter(service, NewSessionGuard(identities, zerolog.Nop()), nil, time.Second, zerolog.Nop())
	reporter.Beat(context.Background())

	service.AssertNotCalled(t, "Heartbeat", mock.Anything, mock.Anything, mock.Anything)
}
