package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = domain.Token("65a1f0c2b3d4e5f6a7b8c9d0")
	testPeerID  = domain.Token("65a1f0c2b3d4e5f6a7b8c9d1")
	testThirdID = domain.Token("65a1f0c2b3d4e5f6a7b8c9d2")
)

func testIdentity() domain.Identity {
	return domain.Identity{UserID: testUserID, CourseCode: "CS471", DisplayName: "Ada"}
}

func TestSessionGuardCheck(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		identity   domain.Identity
		ok         bool
		getErr     error
		wantClear  bool
		wantResult GuardResult
	}{
		{
			name:       "usable identity",
			identity:   testIdentity(),
			ok:         true,
			wantResult: GuardResult{Decision: GuardAllow, Identity: testIdentity()},
		},
		{
			name:       "absent identity is not purged",
			wantResult: GuardResult{Decision: GuardRedirect},
		},
		{
			name:       "short user id is purged",
			identity:   domain.Identity{UserID: "abc123", CourseCode: "CS471"},
			ok:         true,
			wantClear:  true,
			wantResult: GuardResult{Decision: GuardRedirect, Purged: true},
		},
		{
			name:       "unreadable entry is purged",
			getErr:     fmt.Errorf("decode: %w", domain.ErrCorruptIdentity),
			wantClear:  true,
			wantResult: GuardResult{Decision: GuardRedirect, Purged: true},
		},
		{
			name:       "missing course redirects",
			identity:   domain.Identity{UserID: testUserID},
			ok:         true,
			wantResult: GuardResult{Decision: GuardRedirect, Identity: domain.Identity{UserID: testUserID}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			identities := mocks.NewMockIdentityStore(t)
			identities.EXPECT().Get(mockAnyContext()).Return(tc.identity, tc.ok, tc.getErr).Once()
			if tc.wantClear {
				identities.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
			}

			result, err := NewSessionGuard(identities, zerolog.Nop()).Check(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
		})
	}
}

func TestSessionGuardCheckReadFailure(t *testing.T) {
	t.Parallel()

	identities := mocks.NewMockIdentityStore(t)
	identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{}, false, errors.New("disk gone")).Once()

	_, err := NewSessionGuard(identities, zerolog.Nop()).Check(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "read identity")
}

func TestSessionGuardRequire(t *testing.T) {
	t.Parallel()

	identities := mocks.NewMockIdentityStore(t)
	identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{}, false, nil).Once()

	_, err := NewSessionGuard(identities, zerolog.Nop()).Require(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionGuardForgetOnlyClearsCorruptSessions(t *testing.T) {
	t.Parallel()

	identities := mocks.NewMockIdentityStore(t)
	identities.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
	guard := NewSessionGuard(identities, zerolog.Nop())

	guard.Forget(context.Background(), fmt.Errorf("load pod: %w", domain.ErrInvalidSession))
	guard.Forget(context.Background(), fmt.Errorf("load pod: %w", errors.Join(domain.ErrNoSession, domain.ErrCorruptIdentity)))
}
