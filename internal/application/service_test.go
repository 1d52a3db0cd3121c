package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	tomlrepo "github.com/bnema/coursecupid-cli/internal/adapters/repo/toml"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	identities *mocks.MockIdentityStore
	prefs      *mocks.MockPreferenceStore
	drafts     *mocks.MockProfileDraftRepository
	service    *mocks.MockMatchService
	clock      *mocks.MockClock
	sessions   *SessionService
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()

	f := sessionFixture{
		identities: mocks.NewMockIdentityStore(t),
		prefs:      mocks.NewMockPreferenceStore(t),
		drafts:     mocks.NewMockProfileDraftRepository(t),
		service:    mocks.NewMockMatchService(t),
		clock:      mocks.NewMockClock(t),
	}
	f.sessions = NewSessionService(f.identities, f.prefs, f.drafts, f.service, f.clock, zerolog.Nop())

	return f
}

func TestSessionServiceJoinNormalizesCourseAndStoresIdentity(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{}, false, nil).Once()
	f.service.EXPECT().JoinCourse(mockAnyContext(), "CS471", "Ada").Return(domain.Enrollment{UserID: string(testUserID), CourseCode: "CS471"}, nil).Once()
	f.identities.EXPECT().Set(mockAnyContext(), domain.Identity{UserID: testUserID, CourseCode: "CS471", DisplayName: "Ada"}).Return(nil).Once()
	f.prefs.EXPECT().ClearPendingCourse(mockAnyContext()).Return(nil).Once()

	identity, err := f.sessions.Join(context.Background(), JoinCommand{CourseCode: " cs471 ", DisplayName: " Ada "})
	require.NoError(t, err)
	assert.Equal(t, "CS471", identity.CourseCode)
	assert.Equal(t, testUserID, identity.UserID)
}

func TestSessionServiceJoinRejectsMalformedUserID(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		userID  string
		wantErr error
	}{
		{name: "short", userID: "abc123", wantErr: domain.ErrMalformedUserID},
		{name: "non hex", userID: "zzzzzzzzzzzzzzzzzzzzzzzz", wantErr: domain.ErrMalformedUserID},
		{name: "empty", userID: "", wantErr: domain.ErrMissingUserID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newSessionFixture(t)
			f.identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{}, false, nil).Once()
			f.service.EXPECT().JoinCourse(mockAnyContext(), "CS471", "").Return(domain.Enrollment{UserID: tc.userID}, nil).Once()

			_, err := f.sessions.Join(context.Background(), JoinCommand{CourseCode: "cs471"})
			require.ErrorIs(t, err, tc.wantErr)
			f.identities.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
		})
	}
}

func TestSessionServiceJoinAcceptsQuotedUserID(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{}, false, nil).Once()
	f.service.EXPECT().JoinCourse(mockAnyContext(), "CS471", "").Return(domain.Enrollment{UserID: `"` + string(testUserID) + `"`, DisplayName: "Student"}, nil).Once()
	f.identities.EXPECT().Set(mockAnyContext(), domain.Identity{UserID: testUserID, CourseCode: "CS471", DisplayName: "Student"}).Return(nil).Once()
	f.prefs.EXPECT().ClearPendingCourse(mockAnyContext()).Return(nil).Once()

	_, err := f.sessions.Join(context.Background(), JoinCommand{CourseCode: "CS471"})
	require.NoError(t, err)
}

func TestSessionServiceJoinPurgesCorruptIdentityFirst(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{UserID: "bogus", CourseCode: "CS100"}, true, nil).Once()
	f.identities.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
	f.service.EXPECT().JoinCourse(mockAnyContext(), "CS471", "").Return(domain.Enrollment{UserID: string(testUserID)}, nil).Once()
	f.identities.EXPECT().Set(mockAnyContext(), domain.Identity{UserID: testUserID, CourseCode: "CS471"}).Return(nil).Once()
	f.prefs.EXPECT().ClearPendingCourse(mockAnyContext()).Return(nil).Once()

	_, err := f.sessions.Join(context.Background(), JoinCommand{CourseCode: "CS471"})
	require.NoError(t, err)
}

func TestSessionServiceJoinUnreachableRemembersPendingCourse(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{}, false, nil).Once()
	f.service.EXPECT().JoinCourse(mockAnyContext(), "CS471", "").Return(domain.Enrollment{}, fmt.Errorf("dial: %w", domain.ErrServiceUnreachable)).Once()
	f.prefs.EXPECT().SetPendingCourse(mockAnyContext(), "CS471").Return(nil).Once()

	_, err := f.sessions.Join(context.Background(), JoinCommand{CourseCode: "cs471"})
	require.ErrorIs(t, err, domain.ErrServiceUnreachable)
}

func TestSessionServiceJoinReusesPendingCourse(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.prefs.EXPECT().PendingCourse(mockAnyContext()).Return("CS471", true, nil).Once()
	f.identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{}, false, nil).Once()
	f.service.EXPECT().JoinCourse(mockAnyContext(), "CS471", "").Return(domain.Enrollment{UserID: string(testUserID)}, nil).Once()
	f.identities.EXPECT().Set(mockAnyContext(), domain.Identity{UserID: testUserID, CourseCode: "CS471"}).Return(nil).Once()
	f.prefs.EXPECT().ClearPendingCourse(mockAnyContext()).Return(nil).Once()

	identity, err := f.sessions.Join(context.Background(), JoinCommand{})
	require.NoError(t, err)
	assert.Equal(t, "CS471", identity.CourseCode)
}

func TestSessionServiceJoinRequiresCourse(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.prefs.EXPECT().PendingCourse(mockAnyContext()).Return("", false, nil).Once()

	_, err := f.sessions.Join(context.Background(), JoinCommand{CourseCode: "   "})
	require.ErrorIs(t, err, domain.ErrCourseCodeRequired)
}

func TestSessionServiceSaveProfileSuccessUpdatesNameAndDropsDraft(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(testIdentity(), true, nil).Once()
	f.service.EXPECT().UpsertProfile(mockAnyContext(), testUserID, mock.MatchedBy(func(p domain.Profile) bool {
		return p.CourseCode == "CS471" && p.DisplayName == "Ada L." && len(p.RolePreferences) == 2
	})).Return(nil).Once()
	f.identities.EXPECT().Set(mockAnyContext(), domain.Identity{UserID: testUserID, CourseCode: "CS471", DisplayName: "Ada L."}).Return(nil).Once()
	f.drafts.EXPECT().Delete(mockAnyContext(), "CS471").Return(nil).Once()
	f.clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)).Once()

	result, err := f.sessions.SaveProfile(context.Background(), SaveProfileCommand{Profile: domain.Profile{
		DisplayName:     " Ada L. ",
		RolePreferences: []string{"Backend", "Matching", "Backend"},
	}})
	require.NoError(t, err)
	assert.False(t, result.Local)
}

func TestSessionServiceSaveProfileRejectsTooManyRoles(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(testIdentity(), true, nil).Once()

	_, err := f.sessions.SaveProfile(context.Background(), SaveProfileCommand{Profile: domain.Profile{
		RolePreferences: []string{"Backend", "Matching", "Frontend"},
	}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "choose 1-2 roles")
}

func TestSessionServiceSaveProfileMalformedTokenPurgesWithoutRequest(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(domain.Identity{UserID: "abc123", CourseCode: "CS471"}, true, nil).Once()
	f.identities.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	_, err := f.sessions.SaveProfile(context.Background(), SaveProfileCommand{Profile: domain.Profile{RolePreferences: []string{"Backend"}}})
	require.ErrorIs(t, err, domain.ErrNoSession)
	f.service.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionServiceSaveProfileUnreachableKeepsDraft(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	draftsPath := filepath.Join(homeDir, "drafts", "profiles.toml")
	cfg := viper.New()
	cfg.Set(tomlrepo.DraftsPathKey, draftsPath)
	drafts, err := tomlrepo.NewProfileDraftRepository(cfg)
	require.NoError(t, err)

	identities := mocks.NewMockIdentityStore(t)
	prefs := mocks.NewMockPreferenceStore(t)
	service := mocks.NewMockMatchService(t)
	clock := mocks.NewMockClock(t)
	sessions := NewSessionService(identities, prefs, drafts, service, clock, zerolog.Nop())

	savedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	identities.EXPECT().Get(mockAnyContext()).Return(testIdentity(), true, nil)
	service.EXPECT().UpsertProfile(mockAnyContext(), testUserID, mock.Anything).Return(fmt.Errorf("dial: %w", domain.ErrServiceUnreachable)).Once()
	clock.EXPECT().Now().Return(savedAt).Once()

	result, err := sessions.SaveProfile(context.Background(), SaveProfileCommand{Profile: domain.Profile{
		RolePreferences: []string{"Frontend"},
		Skills:          []string{"Go", "SQL"},
	}})
	require.NoError(t, err)
	assert.True(t, result.Local)
	assert.Equal(t, draftsPath, result.DraftPath)

	draft, err := drafts.Get(context.Background(), "CS471")
	require.NoError(t, err)
	assert.Equal(t, testUserID, draft.UserID)
	assert.Equal(t, []string{"Go", "SQL"}, draft.Profile.Skills)
	assert.True(t, savedAt.Equal(draft.SavedAt))

	service.EXPECT().UpsertProfile(mockAnyContext(), testUserID, draft.Profile).Return(nil).Once()
	synced, err := sessions.SyncProfileDraft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, draft.Profile, synced.Profile)

	_, err = drafts.Get(context.Background(), "CS471")
	require.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestSessionServiceSaveProfileApplicationErrorIsReturned(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(testIdentity(), true, nil).Once()
	f.service.EXPECT().UpsertProfile(mockAnyContext(), testUserID, mock.Anything).Return(fmt.Errorf("skills too long: %w", domain.ErrRejected)).Once()

	_, err := f.sessions.SaveProfile(context.Background(), SaveProfileCommand{Profile: domain.Profile{RolePreferences: []string{"Backend"}}})
	require.ErrorIs(t, err, domain.ErrRejected)
	f.drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSessionServiceSyncProfileDraftWithoutDraft(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(testIdentity(), true, nil).Once()
	f.drafts.EXPECT().Get(mockAnyContext(), "CS471").Return(domain.ProfileDraft{}, domain.ErrDraftNotFound).Once()

	_, err := f.sessions.SyncProfileDraft(context.Background())
	require.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestSessionServiceSwitchCourse(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(testIdentity(), true, nil).Once()
	f.service.EXPECT().AddCourse(mockAnyContext(), "MATH201").Return(nil).Once()
	f.identities.EXPECT().Set(mockAnyContext(), domain.Identity{UserID: testUserID, CourseCode: "MATH201", DisplayName: "Ada"}).Return(nil).Once()

	identity, err := f.sessions.SwitchCourse(context.Background(), "math201")
	require.NoError(t, err)
	assert.Equal(t, "MATH201", identity.CourseCode)
}

func TestSessionServiceInvalidSessionKeepsIdentity(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(testIdentity(), true, nil).Once()
	f.service.EXPECT().UserCourses(mockAnyContext()).Return(domain.UserCourses{}, fmt.Errorf("rejected: %w", domain.ErrInvalidSession)).Once()

	_, err := f.sessions.Courses(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidSession)
	f.identities.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestSessionServiceCourseDefaultsToCurrent(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Get(mockAnyContext()).Return(testIdentity(), true, nil).Once()
	f.service.EXPECT().Course(mockAnyContext(), "CS471").Return(domain.CourseInfo{CourseCode: "CS471", CourseName: "Software Engineering"}, nil).Once()

	info, err := f.sessions.Course(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Software Engineering", info.CourseName)
}

func TestSessionServiceReset(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
	f.prefs.EXPECT().ClearPendingCourse(mockAnyContext()).Return(nil).Once()

	require.NoError(t, f.sessions.Reset(context.Background()))
}

func TestSessionServiceResetClearFailure(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t)
	f.identities.EXPECT().Clear(mockAnyContext()).Return(errors.New("read-only")).Once()

	err := f.sessions.Reset(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "clear identity")
}

func mockAnyContext() interface{} {
	return mock.Anything
}
