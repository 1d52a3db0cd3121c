package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/rs/zerolog"
)

// SessionService owns joining, profile submission and course switching.
type SessionService struct {
	identities ports.IdentityStore
	prefs      ports.PreferenceStore
	drafts     ports.ProfileDraftRepository
	service    ports.MatchService
	guard      *SessionGuard
	clock      ports.Clock
	logger     zerolog.Logger
}

func NewSessionService(
	identities ports.IdentityStore,
	prefs ports.PreferenceStore,
	drafts ports.ProfileDraftRepository,
	service ports.MatchService,
	clock ports.Clock,
	logger zerolog.Logger,
) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{
		identities: identities,
		prefs:      prefs,
		drafts:     drafts,
		service:    service,
		guard:      NewSessionGuard(identities, logger),
		clock:      clock,
		logger:     logger,
	}
}

func (s *SessionService) Guard() *SessionGuard {
	return s.guard
}

// Join enrolls in a course and persists the returned identity. When no course
// is given the pending course left by an earlier unreachable join is used.
// Nothing is stored unless the service returns a well-formed user id.
func (s *SessionService) Join(ctx context.Context, cmd JoinCommand) (domain.Identity, error) {
	courseCode := domain.NormalizeCourseCode(cmd.CourseCode)
	if courseCode == "" {
		pending, ok, err := s.prefs.PendingCourse(ctx)
		if err != nil {
			return domain.Identity{}, fmt.Errorf("read pending course: %w", err)
		}
		if !ok {
			return domain.Identity{}, domain.ErrCourseCodeRequired
		}
		courseCode = pending
	}

	current, ok, err := s.identities.Get(ctx)
	if errors.Is(err, domain.ErrCorruptIdentity) || (err == nil && ok && current.Corrupt()) {
		if clearErr := s.identities.Clear(ctx); clearErr != nil {
			return domain.Identity{}, fmt.Errorf("clear corrupt identity: %w", clearErr)
		}
	} else if err != nil {
		return domain.Identity{}, fmt.Errorf("read identity: %w", err)
	}

	displayName := strings.TrimSpace(cmd.DisplayName)
	enrollment, err := s.service.JoinCourse(ctx, courseCode, displayName)
	if err != nil {
		if errors.Is(err, domain.ErrServiceUnreachable) {
			if pendingErr := s.prefs.SetPendingCourse(ctx, courseCode); pendingErr != nil {
				return domain.Identity{}, fmt.Errorf("join course %s: %w", courseCode, errors.Join(err, pendingErr))
			}
		}
		return domain.Identity{}, fmt.Errorf("join course %s: %w", courseCode, err)
	}

	userID := domain.CleanToken(string(enrollment.UserID))
	if userID == "" {
		return domain.Identity{}, domain.ErrMissingUserID
	}
	if !domain.ValidToken(userID) {
		return domain.Identity{}, fmt.Errorf("%w: %q", domain.ErrMalformedUserID, userID)
	}

	identity := domain.Identity{
		UserID:      domain.Token(userID),
		CourseCode:  courseCode,
		DisplayName: firstNonBlank(enrollment.DisplayName, displayName),
	}
	if err := s.identities.Set(ctx, identity); err != nil {
		return domain.Identity{}, fmt.Errorf("save identity: %w", err)
	}
	if err := s.prefs.ClearPendingCourse(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("clear pending course")
	}
	s.logger.Info().Str("course", courseCode).Msg("joined course")

	return identity, nil
}

// SaveProfile submits the profile for the current course. An unreachable
// service is not an error: the profile is kept as a local draft and the
// result reports Local.
func (s *SessionService) SaveProfile(ctx context.Context, cmd SaveProfileCommand) (ProfileSaveResult, error) {
	identity, err := s.guard.Require(ctx)
	if err != nil {
		return ProfileSaveResult{}, err
	}

	profile := cmd.Profile
	if strings.TrimSpace(profile.CourseCode) == "" {
		profile.CourseCode = identity.CourseCode
	}
	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return ProfileSaveResult{}, err
	}

	err = s.service.UpsertProfile(ctx, identity.UserID, profile)
	switch {
	case errors.Is(err, domain.ErrServiceUnreachable):
		draft := domain.ProfileDraft{UserID: identity.UserID, Profile: profile, SavedAt: s.clock.Now().UTC()}
		if saveErr := s.drafts.Save(ctx, draft); saveErr != nil {
			return ProfileSaveResult{}, fmt.Errorf("save profile draft: %w", errors.Join(err, saveErr))
		}
		s.logger.Warn().Err(err).Str("course", profile.CourseCode).Msg("profile kept as local draft")

		return ProfileSaveResult{Local: true, DraftPath: s.draftPath(), SavedAt: draft.SavedAt}, nil
	case err != nil:
		s.guard.Forget(ctx, err)
		return ProfileSaveResult{}, fmt.Errorf("save profile: %w", err)
	}

	s.afterProfileSaved(ctx, identity, profile)

	return ProfileSaveResult{SavedAt: s.clock.Now().UTC()}, nil
}

// SyncProfileDraft resubmits the local draft of the current course.
func (s *SessionService) SyncProfileDraft(ctx context.Context) (domain.ProfileDraft, error) {
	identity, err := s.guard.Require(ctx)
	if err != nil {
		return domain.ProfileDraft{}, err
	}

	draft, err := s.drafts.Get(ctx, identity.CourseCode)
	if err != nil {
		return domain.ProfileDraft{}, fmt.Errorf("load profile draft: %w", err)
	}

	if err := s.service.UpsertProfile(ctx, identity.UserID, draft.Profile); err != nil {
		s.guard.Forget(ctx, err)
		return domain.ProfileDraft{}, fmt.Errorf("sync profile draft: %w", err)
	}
	s.afterProfileSaved(ctx, identity, draft.Profile)

	return draft, nil
}

func (s *SessionService) afterProfileSaved(ctx context.Context, identity domain.Identity, profile domain.Profile) {
	if profile.DisplayName != "" && profile.DisplayName != identity.DisplayName {
		identity.DisplayName = profile.DisplayName
		if err := s.identities.Set(ctx, identity); err != nil {
			s.logger.Warn().Err(err).Msg("update display name")
		}
	}
	if err := s.drafts.Delete(ctx, profile.CourseCode); err != nil {
		s.logger.Warn().Err(err).Msg("delete synced profile draft")
	}
}

// SwitchCourse adds a course to the account and makes it the current one.
func (s *SessionService) SwitchCourse(ctx context.Context, rawCourse string) (domain.Identity, error) {
	identity, err := s.guard.Require(ctx)
	if err != nil {
		return domain.Identity{}, err
	}

	courseCode := domain.NormalizeCourseCode(rawCourse)
	if courseCode == "" {
		return domain.Identity{}, domain.ErrCourseCodeRequired
	}

	if err := s.service.AddCourse(ctx, courseCode); err != nil {
		s.guard.Forget(ctx, err)
		return domain.Identity{}, fmt.Errorf("add course %s: %w", courseCode, err)
	}

	identity.CourseCode = courseCode
	if err := s.identities.Set(ctx, identity); err != nil {
		return domain.Identity{}, fmt.Errorf("save identity: %w", err)
	}

	return identity, nil
}

func (s *SessionService) Courses(ctx context.Context) (domain.UserCourses, error) {
	if _, err := s.guard.Require(ctx); err != nil {
		return domain.UserCourses{}, err
	}

	courses, err := s.service.UserCourses(ctx)
	if err != nil {
		s.guard.Forget(ctx, err)
		return domain.UserCourses{}, fmt.Errorf("list courses: %w", err)
	}

	return courses, nil
}

// Course describes rawCourse, or the current course when rawCourse is blank.
func (s *SessionService) Course(ctx context.Context, rawCourse string) (domain.CourseInfo, error) {
	identity, err := s.guard.Require(ctx)
	if err != nil {
		return domain.CourseInfo{}, err
	}

	courseCode := domain.NormalizeCourseCode(rawCourse)
	if courseCode == "" {
		courseCode = identity.CourseCode
	}

	info, err := s.service.Course(ctx, courseCode)
	if err != nil {
		s.guard.Forget(ctx, err)
		return domain.CourseInfo{}, fmt.Errorf("get course %s: %w", courseCode, err)
	}

	return info, nil
}

// Reset forgets the local session and any pending join.
func (s *SessionService) Reset(ctx context.Context) error {
	if err := s.identities.Clear(ctx); err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}
	if err := s.prefs.ClearPendingCourse(ctx); err != nil {
		return fmt.Errorf("clear pending course: %w", err)
	}

	return nil
}

func (s *SessionService) Health(ctx context.Context) (domain.HealthStatus, error) {
	status, err := s.service.Health(ctx)
	if err != nil {
		return domain.HealthStatus{}, fmt.Errorf("check health: %w", err)
	}

	return status, nil
}

func (s *SessionService) draftPath() string {
	if located, ok := s.drafts.(interface{ Path() string }); ok {
		return located.Path()
	}
	return ""
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
