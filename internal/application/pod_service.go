package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/rs/zerolog"
)

type PodService struct {
	service    ports.MatchService
	guard      *SessionGuard
	reconciler *Reconciler
	clock      ports.Clock
	logger     zerolog.Logger
}

func NewPodService(service ports.MatchService, guard *SessionGuard, reconciler *Reconciler, clock ports.Clock, logger zerolog.Logger) *PodService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &PodService{service: service, guard: guard, reconciler: reconciler, clock: clock, logger: logger}
}

// View refreshes the pod and resolves what the caller may see of each member.
// Without a group it returns domain.ErrNoGroup.
func (s *PodService) View(ctx context.Context) (PodView, error) {
	identity, err := s.guard.Require(ctx)
	if err != nil {
		return PodView{}, err
	}

	group, err := s.activeGroup(ctx, true)
	if err != nil {
		return PodView{}, err
	}

	return PodView{
		Self:        identity.UserID,
		Group:       group,
		Disclosures: domain.MemberDisclosures(identity.UserID, group),
		Links:       domain.PodInstantLinks(group.GroupID),
		Now:         s.clock.Now(),
	}, nil
}

// SetHub publishes the pod's shared workspace link. Only the leader named by
// the service may do so.
func (s *PodService) SetHub(ctx context.Context, cmd SetHubCommand) (domain.ActiveGroup, error) {
	identity, err := s.guard.Require(ctx)
	if err != nil {
		return domain.ActiveGroup{}, err
	}

	link := strings.TrimSpace(cmd.HubLink)
	if link == "" {
		return domain.ActiveGroup{}, domain.ErrHubLinkRequired
	}

	group, err := s.activeGroup(ctx, false)
	if err != nil {
		return domain.ActiveGroup{}, err
	}
	if !group.IsLeader(identity.UserID) {
		return domain.ActiveGroup{}, domain.ErrNotLeader
	}

	if err := s.service.SetHub(ctx, identity.CourseCode, identity.UserID, link); err != nil {
		s.guard.Forget(ctx, err)
		return domain.ActiveGroup{}, fmt.Errorf("set hub link: %w", err)
	}

	refreshed, err := s.activeGroup(ctx, true)
	if err != nil {
		s.logger.Debug().Err(err).Msg("refresh pod after hub update")
		group.HubLink = link
		return group, nil
	}

	return refreshed, nil
}

// InstantLinks returns the video and file-drop rooms of the current pod.
func (s *PodService) InstantLinks(ctx context.Context) (domain.InstantLinks, error) {
	if _, err := s.guard.Require(ctx); err != nil {
		return domain.InstantLinks{}, err
	}

	group, err := s.activeGroup(ctx, false)
	if err != nil {
		return domain.InstantLinks{}, err
	}

	return domain.PodInstantLinks(group.GroupID), nil
}

func (s *PodService) activeGroup(ctx context.Context, refresh bool) (domain.ActiveGroup, error) {
	state, known := s.reconciler.Current()
	if refresh || !known {
		fresh, err := s.reconciler.Refresh(ctx)
		if err != nil {
			return domain.ActiveGroup{}, err
		}
		state = fresh
	}

	switch group := state.(type) {
	case domain.ActiveGroup:
		return group, nil
	case domain.NoGroup:
		return domain.ActiveGroup{}, domain.ErrNoGroup
	default:
		return domain.ActiveGroup{}, fmt.Errorf("unhandled group state %T", state)
	}
}
