package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/coursecupid-cli/internal/adapters/render/view"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFeedCmd(app *app) *cobra.Command {
	var asJSON bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show ranked teammate recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var candidates []domain.CandidateProfile
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading matches...", asJSON, func(ctx context.Context) error {
				var err error
				candidates, err = app.feed.Load(ctx)
				if err != nil {
					return err
				}
				if _, err := app.reconciler.Refresh(ctx); err != nil {
					app.logger.Debug().Err(err).Msg("refresh pod for feed")
				}
				return nil
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), candidates)
			}

			if err := writeFeed(cmd, app, candidates); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			return followPod(cmd, app, true)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep polling and show the pod once it forms")

	return cmd
}

func writeFeed(cmd *cobra.Command, app *app, candidates []domain.CandidateProfile) error {
	ctx := cmd.Context()
	identity, err := app.guard.Require(ctx)
	if err != nil {
		return err
	}

	mode, err := app.prefs.MatchMode(ctx)
	if err != nil {
		mode = domain.MatchModeSkill
	}

	state, _ := app.reconciler.Current()
	rendered, err := view.RenderFeed(candidates, view.FeedOptions{
		CourseCode: identity.CourseCode,
		Mode:       mode,
		Now:        app.now(),
		InPod:      domain.HasGroup(state),
	})
	if err != nil {
		return fmt.Errorf("render feed: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
