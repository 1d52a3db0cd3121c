package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/coursecupid-cli/internal/application"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Publish your teammate profile",
	}

	cmd.AddCommand(
		newProfileSetCmd(app),
		newProfileSyncCmd(app),
	)

	return cmd
}

func newProfileSetCmd(app *app) *cobra.Command {
	var profile domain.Profile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace your profile for the current course",
		Long:  fmt.Sprintf("Pick 1-%d roles among %s. When the service is unreachable the profile is kept locally; publish it later with `cupid profile sync`.", domain.MaxRolePreferences, strings.Join(domain.Roles, ", ")),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var result application.ProfileSaveResult
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Saving profile...", false, func(ctx context.Context) error {
				var err error
				result, err = app.sessions.SaveProfile(ctx, application.SaveProfileCommand{Profile: profile})
				return err
			})
			if err != nil {
				return err
			}

			if result.Local {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Service unreachable: profile kept locally in %s.\nRun `cupid profile sync` once it is back.\n", result.DraftPath)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Profile saved. Run `cupid feed` to see your matches.")
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&profile.RolePreferences, "role", nil, "Preferred role (repeatable, 1-2)")
	flags.StringSliceVar(&profile.Skills, "skill", nil, "Skill (repeatable)")
	flags.StringSliceVar(&profile.Availability, "availability", nil, "Availability slot (repeatable)")
	flags.StringVar(&profile.Goals, "goals", "", "What you want out of the project")
	flags.StringVar(&profile.DisplayName, "name", "", "Display name")
	flags.StringVar(&profile.Contact.Discord, "discord", "", "Discord handle, revealed after a mutual accept")
	flags.StringVar(&profile.Contact.LinkedIn, "linkedin", "", "LinkedIn URL, revealed after a mutual accept")
	flags.StringVar(&profile.Contact.Email, "email", "", "Email, revealed after a mutual accept")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newProfileSyncCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Publish the locally kept profile of the current course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := app.sessions.SyncProfileDraft(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile for %s published (kept locally since %s).\n", draft.Profile.CourseCode, draft.SavedAt.Local().Format("02 Jan 15:04"))
			return err
		},
	}
}
