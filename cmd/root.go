package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), "Error:", describeError(err))
	}
	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cupid",
		Short:         "CourseCupid: find project teammates for your course",
		Long:          "cupid joins a course, publishes your teammate profile, shows ranked matches, records accept/pass decisions and follows your pod from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.terminal.bind(cmd)
		applyTheme(cmd, app)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newJoinCmd(app),
		newResetCmd(app),
		newWhoamiCmd(app),
		newSwitchCmd(app),
		newCoursesCmd(app),
		newCourseCmd(app),
		newProfileCmd(app),
		newFeedCmd(app),
		newSwipeCmd(app),
		newPodCmd(app),
		newWatchCmd(app),
		newAskCmd(app),
		newEscalateCmd(app),
		newPrefsCmd(app),
		newHealthCmd(app),
	)

	return rootCmd
}

// describeError adds the rejoin hint to session failures.
func describeError(err error) string {
	if errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrInvalidSession) {
		return err.Error() + "\nRun `cupid join <course>` again."
	}
	if errors.Is(err, domain.ErrServiceUnreachable) {
		return err.Error() + "\nThe matching service is unreachable; check api.base_url."
	}
	return err.Error()
}

func applyTheme(cmd *cobra.Command, app *app) {
	theme, err := app.prefs.Theme(cmd.Context())
	if err != nil {
		app.logger.Debug().Err(err).Msg("read theme")
		return
	}

	switch theme {
	case domain.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case domain.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}
