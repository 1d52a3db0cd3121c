package cmd

import (
	"fmt"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change local preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, err := app.prefs.Theme(cmd.Context())
			if err != nil {
				return err
			}
			mode, err := app.prefs.MatchMode(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\nmode: %s\n", theme, mode)
			return err
		},
	}

	cmd.AddCommand(
		newPrefsThemeCmd(app),
		newPrefsModeCmd(app),
	)

	return cmd
}

func newPrefsThemeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [system|light|dark]",
		Short:     "Show or set the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.ThemeSystem), string(domain.ThemeLight), string(domain.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				theme, err := app.prefs.Theme(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), theme)
				return err
			}

			theme, err := domain.ParseTheme(args[0])
			if err != nil {
				return err
			}
			if err := app.prefs.SetTheme(cmd.Context(), theme); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", theme)
			return err
		},
	}
}

func newPrefsModeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "mode [skillmatch|quickmatch]",
		Short:     "Show or set how recommendations are ranked",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.MatchModeSkill), string(domain.MatchModeQuick)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				mode, err := app.prefs.MatchMode(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), mode)
				return err
			}

			mode, err := domain.ParseMatchMode(args[0])
			if err != nil {
				return err
			}
			if err := app.prefs.SetMatchMode(cmd.Context(), mode); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Match mode set to %s.\n", mode)
			return err
		},
	}
}
