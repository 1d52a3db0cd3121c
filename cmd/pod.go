package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/coursecupid-cli/internal/adapters/render/view"
	"github.com/bnema/coursecupid-cli/internal/application"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPodCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pod",
		Short: "Show your project pod",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			podView, err := app.pods.View(cmd.Context())
			if errors.Is(err, domain.ErrNoGroup) {
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), view.NoPodDocument())
				}
				return writeNoPod(cmd)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view.NewPodDocument(podView))
			}

			return writePod(cmd, podView)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.AddCommand(
		newPodHubCmd(app),
		newPodLinksCmd(app),
	)

	return cmd
}

func newPodHubCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hub <link>",
		Short: "Set the pod's shared workspace link (leader only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := app.pods.SetHub(cmd.Context(), application.SetHubCommand{HubLink: args[0]})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Hub for pod %s set to %s\n", group.GroupID, group.HubLink)
			return err
		},
	}
}

func newPodLinksCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "Print the pod's video and file-drop rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			links, err := app.pods.InstantLinks(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Video: %s\nFiles: %s\n", links.Video, links.Files)
			return err
		},
	}
}

func writePod(cmd *cobra.Command, podView application.PodView) error {
	rendered, err := view.RenderPod(podView)
	if err != nil {
		return fmt.Errorf("render pod: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeNoPod(cmd *cobra.Command) error {
	rendered, err := view.RenderNoPod()
	if err != nil {
		return fmt.Errorf("render pod: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
