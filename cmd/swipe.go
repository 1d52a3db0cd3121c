package cmd

import (
	"fmt"

	"github.com/bnema/coursecupid-cli/internal/application"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSwipeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "swipe <user-id> accept|pass",
		Short:     "Accept or pass on a recommended classmate",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.SwipeAccept), string(domain.SwipePass)},
		RunE: func(cmd *cobra.Command, args []string) error {
			decision, err := domain.ParseSwipeDecision(args[1])
			if err != nil {
				return err
			}

			outcome, err := app.swipes.Submit(cmd.Context(), application.SwipeCommand{
				TargetID: domain.Token(args[0]),
				Decision: decision,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case outcome.Result.Mutual:
				_, _ = fmt.Fprintln(out, "Mutual accept! Contact details are now unlocked.")
			case decision == domain.SwipeAccept:
				_, _ = fmt.Fprintln(out, "Accepted. You will match if they accept too.")
			default:
				_, _ = fmt.Fprintln(out, "Passed.")
			}
			if group, ok := outcome.Group.(domain.ActiveGroup); ok {
				_, _ = fmt.Fprintf(out, "Pod %s: %d members. Run `cupid pod`.\n", group.GroupID, len(group.Members))
			}
			_, err = fmt.Fprintf(out, "%d candidates left.\n", len(outcome.Candidates))
			return err
		},
	}
}
