package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/coursecupid-cli/internal/adapters/render/view"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAskCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the course help desk",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.helpDesk.SetQuestion(strings.Join(args, " "))

			var exchange domain.AskExchange
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Asking...", asJSON, func(ctx context.Context) error {
				var err error
				exchange, err = app.helpDesk.Ask(ctx)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), exchange)
			}

			rendered, err := view.RenderAnswer(exchange)
			if err != nil {
				return fmt.Errorf("render answer: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\nNot helpful? `cupid escalate %q`\n", rendered, exchange.Question)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newEscalateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "escalate <question>",
		Short: "Open a ticket with the course staff",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.helpDesk.SetQuestion(strings.Join(args, " "))

			ticket, err := app.helpDesk.Escalate(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !ticket.OK {
				_, err = fmt.Fprintf(out, "Ticket not created: %s\n", firstNonEmpty(ticket.Message, "no reason given"))
				return err
			}

			_, err = fmt.Fprintf(out, "Ticket %s opened. %s\n", ticket.TicketID, ticket.Message)
			return err
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
