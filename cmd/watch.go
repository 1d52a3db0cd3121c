package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	var exitOnPod bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the pod and keep your session alive until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.guard.Require(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Watching for a pod every %s (Ctrl+C to stop)...\n", app.cfg.PollInterval)
			return followPod(cmd, app, exitOnPod)
		},
	}

	cmd.Flags().BoolVar(&exitOnPod, "exit-on-pod", false, "Stop once a pod has formed")

	return cmd
}

// followPod runs the pod reconciler and the liveness reporter until the
// command is interrupted. Every newly formed pod is rendered in full.
func followPod(cmd *cobra.Command, app *app, exitOnPod bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.terminal.follow(func(ctx context.Context) {
		podView, err := app.pods.View(ctx)
		if err != nil {
			app.logger.Debug().Err(err).Msg("load formed pod")
			return
		}
		if err := writePod(cmd, podView); err != nil {
			app.logger.Debug().Err(err).Msg("render formed pod")
		}
		if exitOnPod {
			stop()
		}
	})
	defer app.terminal.follow(nil)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		app.reconciler.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		app.liveness.Run(ctx)
	}()
	wg.Wait()

	return nil
}
