package commands

import (
	"context"
	"os/signal"
	"syscall"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/runner/agent"
	"tableflip.dev/keep/pkg/schedule"
)

func addAgent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Stay resident and fire reminders for the active profile",
		Long: `Stays in the foreground, watches the store for changes, and delivers
reminder notifications in the terminal when they come due. Stop with ctrl-c.`,
		Example: `
keep agent
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, err := app.Load(schedule.NewLocalNotifier(nil))
			if err != nil {
				return err
			}

			s := agent.Agent{Service: svc}
			err = s.Do(ctx)
			if ctx.Err() != nil {
				// ctrl-c is a clean exit.
				return nil
			}
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
