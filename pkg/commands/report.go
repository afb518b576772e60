package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	mo := &options.MineOptions{}

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"dashboard"},
		Short:   "Show the dashboard for a trailing window",
		Example: `
keep report
keep report --window 1mo --mine
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}
			s := report.Report{
				Window: wo.Window,
				Mine:   mo.Mine,
				Store:  svc.Store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddMineArgs(cmd, mo)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
