package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	mo := &options.MineOptions{}

	cmd := &cobra.Command{
		Use:   "get [collection]",
		Short: "Get tasks, ledger, reminders, or profiles",
		Example: `
keep get
keep get tasks
keep get ledger --mine
`,
		ValidArgs: []string{"tasks", "ledger", "reminders", "profiles"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}

			kind := get.Kind("")
			if len(args) == 1 {
				kind = get.Kind(args[0])
			}
			s := get.Get{
				Kind:   kind,
				Mine:   mo.Mine,
				ShowID: io.ShowID,
				Store:  svc.Store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddMineArgs(cmd, mo)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
