package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/switchprofile"
)

func addSwitch(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	target := ""

	cmd := &cobra.Command{
		Use:   "switch <profile>",
		Short: "Switch the active profile",
		Example: `
keep switch sam
keep switch <profile id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a profile id or name")
			}
			target = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}
			s := switchprofile.Switch{
				Target: target,
				Store:  svc.Store,
				ShowID: io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
