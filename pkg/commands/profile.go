package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/glyph"
	"tableflip.dev/keep/pkg/runner/add"
)

func addProfile(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	avatar := ""
	name := ""

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Add a profile",
		Example: `
keep add profile sam --avatar 🧑
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a profile name")
			}
			name = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}

			s := add.Profile{
				Name:   name,
				Avatar: avatar,
				Store:  svc.Store,
				ShowID: io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&avatar, "avatar", "a", glyph.DefaultAvatars()[0],
		"Avatar glyph for the profile.")
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
