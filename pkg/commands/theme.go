package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/remote"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme [name]",
		Short:     "Show or set the saved theme preference",
		ValidArgs: []string{"light", "dark", "black"},
		Example: `
keep theme
keep theme dark
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := remote.LoadConfig()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Println(cfg.Theme())
				return nil
			}

			name := args[0]
			switch name {
			case "light", "dark", "black":
			default:
				return errors.New("theme must be one of: light, dark, black")
			}
			if err := cfg.SaveTheme(name); err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
