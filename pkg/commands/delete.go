package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete something",
		Example: `
keep delete task <id>
keep delete entry <id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	deleteTask(cmd)
	deleteEntry(cmd)
	deleteReminder(cmd)
	deleteProfile(cmd)

	topLevel.AddCommand(cmd)
}

func deleteTask(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	now := false

	cmd := &cobra.Command{
		Use:   "task <id>",
		Short: "Delete a task (undoable for a few seconds)",
		Example: `
keep delete task <id>
keep delete task <id> --now
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}
			s := remove.Task{
				ID:      io.ID,
				Now:     now,
				Store:   svc.Store,
				Deletes: svc.Deletes,
				ShowID:  io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&now, "now", false, "Delete immediately, no undo window.")
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func deleteEntry(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "entry <id>",
		Short: "Delete a ledger entry",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}
			s := remove.Entry{ID: io.ID, Store: svc.Store}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func deleteReminder(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "reminder <id>",
		Short: "Delete a reminder",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a reminder id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}
			s := remove.Reminder{ID: io.ID, Store: svc.Store}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func deleteProfile(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "profile <id>",
		Short: "Delete a profile (owned records are kept, orphaned)",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a profile id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}
			s := remove.Profile{ID: io.ID, Store: svc.Store}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
