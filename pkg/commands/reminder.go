package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/runner/add"
	"tableflip.dev/keep/pkg/timeutil"
)

func addReminder(topLevel *cobra.Command) {
	ro := &options.ReminderOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Add a reminder for the active profile",
		Example: `
keep add reminder stand up --at 09:30 --repeat daily
keep add reminder pay rent --on 2026-9-1 --at 08:00 --repeat monthly
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a reminder title")
			}
			title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			repeat, err := model.ParseRecurrence(ro.Repeat)
			if err != nil {
				return err
			}
			hour, min, err := timeutil.ParseClock(ro.At)
			if err != nil {
				return err
			}
			day := time.Now()
			if on, err := oo.GetOn(); err != nil {
				return err
			} else if on != nil {
				day = *on
			}

			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}
			if svc.Store.ActiveProfile() == nil {
				return errors.New("no active profile; add one and `keep switch` to it first")
			}

			s := add.Reminder{
				Title:  title,
				Body:   ro.Body,
				At:     timeutil.At(day, hour, min),
				Repeat: repeat,
				Store:  svc.Store,
				ShowID: io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddReminderArgs(cmd, ro)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
