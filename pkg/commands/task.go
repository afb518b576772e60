package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/runner/add"
)

func addTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a task",
		Example: `
keep add task water the plants
keep add task file taxes --priority high --category work
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if i.Interactive {
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if i.Interactive {
				var err error
				title, to.Category, to.Priority, err = promptTask()
				if err != nil {
					return err
				}
			}
			priority, err := model.ParsePriority(to.Priority)
			if err != nil {
				return err
			}

			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}

			s := add.Task{
				Title:       title,
				Description: to.Description,
				Category:    to.Category,
				Priority:    priority,
				Store:       svc.Store,
				ShowID:      io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
