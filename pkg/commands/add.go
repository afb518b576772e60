package commands

import (
	"github.com/spf13/cobra"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
keep add task water the plants
keep add expense 12.50 --category food
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTask(cmd)
	addIncome(cmd)
	addExpense(cmd)
	addReminder(cmd)
	addProfile(cmd)

	topLevel.AddCommand(cmd)
}
