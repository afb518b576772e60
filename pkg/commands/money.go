package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/runner/add"
)

func addIncome(topLevel *cobra.Command) {
	addMoney(topLevel, model.Income, "salary", `
keep add income 2500 --category salary
`)
}

func addExpense(topLevel *cobra.Command) {
	addMoney(topLevel, model.Expense, "food", `
keep add expense 12.50 --category food -d "lunch"
`)
}

func addMoney(topLevel *cobra.Command, typ model.EntryType, defaultCategory, example string) {
	eo := &options.EntryOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	var amount decimal.Decimal

	cmd := &cobra.Command{
		Use:       string(typ) + " <amount>",
		Short:     "Add an " + string(typ) + " record",
		Example:   example,
		ValidArgs: typ.Categories(),
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an amount")
			}
			var err error
			amount, err = decimal.NewFromString(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			svc, err := loadService(context.Background(), nil)
			if err != nil {
				return err
			}

			s := add.Entry{
				Type:        typ,
				Amount:      amount,
				Category:    eo.Category,
				Description: eo.Description,
				On:          on,
				Store:       svc.Store,
				ShowID:      io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo, defaultCategory)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
