package printers

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/shopspring/decimal"

	"tableflip.dev/keep/pkg/stats"
)

// Summary prints the income/expense/balance header line.
func (pp *PrettyPrint) Summary(income, expense, balance decimal.Decimal) {
	in := color.New(color.FgGreen)
	out := color.New(color.FgRed)
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "   "
	tbl.AddRow("income", in.Sprint(income.StringFixed(2)))
	tbl.AddRow("expense", out.Sprint(expense.StringFixed(2)))
	tbl.AddRow("balance", bold.Sprint(balance.StringFixed(2)))
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Series prints the per-day income/expense table, oldest first.
func (pp *PrettyPrint) Series(series []stats.DayStat) {
	if len(series) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("DAY", "INCOME", "EXPENSE")
	for _, day := range series {
		tbl.AddRow(day.Label, day.Income.StringFixed(2), day.Expense.StringFixed(2))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Breakdown prints expense totals per category, biggest first.
func (pp *PrettyPrint) Breakdown(byCategory map[string]decimal.Decimal) {
	if len(byCategory) == 0 {
		pp.none()
		return
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return byCategory[categories[i]].GreaterThan(byCategory[categories[j]])
	})

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range categories {
		tbl.AddRow(c, byCategory[c].StringFixed(2))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Completion prints the task completion percentage and the streak line.
func (pp *PrettyPrint) Completion(rate float64, completedToday int) {
	bold := color.New(color.Bold)
	_, _ = bold.Printf("%.0f%%", rate)
	_, _ = color.New(color.Faint).Printf(" of tasks completed, %d today\n\n", completedToday)
}
