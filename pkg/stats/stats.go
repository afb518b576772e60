// Package stats derives dashboard aggregates from store snapshots. All
// functions are pure: they take a snapshot plus parameters and return
// values without touching the store.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/keep/pkg/model"
)

// Day truncates t to midnight in local time. All range filtering compares
// calendar days, not instants, so "today" behaves like the calendar filter
// a dashboard presents.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FilterByRange returns the entries whose date falls on a day in
// [Day(start), Day(end)). The start day is included, the end day excluded.
func FilterByRange(entries []model.LedgerEntry, start, end time.Time) []model.LedgerEntry {
	from := Day(start)
	to := Day(end)
	out := make([]model.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		day := Day(e.Date.Time)
		if day.Before(from) || !day.Before(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SumByType sums the amounts of entries matching the type. Zero for empty
// input.
func SumByType(entries []model.LedgerEntry, t model.EntryType) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.Type == t {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// Balance is total income minus total expense.
func Balance(entries []model.LedgerEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Signed())
	}
	return sum
}

// DayStat is one bucket of the trailing daily series.
type DayStat struct {
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DailySeries produces one bucket per day for the trailing days ending on
// now's day, oldest first, zero-filled for days with no activity.
func DailySeries(entries []model.LedgerEntry, days int, now time.Time) []DayStat {
	if days <= 0 {
		return nil
	}
	out := make([]DayStat, days)
	for i := 0; i < days; i++ {
		day := Day(now).AddDate(0, 0, i-days+1)
		stat := DayStat{
			Label:   day.Format("Jan 2"),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		for _, e := range entries {
			if !e.Date.SameDay(day) {
				continue
			}
			switch e.Type {
			case model.Income:
				stat.Income = stat.Income.Add(e.Amount)
			case model.Expense:
				stat.Expense = stat.Expense.Add(e.Amount)
			}
		}
		out[i] = stat
	}
	return out
}

// CategoryBreakdown maps category to summed amount over expense entries
// only.
func CategoryBreakdown(entries []model.LedgerEntry) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.Type != model.Expense {
			continue
		}
		sum, ok := out[e.Category]
		if !ok {
			sum = decimal.Zero
		}
		out[e.Category] = sum.Add(e.Amount)
	}
	return out
}

// CompletionRate is the percentage of completed tasks, 0 for an empty list.
func CompletionRate(tasks []model.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks)) * 100
}

// CompletedOn counts tasks completed whose creation day matches the given
// day. Backs the daily streak counter.
func CompletedOn(tasks []model.Task, day time.Time) int {
	count := 0
	for _, t := range tasks {
		if t.Completed && t.Created.SameDay(day) {
			count++
		}
	}
	return count
}
