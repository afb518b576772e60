package report

import (
	"context"
	"time"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/printers"
	"tableflip.dev/keep/pkg/stats"
	"tableflip.dev/keep/pkg/store"
	"tableflip.dev/keep/pkg/timeutil"
)

// Report prints the dashboard: summary totals, per-day series, category
// breakdown, and task completion for the trailing window.
type Report struct {
	Window string
	Mine   bool // limit to the active profile's entries

	Store *store.Store
}

func (r *Report) Do(ctx context.Context) error {
	window, label, err := timeutil.ParseWindow(r.Window)
	if err != nil {
		return err
	}
	days := timeutil.Days(window)
	now := time.Now()

	entries := r.Store.LedgerEntries()
	if r.Mine {
		if active := r.Store.ActiveProfile(); active != nil {
			entries = ownedBy(entries, active.ID)
		}
	}
	// Trailing window of whole days ending today, today included.
	start := stats.Day(now).AddDate(0, 0, 1-days)
	end := stats.Day(now).AddDate(0, 0, 1)
	entries = stats.FilterByRange(entries, start, end)

	tasks := r.Store.Tasks()

	pp := printers.PrettyPrint{}
	pp.Title("dashboard (" + label + ")")
	pp.Summary(
		stats.SumByType(entries, model.Income),
		stats.SumByType(entries, model.Expense),
		stats.Balance(entries),
	)
	pp.Series(stats.DailySeries(entries, days, now))
	pp.Breakdown(stats.CategoryBreakdown(entries))
	pp.Completion(stats.CompletionRate(tasks), stats.CompletedOn(tasks, now))
	return nil
}

func ownedBy(entries []model.LedgerEntry, profileID string) []model.LedgerEntry {
	out := make([]model.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if e.ProfileID == profileID {
			out = append(out, e)
		}
	}
	return out
}
