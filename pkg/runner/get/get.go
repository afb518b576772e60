package get

import (
	"context"
	"fmt"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/printers"
	"tableflip.dev/keep/pkg/store"
)

// Kind selects which collection to print.
type Kind string

const (
	Tasks     Kind = "tasks"
	Ledger    Kind = "ledger"
	Reminders Kind = "reminders"
	Profiles  Kind = "profiles"
)

// Get prints one collection, or all of them when Kind is empty.
type Get struct {
	Kind   Kind
	Mine   bool // limit ledger/reminders to the active profile
	ShowID bool

	Store *store.Store
}

func (g *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: g.ShowID}

	switch g.Kind {
	case Tasks:
		g.tasks(pp)
	case Ledger:
		g.ledger(pp)
	case Reminders:
		g.reminders(pp)
	case Profiles:
		g.profiles(pp)
	case "":
		g.profiles(pp)
		g.tasks(pp)
		g.ledger(pp)
		g.reminders(pp)
	default:
		return fmt.Errorf("get: unknown kind %q", g.Kind)
	}
	return nil
}

func (g *Get) tasks(pp printers.PrettyPrint) {
	tasks := g.Store.Tasks()
	pp.TitleWithCount("tasks", len(tasks))
	pp.Tasks(tasks...)
}

func (g *Get) ledger(pp printers.PrettyPrint) {
	entries := g.Store.LedgerEntries()
	if g.Mine {
		entries = g.ownedEntries(entries)
	}
	pp.TitleWithCount("ledger", len(entries))
	pp.Ledger(entries...)
}

func (g *Get) reminders(pp printers.PrettyPrint) {
	reminders := g.Store.Reminders()
	if g.Mine {
		reminders = g.ownedReminders(reminders)
	}
	pp.TitleWithCount("reminders", len(reminders))
	pp.Reminders(reminders...)
}

func (g *Get) profiles(pp printers.PrettyPrint) {
	profiles := g.Store.Profiles()
	pp.TitleWithCount("profiles", len(profiles))
	active := ""
	if p := g.Store.ActiveProfile(); p != nil {
		active = p.ID
	}
	pp.Profiles(active, profiles...)
}

func (g *Get) ownedEntries(entries []model.LedgerEntry) []model.LedgerEntry {
	active := g.Store.ActiveProfile()
	if active == nil {
		return nil
	}
	out := make([]model.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if e.ProfileID == active.ID {
			out = append(out, e)
		}
	}
	return out
}

func (g *Get) ownedReminders(reminders []model.Reminder) []model.Reminder {
	active := g.Store.ActiveProfile()
	if active == nil {
		return nil
	}
	out := make([]model.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.ProfileID == active.ID {
			out = append(out, r)
		}
	}
	return out
}
