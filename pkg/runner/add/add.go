package add

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/printers"
	"tableflip.dev/keep/pkg/store"
)

// Task creates a to-do item and prints the updated list.
type Task struct {
	Title       string
	Description string
	Category    string
	Priority    model.Priority

	Store  *store.Store
	ShowID bool
}

func (a *Task) Do(ctx context.Context) error {
	_, err := a.Store.AddTask(ctx, model.Task{
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Priority:    a.Priority,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.Title("tasks")
	pp.Tasks(a.Store.Tasks()...)
	return nil
}

// Entry creates a ledger record owned by the active profile.
type Entry struct {
	Type        model.EntryType
	Amount      decimal.Decimal
	Category    string
	Description string
	On          *time.Time

	Store  *store.Store
	ShowID bool
}

func (a *Entry) Do(ctx context.Context) error {
	e := model.LedgerEntry{
		Type:        a.Type,
		Amount:      a.Amount,
		Category:    a.Category,
		Description: a.Description,
	}
	if a.On != nil {
		e.Date = model.Timestamp{Time: *a.On}
	}
	if active := a.Store.ActiveProfile(); active != nil {
		e.ProfileID = active.ID
	}

	if _, err := a.Store.AddLedgerEntry(ctx, e); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.Title("ledger")
	pp.Ledger(a.Store.LedgerEntries()...)
	return nil
}

// Reminder creates a reminder owned by the active profile.
type Reminder struct {
	Title  string
	Body   string
	At     time.Time
	Repeat model.Recurrence

	Store  *store.Store
	ShowID bool
}

func (a *Reminder) Do(ctx context.Context) error {
	r := model.Reminder{
		Title:  a.Title,
		Body:   a.Body,
		Time:   model.Timestamp{Time: a.At},
		Repeat: a.Repeat,
		Active: true,
	}
	if active := a.Store.ActiveProfile(); active != nil {
		r.ProfileID = active.ID
	}

	if _, err := a.Store.AddReminder(ctx, r); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.Title("reminders")
	pp.Reminders(a.Store.Reminders()...)
	return nil
}

// Profile creates a profile. New profiles start inactive.
type Profile struct {
	Name   string
	Avatar string

	Store  *store.Store
	ShowID bool
}

func (a *Profile) Do(ctx context.Context) error {
	if _, err := a.Store.AddProfile(ctx, model.Profile{Name: a.Name, Avatar: a.Avatar}); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.Title("profiles")
	active := ""
	if p := a.Store.ActiveProfile(); p != nil {
		active = p.ID
	}
	pp.Profiles(active, a.Store.Profiles()...)
	return nil
}
