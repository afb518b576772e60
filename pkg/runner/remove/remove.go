package remove

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/keep/pkg/store"
	"tableflip.dev/keep/pkg/undo"
)

// Task deletes a task with an undo grace period. The record disappears from
// the list immediately, and the remote delete only happens once the grace
// period elapses without an undo.
type Task struct {
	ID   string
	Now  bool // skip the grace period entirely
	Wait time.Duration

	Store   *store.Store
	Deletes *undo.Controller
	In      io.Reader
	ShowID  bool
}

func (r *Task) Do(ctx context.Context) error {
	if r.Now {
		return r.Store.DeleteTask(ctx, r.ID)
	}

	if err := r.Deletes.Delete(ctx, r.ID); err != nil {
		return err
	}

	wait := r.Wait
	if wait <= 0 {
		wait = undo.DefaultGrace
	}
	in := r.In
	if in == nil {
		in = os.Stdin
	}

	faint := color.New(color.Faint)
	fmt.Println("task deleted!")
	_, _ = faint.Printf("press u then enter to undo (%ds)\n", int(wait.Seconds()))

	answer := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		if scanner.Scan() {
			answer <- strings.TrimSpace(strings.ToLower(scanner.Text()))
		}
	}()

	select {
	case <-ctx.Done():
	case line := <-answer:
		if line == "u" || line == "undo" {
			if err := r.Deletes.Undo(r.ID); err != nil {
				return err
			}
			fmt.Println("restored")
			return nil
		}
	case <-time.After(wait):
	}

	// Grace expired (or input declined the undo); make sure the remote
	// delete lands before the process exits.
	r.Deletes.Flush(ctx)
	r.Deletes.Wait(r.ID)
	return nil
}

// Entry deletes a ledger record immediately; ledger deletion has no undo.
type Entry struct {
	ID string

	Store *store.Store
}

func (r *Entry) Do(ctx context.Context) error {
	return r.Store.DeleteLedgerEntry(ctx, r.ID)
}

// Reminder deletes a reminder immediately.
type Reminder struct {
	ID string

	Store *store.Store
}

func (r *Reminder) Do(ctx context.Context) error {
	return r.Store.DeleteReminder(ctx, r.ID)
}

// Profile deletes a profile. Owned ledger entries and reminders are left in
// place; the orphan report surfaces them.
type Profile struct {
	ID string

	Store *store.Store
}

func (r *Profile) Do(ctx context.Context) error {
	if err := r.Store.RemoveProfile(ctx, r.ID); err != nil {
		return err
	}
	entries, reminders := r.Store.Orphans()
	if len(entries) > 0 || len(reminders) > 0 {
		faint := color.New(color.Faint)
		_, _ = faint.Printf("%d ledger entries and %d reminders are now orphaned; reassign or delete them\n",
			len(entries), len(reminders))
	}
	return nil
}
