// Package store owns the four in-memory entity collections and keeps them
// consistent with the remote document store. All writes go remote-first:
// local state only changes after the remote call succeeds, so the process
// never presents unpersisted state as durable.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/remote"
)

// Event is emitted on the store's event channel after every successful
// mutation or refresh, naming the collection that changed.
type Event struct {
	Collection string
}

// Store is the single owner of the profile, task, ledger, and reminder
// collections. Construct one per process with New and share it; no other
// component mutates the collections.
//
// Each collection has its own mutex, held across the remote call and the
// local merge, which serializes writes against each other and against
// RefreshAll on the same collection.
type Store struct {
	client remote.Client

	profilesMu sync.Mutex
	profiles   []model.Profile
	active     string // id of the active profile, "" when none

	tasksMu sync.Mutex
	tasks   []model.Task

	ledgerMu sync.Mutex
	ledger   []model.LedgerEntry

	remindersMu sync.Mutex
	reminders   []model.Reminder

	events chan Event
}

// New creates an empty store backed by the given remote client. Call
// RefreshAll to populate it.
func New(client remote.Client) *Store {
	return &Store{
		client: client,
		events: make(chan Event, 64),
	}
}

// Events exposes the change notification channel. Sends never block; if
// the consumer lags, events are dropped and the next refresh or rearm picks
// up the state.
func (s *Store) Events() <-chan Event {
	return s.events
}

func (s *Store) emit(collection string) {
	select {
	case s.events <- Event{Collection: collection}:
	default:
	}
}

// RefreshAll re-reads every collection from the remote store and replaces
// the local snapshots wholesale. Each collection's mutex is held across the
// remote list and the snapshot swap, so a write can never land between the
// two and be clobbered by the stale result. A failing collection keeps its
// previous snapshot and does not block the others; all failures are joined
// into the returned error.
func (s *Store) RefreshAll(ctx context.Context) error {
	var errs []error

	s.profilesMu.Lock()
	if docs, err := s.client.List(ctx, remote.Profiles); err != nil {
		errs = append(errs, err)
		s.profilesMu.Unlock()
	} else {
		s.profiles = decodeProfiles(docs)
		s.active = deriveActive(s.profiles)
		s.profilesMu.Unlock()
		s.emit(remote.Profiles)
	}

	s.tasksMu.Lock()
	if docs, err := s.client.List(ctx, remote.Tasks); err != nil {
		errs = append(errs, err)
		s.tasksMu.Unlock()
	} else {
		s.tasks = decodeTasks(docs)
		s.tasksMu.Unlock()
		s.emit(remote.Tasks)
	}

	s.ledgerMu.Lock()
	if docs, err := s.client.List(ctx, remote.Ledger); err != nil {
		errs = append(errs, err)
		s.ledgerMu.Unlock()
	} else {
		s.ledger = decodeLedger(docs)
		s.ledgerMu.Unlock()
		s.emit(remote.Ledger)
	}

	s.remindersMu.Lock()
	if docs, err := s.client.List(ctx, remote.Reminders); err != nil {
		errs = append(errs, err)
		s.remindersMu.Unlock()
	} else {
		s.reminders = decodeReminders(docs)
		s.remindersMu.Unlock()
		s.emit(remote.Reminders)
	}

	return errors.Join(errs...)
}

// deriveActive picks the flagged profile, falling back to the first profile
// when none is flagged, "" when the collection is empty.
func deriveActive(profiles []model.Profile) string {
	for _, p := range profiles {
		if p.Active {
			return p.ID
		}
	}
	if len(profiles) > 0 {
		return profiles[0].ID
	}
	return ""
}

// Orphans reports ledger entries and reminders whose owning profile no
// longer exists. Removing a profile does not cascade; callers decide how to
// reconcile.
func (s *Store) Orphans() ([]model.LedgerEntry, []model.Reminder) {
	known := make(map[string]bool)
	for _, p := range s.Profiles() {
		known[p.ID] = true
	}

	var entries []model.LedgerEntry
	for _, e := range s.LedgerEntries() {
		if !known[e.ProfileID] {
			entries = append(entries, e)
		}
	}
	var reminders []model.Reminder
	for _, r := range s.Reminders() {
		if !known[r.ProfileID] {
			reminders = append(reminders, r)
		}
	}
	return entries, reminders
}

func marshalFields(v interface{}) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

func decodeProfiles(docs []remote.Document) []model.Profile {
	out := make([]model.Profile, 0, len(docs))
	for _, d := range docs {
		var p model.Profile
		if err := json.Unmarshal(d.Fields, &p); err != nil {
			warnSkip(remote.Profiles, d.ID, err)
			continue
		}
		p.ID = d.ID
		out = append(out, p)
	}
	return out
}

func decodeTasks(docs []remote.Document) []model.Task {
	out := make([]model.Task, 0, len(docs))
	for _, d := range docs {
		var t model.Task
		if err := json.Unmarshal(d.Fields, &t); err != nil {
			warnSkip(remote.Tasks, d.ID, err)
			continue
		}
		t.ID = d.ID
		out = append(out, t)
	}
	return out
}

func decodeLedger(docs []remote.Document) []model.LedgerEntry {
	out := make([]model.LedgerEntry, 0, len(docs))
	for _, d := range docs {
		var e model.LedgerEntry
		if err := json.Unmarshal(d.Fields, &e); err != nil {
			warnSkip(remote.Ledger, d.ID, err)
			continue
		}
		e.ID = d.ID
		out = append(out, e)
	}
	return out
}

func decodeReminders(docs []remote.Document) []model.Reminder {
	out := make([]model.Reminder, 0, len(docs))
	for _, d := range docs {
		var r model.Reminder
		if err := json.Unmarshal(d.Fields, &r); err != nil {
			warnSkip(remote.Reminders, d.ID, err)
			continue
		}
		r.ID = d.ID
		out = append(out, r)
	}
	return out
}

// warnSkip logs a malformed record once and excludes it; one bad document
// must not abort the whole collection.
func warnSkip(collection, id string, err error) {
	fmt.Fprintf(os.Stderr, "store: skipping %s/%s: %v\n", collection, id, err)
}
