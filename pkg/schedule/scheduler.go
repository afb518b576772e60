package schedule

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/remote"
	"tableflip.dev/keep/pkg/store"
)

// Source supplies the snapshots the scheduler derives triggers from.
// *store.Store satisfies it.
type Source interface {
	Reminders() []model.Reminder
	ActiveProfile() *model.Profile
}

type trigger struct {
	triggerID string
	at        time.Time
}

// Scheduler arms the opaque notifier from the reminder collection. Every
// data change cancels all armed triggers and re-derives the schedule from
// scratch, so no stale or duplicate trigger survives a mutation. O(n) per
// change, fine at expected list sizes.
type Scheduler struct {
	notifier Notifier

	mu     sync.Mutex
	armed  map[string]trigger // keyed by reminder id
	warned map[string]bool    // reminders already logged as skipped
}

// New creates a scheduler driving the given notifier.
func New(n Notifier) *Scheduler {
	return &Scheduler{
		notifier: n,
		armed:    make(map[string]trigger),
		warned:   make(map[string]bool),
	}
}

// Rearm cancels every previously armed trigger and arms one trigger per
// schedulable reminder: owned by the active profile, flagged active, with a
// future fire time. Rearm is idempotent; calling it twice with no data
// change arms the same set of fire times. A reminder that cannot be
// scheduled is logged once and skipped without affecting the others.
func (s *Scheduler) Rearm(reminders []model.Reminder, active *model.Profile, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.notifier.CancelAll(); err != nil {
		return fmt.Errorf("schedule: cancel armed triggers: %w", err)
	}
	s.armed = make(map[string]trigger)

	if active == nil {
		return nil
	}

	var errs []error
	for _, r := range reminders {
		if r.ProfileID != active.ID || !r.Active {
			continue
		}
		at, err := NextOccurrence(r, now)
		if err != nil {
			if !s.warned[r.ID] {
				s.warned[r.ID] = true
				fmt.Fprintf(os.Stderr, "schedule: skipping %q: %v\n", r.Title, err)
			}
			continue
		}
		delete(s.warned, r.ID)
		id, err := s.notifier.Schedule(at, r)
		if err != nil {
			errs = append(errs, fmt.Errorf("schedule: arm %q: %w", r.Title, err))
			continue
		}
		s.armed[r.ID] = trigger{triggerID: id, at: at}
	}
	return errors.Join(errs...)
}

// Armed returns the currently armed fire times keyed by reminder id.
func (s *Scheduler) Armed() map[string]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]time.Time, len(s.armed))
	for id, t := range s.armed {
		out[id] = t.at
	}
	return out
}

// Upcoming returns the armed fire times sorted soonest first.
func (s *Scheduler) Upcoming() []time.Time {
	armed := s.Armed()
	out := make([]time.Time, 0, len(armed))
	for _, at := range armed {
		out = append(out, at)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Run arms the schedule and then rearms on every reminder or profile change
// until ctx is done. Changes to other collections are ignored.
func (s *Scheduler) Run(ctx context.Context, src Source, changes <-chan store.Event) error {
	if err := s.Rearm(src.Reminders(), src.ActiveProfile(), time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			err := s.notifier.CancelAll()
			s.armed = make(map[string]trigger)
			s.mu.Unlock()
			return err
		case ev, ok := <-changes:
			if !ok {
				return nil
			}
			if ev.Collection != remote.Reminders && ev.Collection != remote.Profiles {
				continue
			}
			if err := s.Rearm(src.Reminders(), src.ActiveProfile(), time.Now()); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		}
	}
}
