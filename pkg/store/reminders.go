package store

import (
	"context"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/remote"
)

// Reminders returns a copy of the current reminder snapshot.
func (s *Store) Reminders() []model.Reminder {
	s.remindersMu.Lock()
	defer s.remindersMu.Unlock()
	out := make([]model.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// AddReminder creates a reminder.
func (s *Store) AddReminder(ctx context.Context, r model.Reminder) (model.Reminder, error) {
	if r.Repeat == "" {
		r.Repeat = model.RepeatNone
	}

	s.remindersMu.Lock()
	defer s.remindersMu.Unlock()

	fields, err := marshalFields(&r)
	if err != nil {
		return model.Reminder{}, &RemoteWriteError{Op: "create", Collection: remote.Reminders, Err: err}
	}
	id, err := s.client.Create(ctx, remote.Reminders, fields)
	if err != nil {
		return model.Reminder{}, &RemoteWriteError{Op: "create", Collection: remote.Reminders, Err: err}
	}
	r.ID = id
	s.reminders = append(s.reminders, r)
	s.emit(remote.Reminders)
	return r, nil
}

// UpdateReminder applies a partial update. Unknown ids fail with
// ErrNotFound before any remote call is made.
func (s *Store) UpdateReminder(ctx context.Context, id string, patch model.ReminderPatch) (model.Reminder, error) {
	s.remindersMu.Lock()
	defer s.remindersMu.Unlock()

	idx := s.reminderIndexLocked(id)
	if idx < 0 {
		return model.Reminder{}, ErrNotFound
	}

	fields, err := marshalFields(patch)
	if err != nil {
		return model.Reminder{}, &RemoteWriteError{Op: "update", Collection: remote.Reminders, Err: err}
	}
	if err := s.client.Update(ctx, remote.Reminders, id, fields); err != nil {
		return model.Reminder{}, &RemoteWriteError{Op: "update", Collection: remote.Reminders, Err: err}
	}
	patch.Apply(&s.reminders[idx])
	s.emit(remote.Reminders)
	return s.reminders[idx], nil
}

// ToggleReminder flips the active flag.
func (s *Store) ToggleReminder(ctx context.Context, id string) (model.Reminder, error) {
	s.remindersMu.Lock()
	idx := s.reminderIndexLocked(id)
	if idx < 0 {
		s.remindersMu.Unlock()
		return model.Reminder{}, ErrNotFound
	}
	active := !s.reminders[idx].Active
	s.remindersMu.Unlock()

	return s.UpdateReminder(ctx, id, model.ReminderPatch{Active: &active})
}

// DeleteReminder removes a reminder, remote-first. Reminder deletion is
// immediate; there is no undo grace period.
func (s *Store) DeleteReminder(ctx context.Context, id string) error {
	s.remindersMu.Lock()
	defer s.remindersMu.Unlock()

	idx := s.reminderIndexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.client.Delete(ctx, remote.Reminders, id); err != nil {
		return &RemoteWriteError{Op: "delete", Collection: remote.Reminders, Err: err}
	}
	s.reminders = append(s.reminders[:idx], s.reminders[idx+1:]...)
	s.emit(remote.Reminders)
	return nil
}

func (s *Store) reminderIndexLocked(id string) int {
	for i, r := range s.reminders {
		if r.ID == id {
			return i
		}
	}
	return -1
}
