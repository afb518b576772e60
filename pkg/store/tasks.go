package store

import (
	"context"
	"time"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/remote"
)

// Tasks returns a copy of the current task snapshot.
func (s *Store) Tasks() []model.Task {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// AddTask creates a task, stamping the creation time when unset.
func (s *Store) AddTask(ctx context.Context, t model.Task) (model.Task, error) {
	if t.Created.IsZero() {
		t.Created = model.Timestamp{Time: time.Now()}
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}

	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()

	fields, err := marshalFields(&t)
	if err != nil {
		return model.Task{}, &RemoteWriteError{Op: "create", Collection: remote.Tasks, Err: err}
	}
	id, err := s.client.Create(ctx, remote.Tasks, fields)
	if err != nil {
		return model.Task{}, &RemoteWriteError{Op: "create", Collection: remote.Tasks, Err: err}
	}
	t.ID = id
	s.tasks = append(s.tasks, t)
	s.emit(remote.Tasks)
	return t, nil
}

// UpdateTask applies a partial update. Unknown ids fail with ErrNotFound
// before any remote call is made.
func (s *Store) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()

	idx := s.taskIndexLocked(id)
	if idx < 0 {
		return model.Task{}, ErrNotFound
	}

	fields, err := marshalFields(patch)
	if err != nil {
		return model.Task{}, &RemoteWriteError{Op: "update", Collection: remote.Tasks, Err: err}
	}
	if err := s.client.Update(ctx, remote.Tasks, id, fields); err != nil {
		return model.Task{}, &RemoteWriteError{Op: "update", Collection: remote.Tasks, Err: err}
	}
	patch.Apply(&s.tasks[idx])
	s.emit(remote.Tasks)
	return s.tasks[idx], nil
}

// ToggleTask flips the completed flag.
func (s *Store) ToggleTask(ctx context.Context, id string) (model.Task, error) {
	s.tasksMu.Lock()
	idx := s.taskIndexLocked(id)
	if idx < 0 {
		s.tasksMu.Unlock()
		return model.Task{}, ErrNotFound
	}
	completed := !s.tasks[idx].Completed
	s.tasksMu.Unlock()

	return s.UpdateTask(ctx, id, model.TaskPatch{Completed: &completed})
}

// DeleteTask removes a task immediately, remote-first. The undo package
// wraps this with a grace period; use that for user-facing deletes.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()

	idx := s.taskIndexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.client.Delete(ctx, remote.Tasks, id); err != nil {
		return &RemoteWriteError{Op: "delete", Collection: remote.Tasks, Err: err}
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.emit(remote.Tasks)
	return nil
}

// DetachTask removes a task from the local snapshot without contacting the
// remote store, returning the record and its original position. Used by the
// deferred delete controller to make a pending delete invisible.
func (s *Store) DetachTask(id string) (model.Task, int, error) {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()

	idx := s.taskIndexLocked(id)
	if idx < 0 {
		return model.Task{}, 0, ErrNotFound
	}
	t := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.emit(remote.Tasks)
	return t, idx, nil
}

// AttachTask reinserts a previously detached task at its original position,
// clamped to the end if the list shrank. Local only; the remote store was
// never told about the detach.
func (s *Store) AttachTask(t model.Task, index int) {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()

	if index < 0 {
		index = 0
	}
	if index > len(s.tasks) {
		index = len(s.tasks)
	}
	s.tasks = append(s.tasks[:index], append([]model.Task{t}, s.tasks[index:]...)...)
	s.emit(remote.Tasks)
}

// DeleteTaskRemote issues the remote delete for a task that was already
// detached locally. Called by the deferred delete controller once the grace
// period elapses.
func (s *Store) DeleteTaskRemote(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, remote.Tasks, id); err != nil {
		return &RemoteWriteError{Op: "delete", Collection: remote.Tasks, Err: err}
	}
	return nil
}

func (s *Store) taskIndexLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
