// Package undo implements deferred, undoable task deletion: a delete
// removes the task from the visible list immediately but holds the record
// in a side buffer for a grace period before the remote delete is issued.
package undo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/keep/pkg/model"
)

// DefaultGrace is the delay between a delete request and the irreversible
// remote deletion.
const DefaultGrace = 5 * time.Second

// ErrNotPending is returned by Undo when the task is not awaiting deletion,
// either because it was never deleted or because the grace period elapsed
// and the remote delete already started.
var ErrNotPending = errors.New("undo: task is not pending deletion")

// Deleter is the slice of the entity store the controller needs. The store
// satisfies it with its local-only detach/attach hooks plus the remote
// delete.
type Deleter interface {
	DetachTask(id string) (model.Task, int, error)
	AttachTask(t model.Task, index int)
	DeleteTaskRemote(ctx context.Context, id string) error
}

type pending struct {
	task  model.Task
	index int
	timer *time.Timer
	done  chan struct{}
}

// Controller runs the per-task delete state machine. Any number of tasks
// may be pending deletion concurrently, each with its own timer; this
// generalizes the original single-slot buffer so a second delete never
// silently finalizes the first.
type Controller struct {
	store Deleter
	grace time.Duration

	mu      sync.Mutex
	buffers map[string]*pending
}

// NewController creates a controller with the given grace period.
// A non-positive grace falls back to DefaultGrace.
func NewController(store Deleter, grace time.Duration) *Controller {
	if grace <= 0 {
		grace = DefaultGrace
	}
	return &Controller{
		store:   store,
		grace:   grace,
		buffers: make(map[string]*pending),
	}
}

// Delete detaches the task from the visible list and arms the grace timer.
// Once the timer elapses the remote delete is issued; until then Undo can
// restore the task without any remote traffic. Deleting a task that is
// already pending is a no-op.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	if _, dup := c.buffers[id]; dup {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	task, index, err := c.store.DetachTask(id)
	if err != nil {
		return err
	}

	p := &pending{task: task, index: index, done: make(chan struct{})}
	c.mu.Lock()
	c.buffers[id] = p
	p.timer = time.AfterFunc(c.grace, func() {
		c.finalize(ctx, id)
	})
	c.mu.Unlock()
	return nil
}

// Undo cancels a pending delete and reinserts the buffered record at its
// original position. Effective only until the remote delete starts.
func (c *Controller) Undo(id string) error {
	c.mu.Lock()
	p, ok := c.buffers[id]
	if !ok || !p.timer.Stop() {
		// Timer already fired; the remote delete is under way.
		c.mu.Unlock()
		return ErrNotPending
	}
	delete(c.buffers, id)
	close(p.done)
	c.mu.Unlock()

	c.store.AttachTask(p.task, p.index)
	return nil
}

// Pending lists the buffered tasks awaiting final deletion.
func (c *Controller) Pending() []model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Task, 0, len(c.buffers))
	for _, p := range c.buffers {
		out = append(out, p.task)
	}
	return out
}

// Flush finalizes every pending delete immediately. Used on shutdown so a
// short-lived CLI invocation never strands a half-deleted task.
func (c *Controller) Flush(ctx context.Context) {
	c.mu.Lock()
	ids := make([]string, 0, len(c.buffers))
	for id, p := range c.buffers {
		if p.timer.Stop() {
			ids = append(ids, id)
		}
	}
	c.mu.Unlock()

	for _, id := range ids {
		c.finalize(ctx, id)
	}
}

// Wait blocks until the pending delete for id fully resolves (finalized or
// undone). Returns immediately when nothing is pending.
func (c *Controller) Wait(id string) {
	c.mu.Lock()
	p, ok := c.buffers[id]
	c.mu.Unlock()
	if !ok {
		return
	}
	<-p.done
}

// finalize issues the remote delete for a pending task. The buffer entry
// stays in place until the remote call resolves so Wait observes the whole
// delete, not just the grace timer; Undo cannot sneak in because the timer
// has already fired.
func (c *Controller) finalize(ctx context.Context, id string) {
	c.mu.Lock()
	p, ok := c.buffers[id]
	c.mu.Unlock()
	if !ok {
		return
	}

	if err := c.store.DeleteTaskRemote(ctx, id); err != nil {
		// The task is gone locally but not remotely; restore it so the
		// failure is visible and retryable instead of silently divergent.
		fmt.Fprintf(os.Stderr, "undo: finalize %s: %v\n", id, err)
		c.store.AttachTask(p.task, p.index)
	}

	c.mu.Lock()
	delete(c.buffers, id)
	c.mu.Unlock()
	close(p.done)
}
