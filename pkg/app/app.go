// Package app wires the entity store, reminder scheduler, and deferred
// delete controller into one service so CLIs and long-running agents share
// the same lifecycle.
package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/keep/pkg/remote"
	"tableflip.dev/keep/pkg/schedule"
	"tableflip.dev/keep/pkg/store"
	"tableflip.dev/keep/pkg/undo"
)

// Service is the single composition root. Construct one per process with
// New; it is never torn down in practice.
type Service struct {
	Client    remote.Client
	Store     *store.Store
	Scheduler *schedule.Scheduler
	Deletes   *undo.Controller
}

// New builds the service around a remote client and notifier. A nil
// notifier disables scheduling (most one-shot CLI commands).
func New(client remote.Client, notifier schedule.Notifier, grace time.Duration) (*Service, error) {
	if client == nil {
		return nil, errors.New("app: no remote client configured")
	}
	st := store.New(client)
	svc := &Service{
		Client:  client,
		Store:   st,
		Deletes: undo.NewController(st, grace),
	}
	if notifier != nil {
		svc.Scheduler = schedule.New(notifier)
	}
	return svc, nil
}

// Load opens the configured remote client and builds a service around it.
// The standard entry point for CLI commands.
func Load(notifier schedule.Notifier) (*Service, error) {
	client, err := remote.Open(nil)
	if err != nil {
		return nil, err
	}
	return New(client, notifier, undo.DefaultGrace)
}

// Bootstrap pulls every collection and, when a scheduler is configured,
// arms the reminder triggers for the active profile.
func (s *Service) Bootstrap(ctx context.Context) error {
	if err := s.Store.RefreshAll(ctx); err != nil {
		return err
	}
	if s.Scheduler != nil {
		return s.Scheduler.Rearm(s.Store.Reminders(), s.Store.ActiveProfile(), time.Now())
	}
	return nil
}

// Run keeps the service resident: the scheduler rearms on every store
// change, and external store changes observed through the client's watcher
// (when it has one) trigger refreshes. Blocks until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	if s.Scheduler == nil {
		return errors.New("app: no scheduler configured")
	}

	if watcher, ok := s.Client.(remote.Watcher); ok {
		events, err := watcher.Watch(ctx)
		if err != nil {
			return err
		}
		go func() {
			for range events {
				if err := s.Store.RefreshAll(ctx); err != nil {
					continue
				}
			}
		}()
	}

	return s.Scheduler.Run(ctx, s.Store, s.Store.Events())
}

// Close flushes pending deletes so a short-lived invocation never strands a
// half-deleted task.
func (s *Service) Close(ctx context.Context) {
	s.Deletes.Flush(ctx)
}
