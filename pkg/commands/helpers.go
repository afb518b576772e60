package commands

import (
	"context"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/schedule"
)

// loadService opens the configured remote store and pulls every collection.
// One-shot commands pass a nil notifier; agent mode brings its own.
func loadService(ctx context.Context, notifier schedule.Notifier) (*app.Service, error) {
	svc, err := app.Load(notifier)
	if err != nil {
		return nil, err
	}
	if err := svc.Store.RefreshAll(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
