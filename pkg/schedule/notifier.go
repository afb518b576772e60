// Package schedule translates reminder records into time-based notification
// triggers. It owns the recurrence math and the cancel-and-rearm cycle; the
// delivery mechanism behind Notifier is opaque.
package schedule

import (
	"time"

	"tableflip.dev/keep/pkg/model"
)

// Notifier is the opaque notification scheduler. The reminder carries the
// recurrence rule and its anchor; implementations that cannot express a
// rule natively fire once and rely on the caller rearming.
type Notifier interface {
	Schedule(at time.Time, r model.Reminder) (string, error)
	Cancel(triggerID string) error
	CancelAll() error
}
