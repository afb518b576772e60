package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an id does not exist in the local snapshot.
// Writes against unknown ids never reach the remote store.
var ErrNotFound = errors.New("store: record not found")

// RemoteWriteError reports a create/update/delete that failed before any
// local state changed. Safe to retry.
type RemoteWriteError struct {
	Op         string
	Collection string
	Err        error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *RemoteWriteError) Unwrap() error { return e.Err }

// PartialSwitchError reports a profile switch that was only partially
// applied on the remote store. Local state is left untouched; callers must
// reconcile by refreshing the profile collection.
type PartialSwitchError struct {
	Failed []string
}

func (e *PartialSwitchError) Error() string {
	return fmt.Sprintf("store: profile switch partially applied, failed ids: %s",
		strings.Join(e.Failed, ", "))
}
