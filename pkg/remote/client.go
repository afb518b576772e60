// Package remote defines the document-store contract the entity store syncs
// against, plus a diskv-backed implementation used by the CLI.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names, versioned the way the hosted store names them.
const (
	Profiles  = "profiles-v1"
	Tasks     = "todos-v1"
	Ledger    = "transactions-v1"
	Reminders = "reminders-v1"
)

// Document is one record in a named collection. Fields is the raw JSON
// object body; the id is never part of the body.
type Document struct {
	ID     string
	Fields json.RawMessage
}

// Client is the opaque remote collection service. Implementations perform
// no schema validation; any transport or serialization failure surfaces as
// a *RemoteError.
type Client interface {
	List(ctx context.Context, collection string) ([]Document, error)
	Create(ctx context.Context, collection string, fields json.RawMessage) (string, error)
	Update(ctx context.Context, collection, id string, fields json.RawMessage) error
	Delete(ctx context.Context, collection, id string) error
}

// RemoteError wraps any failure from the remote collection service.
type RemoteError struct {
	Op         string
	Collection string
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
