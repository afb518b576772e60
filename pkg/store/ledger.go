package store

import (
	"context"
	"time"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/remote"
)

// LedgerEntries returns a copy of the current ledger snapshot.
func (s *Store) LedgerEntries() []model.LedgerEntry {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()
	out := make([]model.LedgerEntry, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// AddLedgerEntry creates an income or expense record. The entry is
// validated before the remote call; ledger entries are immutable once
// created.
func (s *Store) AddLedgerEntry(ctx context.Context, e model.LedgerEntry) (model.LedgerEntry, error) {
	if err := e.Validate(); err != nil {
		return model.LedgerEntry{}, err
	}
	if e.Date.IsZero() {
		e.Date = model.Timestamp{Time: time.Now()}
	}

	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	fields, err := marshalFields(&e)
	if err != nil {
		return model.LedgerEntry{}, &RemoteWriteError{Op: "create", Collection: remote.Ledger, Err: err}
	}
	id, err := s.client.Create(ctx, remote.Ledger, fields)
	if err != nil {
		return model.LedgerEntry{}, &RemoteWriteError{Op: "create", Collection: remote.Ledger, Err: err}
	}
	e.ID = id
	s.ledger = append(s.ledger, e)
	s.emit(remote.Ledger)
	return e, nil
}

// DeleteLedgerEntry removes an entry, remote-first.
func (s *Store) DeleteLedgerEntry(ctx context.Context, id string) error {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	idx := -1
	for i, e := range s.ledger {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.client.Delete(ctx, remote.Ledger, id); err != nil {
		return &RemoteWriteError{Op: "delete", Collection: remote.Ledger, Err: err}
	}
	s.ledger = append(s.ledger[:idx], s.ledger[idx+1:]...)
	s.emit(remote.Ledger)
	return nil
}
