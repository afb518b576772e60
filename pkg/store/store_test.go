package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/remote"
)

type memoryClient struct {
	docs    map[string]map[string]json.RawMessage
	counter int

	failList   map[string]error
	failCreate map[string]error
	failUpdate map[string]error // keyed by id
	failDelete map[string]error
}

func newMemoryClient() *memoryClient {
	return &memoryClient{
		docs:       make(map[string]map[string]json.RawMessage),
		failList:   make(map[string]error),
		failCreate: make(map[string]error),
		failUpdate: make(map[string]error),
		failDelete: make(map[string]error),
	}
}

func (m *memoryClient) List(ctx context.Context, collection string) ([]remote.Document, error) {
	if err := m.failList[collection]; err != nil {
		return nil, err
	}
	out := make([]remote.Document, 0, len(m.docs[collection]))
	for id, fields := range m.docs[collection] {
		out = append(out, remote.Document{ID: id, Fields: fields})
	}
	return out, nil
}

func (m *memoryClient) Create(ctx context.Context, collection string, fields json.RawMessage) (string, error) {
	if err := m.failCreate[collection]; err != nil {
		return "", err
	}
	m.counter++
	id := "mem" + strconv.Itoa(m.counter)
	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string]json.RawMessage)
	}
	m.docs[collection][id] = fields
	return id, nil
}

func (m *memoryClient) Update(ctx context.Context, collection, id string, fields json.RawMessage) error {
	if err := m.failUpdate[id]; err != nil {
		return err
	}
	existing, ok := m.docs[collection][id]
	if !ok {
		return errors.New("no such document")
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(existing, &merged); err != nil {
		return err
	}
	patch := map[string]json.RawMessage{}
	if err := json.Unmarshal(fields, &patch); err != nil {
		return err
	}
	for k, v := range patch {
		merged[k] = v
	}
	b, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	m.docs[collection][id] = b
	return nil
}

func (m *memoryClient) Delete(ctx context.Context, collection, id string) error {
	if err := m.failDelete[collection]; err != nil {
		return err
	}
	delete(m.docs[collection], id)
	return nil
}

func TestAddTaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient()
	s := New(client)

	created, err := s.AddTask(ctx, model.Task{Title: "buy milk", Category: "shopping"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a remote-assigned id")
	}
	if created.Priority != model.PriorityMedium {
		t.Fatalf("expected default priority medium, got %s", created.Priority)
	}
	if created.Created.IsZero() {
		t.Fatal("expected creation time to be stamped")
	}

	fresh := New(client)
	if err := fresh.RefreshAll(ctx); err != nil {
		t.Fatalf("RefreshAll failed: %v", err)
	}
	tasks := fresh.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task after refresh, got %d", len(tasks))
	}
	if tasks[0].ID != created.ID || tasks[0].Title != "buy milk" {
		t.Fatalf("round trip mismatch: %+v", tasks[0])
	}
}

func TestAddTaskRemoteFailureLeavesLocalUnchanged(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient()
	client.failCreate[remote.Tasks] = errors.New("boom")
	s := New(client)

	_, err := s.AddTask(ctx, model.Task{Title: "doomed"})
	if err == nil {
		t.Fatal("expected error from remote create")
	}
	var rwe *RemoteWriteError
	if !errors.As(err, &rwe) {
		t.Fatalf("expected RemoteWriteError, got %T", err)
	}
	if len(s.Tasks()) != 0 {
		t.Fatalf("local snapshot changed after failed create: %v", s.Tasks())
	}
}

func TestUpdateTaskUnknownID(t *testing.T) {
	ctx := context.Background()
	s := New(newMemoryClient())

	title := "renamed"
	_, err := s.UpdateTask(ctx, "missing", model.TaskPatch{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleTask(t *testing.T) {
	ctx := context.Background()
	s := New(newMemoryClient())

	created, err := s.AddTask(ctx, model.Task{Title: "laundry"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	toggled, err := s.ToggleTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !toggled.Completed {
		t.Fatal("expected task to be completed after toggle")
	}

	toggled, err = s.ToggleTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("second ToggleTask failed: %v", err)
	}
	if toggled.Completed {
		t.Fatal("expected task to be open after second toggle")
	}
}

func TestSwitchProfile(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient()
	s := New(client)

	if _, err := s.AddProfile(ctx, model.Profile{Name: "alex"}); err != nil {
		t.Fatalf("AddProfile failed: %v", err)
	}
	b, err := s.AddProfile(ctx, model.Profile{Name: "blake"})
	if err != nil {
		t.Fatalf("AddProfile failed: %v", err)
	}

	activated, err := s.SwitchProfile(ctx, b.ID)
	if err != nil {
		t.Fatalf("SwitchProfile failed: %v", err)
	}
	if activated.ID != b.ID || !activated.Active {
		t.Fatalf("expected %s active, got %+v", b.ID, activated)
	}

	actives := 0
	for _, p := range s.Profiles() {
		if p.Active {
			actives++
			if p.ID != b.ID {
				t.Fatalf("wrong profile active: %+v", p)
			}
		}
	}
	if actives != 1 {
		t.Fatalf("expected exactly one active profile, got %d", actives)
	}

	// The flags must have been persisted, not just flipped locally.
	fresh := New(client)
	if err := fresh.RefreshAll(ctx); err != nil {
		t.Fatalf("RefreshAll failed: %v", err)
	}
	if ap := fresh.ActiveProfile(); ap == nil || ap.ID != b.ID {
		t.Fatalf("active profile not persisted: %+v", ap)
	}
}

func TestSwitchProfilePartialFailure(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient()
	s := New(client)

	a, _ := s.AddProfile(ctx, model.Profile{Name: "alex"})
	b, _ := s.AddProfile(ctx, model.Profile{Name: "blake"})
	if _, err := s.SwitchProfile(ctx, a.ID); err != nil {
		t.Fatalf("SwitchProfile failed: %v", err)
	}

	client.failUpdate[a.ID] = errors.New("flaky network")
	_, err := s.SwitchProfile(ctx, b.ID)
	var pse *PartialSwitchError
	if !errors.As(err, &pse) {
		t.Fatalf("expected PartialSwitchError, got %v", err)
	}
	if len(pse.Failed) != 1 || pse.Failed[0] != a.ID {
		t.Fatalf("expected failed ids [%s], got %v", a.ID, pse.Failed)
	}

	// Local state must be untouched until a refresh reconciles it.
	if ap := s.ActiveProfile(); ap == nil || ap.ID != a.ID {
		t.Fatalf("local active pointer moved on partial failure: %+v", ap)
	}
}

func TestRemoveProfileClearsActive(t *testing.T) {
	ctx := context.Background()
	s := New(newMemoryClient())

	p, _ := s.AddProfile(ctx, model.Profile{Name: "alex"})
	if _, err := s.SwitchProfile(ctx, p.ID); err != nil {
		t.Fatalf("SwitchProfile failed: %v", err)
	}
	if err := s.RemoveProfile(ctx, p.ID); err != nil {
		t.Fatalf("RemoveProfile failed: %v", err)
	}
	if ap := s.ActiveProfile(); ap != nil {
		t.Fatalf("expected no active profile, got %+v", ap)
	}
}

func TestDeriveActiveFallsBackToFirst(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient()
	client.docs[remote.Profiles] = map[string]json.RawMessage{
		"p1": json.RawMessage(`{"name":"alex","isActive":false}`),
	}
	s := New(client)
	if err := s.RefreshAll(ctx); err != nil {
		t.Fatalf("RefreshAll failed: %v", err)
	}
	if ap := s.ActiveProfile(); ap == nil || ap.ID != "p1" {
		t.Fatalf("expected fallback to first profile, got %+v", ap)
	}
}

func TestRefreshAllIsolatesCollectionFailures(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient()
	client.failList[remote.Ledger] = errors.New("ledger down")
	s := New(client)

	if _, err := s.AddTask(ctx, model.Task{Title: "still here"}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	err := s.RefreshAll(ctx)
	if err == nil {
		t.Fatal("expected joined error from failing collection")
	}
	if len(s.Tasks()) != 1 {
		t.Fatalf("healthy collection not refreshed, got %d tasks", len(s.Tasks()))
	}
}

func TestRefreshSkipsMalformedDocuments(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient()
	client.docs[remote.Tasks] = map[string]json.RawMessage{
		"good": json.RawMessage(`{"title":"fine"}`),
		"bad":  json.RawMessage(`not json`),
	}
	s := New(client)
	if err := s.RefreshAll(ctx); err != nil {
		t.Fatalf("RefreshAll failed: %v", err)
	}
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "good" {
		t.Fatalf("expected only the valid document, got %+v", tasks)
	}
}

// blockingClient pauses List on one collection until released, so tests
// can interleave a write with an in-flight refresh.
type blockingClient struct {
	*memoryClient
	collection string
	listing    chan struct{}
	release    chan struct{}
}

func (b *blockingClient) List(ctx context.Context, collection string) ([]remote.Document, error) {
	if collection == b.collection {
		close(b.listing)
		<-b.release
	}
	return b.memoryClient.List(ctx, collection)
}

func TestRefreshDoesNotClobberConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	client := &blockingClient{
		memoryClient: newMemoryClient(),
		collection:   remote.Tasks,
		listing:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	s := New(client)

	refreshed := make(chan error, 1)
	go func() {
		refreshed <- s.RefreshAll(ctx)
	}()
	<-client.listing

	added := make(chan error, 1)
	go func() {
		_, err := s.AddTask(ctx, model.Task{Title: "in flight"})
		added <- err
	}()

	// The write must not land while the refresh holds the collection; a
	// write that slipped in here would be erased by the stale list result.
	select {
	case err := <-added:
		t.Fatalf("AddTask completed during an in-flight refresh: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(client.release)
	if err := <-refreshed; err != nil {
		t.Fatalf("RefreshAll failed: %v", err)
	}
	if err := <-added; err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "in flight" {
		t.Fatalf("concurrent write lost after refresh: %+v", tasks)
	}
}

func TestOrphans(t *testing.T) {
	ctx := context.Background()
	s := New(newMemoryClient())

	p, _ := s.AddProfile(ctx, model.Profile{Name: "alex"})
	if _, err := s.AddLedgerEntry(ctx, model.LedgerEntry{
		Type:      model.Expense,
		Amount:    decimal.NewFromInt(10),
		Category:  "food",
		ProfileID: p.ID,
	}); err != nil {
		t.Fatalf("AddLedgerEntry failed: %v", err)
	}
	if _, err := s.AddReminder(ctx, model.Reminder{Title: "standup", ProfileID: p.ID}); err != nil {
		t.Fatalf("AddReminder failed: %v", err)
	}

	if err := s.RemoveProfile(ctx, p.ID); err != nil {
		t.Fatalf("RemoveProfile failed: %v", err)
	}
	entries, reminders := s.Orphans()
	if len(entries) != 1 || len(reminders) != 1 {
		t.Fatalf("expected 1 orphan entry and 1 orphan reminder, got %d and %d",
			len(entries), len(reminders))
	}
}

func TestAddLedgerEntryRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient()
	s := New(client)

	_, err := s.AddLedgerEntry(ctx, model.LedgerEntry{
		Type:     model.Expense,
		Amount:   decimal.NewFromInt(-5),
		Category: "food",
	})
	if err == nil {
		t.Fatal("expected validation error for negative amount")
	}
	if len(client.docs[remote.Ledger]) != 0 {
		t.Fatal("invalid entry reached the remote store")
	}
}

func TestDetachAttachTask(t *testing.T) {
	ctx := context.Background()
	s := New(newMemoryClient())

	first, _ := s.AddTask(ctx, model.Task{Title: "first"})
	second, _ := s.AddTask(ctx, model.Task{Title: "second"})

	detached, idx, err := s.DetachTask(first.ID)
	if err != nil {
		t.Fatalf("DetachTask failed: %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected index 0, got %d", idx)
	}
	if len(s.Tasks()) != 1 {
		t.Fatalf("expected 1 task after detach, got %d", len(s.Tasks()))
	}

	s.AttachTask(detached, idx)
	tasks := s.Tasks()
	if len(tasks) != 2 || tasks[0].ID != first.ID || tasks[1].ID != second.ID {
		t.Fatalf("attach did not restore order: %+v", tasks)
	}
}

func TestEventsEmitOnMutation(t *testing.T) {
	ctx := context.Background()
	s := New(newMemoryClient())

	if _, err := s.AddTask(ctx, model.Task{Title: "ping"}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	select {
	case ev := <-s.Events():
		if ev.Collection != remote.Tasks {
			t.Fatalf("expected event for %s, got %s", remote.Tasks, ev.Collection)
		}
	default:
		t.Fatal("expected a buffered event after AddTask")
	}
}
