package schedule

import (
	"strconv"
	"testing"
	"time"

	"tableflip.dev/keep/pkg/model"
)

type fakeNotifier struct {
	counter int
	armed   map[string]time.Time
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{armed: make(map[string]time.Time)}
}

func (f *fakeNotifier) Schedule(at time.Time, r model.Reminder) (string, error) {
	f.counter++
	id := "trig" + strconv.Itoa(f.counter)
	f.armed[id] = at
	return id, nil
}

func (f *fakeNotifier) Cancel(triggerID string) error {
	delete(f.armed, triggerID)
	return nil
}

func (f *fakeNotifier) CancelAll() error {
	f.armed = make(map[string]time.Time)
	return nil
}

func TestRearmFiltersByProfileAndActive(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)
	anchor := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)

	active := &model.Profile{ID: "p1", Name: "alex", Active: true}
	reminders := []model.Reminder{
		{ID: "r1", Title: "mine", Time: model.Timestamp{Time: anchor}, Repeat: model.RepeatDaily, Active: true, ProfileID: "p1"},
		{ID: "r2", Title: "other profile", Time: model.Timestamp{Time: anchor}, Repeat: model.RepeatDaily, Active: true, ProfileID: "p2"},
		{ID: "r3", Title: "disabled", Time: model.Timestamp{Time: anchor}, Repeat: model.RepeatDaily, Active: false, ProfileID: "p1"},
	}

	n := newFakeNotifier()
	s := New(n)
	if err := s.Rearm(reminders, active, now); err != nil {
		t.Fatalf("Rearm failed: %v", err)
	}

	armed := s.Armed()
	if len(armed) != 1 {
		t.Fatalf("expected 1 armed trigger, got %d: %v", len(armed), armed)
	}
	want := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	if at, ok := armed["r1"]; !ok || !at.Equal(want) {
		t.Fatalf("r1 armed at %v, want %v", at, want)
	}
	if len(n.armed) != 1 {
		t.Fatalf("notifier holds %d triggers, want 1", len(n.armed))
	}
}

func TestRearmIsIdempotent(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)
	anchor := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)

	active := &model.Profile{ID: "p1", Active: true}
	reminders := []model.Reminder{
		{ID: "r1", Title: "daily", Time: model.Timestamp{Time: anchor}, Repeat: model.RepeatDaily, Active: true, ProfileID: "p1"},
		{ID: "r2", Title: "weekly", Time: model.Timestamp{Time: anchor}, Repeat: model.RepeatWeekly, Active: true, ProfileID: "p1"},
	}

	n := newFakeNotifier()
	s := New(n)
	if err := s.Rearm(reminders, active, now); err != nil {
		t.Fatalf("first Rearm failed: %v", err)
	}
	first := s.Armed()

	if err := s.Rearm(reminders, active, now); err != nil {
		t.Fatalf("second Rearm failed: %v", err)
	}
	second := s.Armed()

	if len(first) != len(second) {
		t.Fatalf("armed set changed size: %d then %d", len(first), len(second))
	}
	for id, at := range first {
		if !second[id].Equal(at) {
			t.Fatalf("fire time for %s drifted: %v then %v", id, at, second[id])
		}
	}
	// Every trigger was cancelled and re-created, never duplicated.
	if len(n.armed) != len(second) {
		t.Fatalf("notifier holds %d triggers, want %d", len(n.armed), len(second))
	}
}

func TestRearmNoActiveProfileClearsAll(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)
	anchor := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)
	reminders := []model.Reminder{
		{ID: "r1", Title: "daily", Time: model.Timestamp{Time: anchor}, Repeat: model.RepeatDaily, Active: true, ProfileID: "p1"},
	}

	n := newFakeNotifier()
	s := New(n)
	if err := s.Rearm(reminders, &model.Profile{ID: "p1"}, now); err != nil {
		t.Fatalf("Rearm failed: %v", err)
	}
	if len(s.Armed()) != 1 {
		t.Fatalf("expected 1 armed trigger, got %d", len(s.Armed()))
	}

	if err := s.Rearm(reminders, nil, now); err != nil {
		t.Fatalf("Rearm with no profile failed: %v", err)
	}
	if len(s.Armed()) != 0 || len(n.armed) != 0 {
		t.Fatal("expected every trigger cancelled when no profile is active")
	}
}

func TestRearmSkipsUnschedulable(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)
	anchor := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)

	active := &model.Profile{ID: "p1"}
	reminders := []model.Reminder{
		{ID: "r1", Title: "no time", Repeat: model.RepeatDaily, Active: true, ProfileID: "p1"},
		{ID: "r2", Title: "elapsed one-shot", Time: model.Timestamp{Time: now.Add(-time.Hour)}, Active: true, ProfileID: "p1"},
		{ID: "r3", Title: "fine", Time: model.Timestamp{Time: anchor}, Repeat: model.RepeatDaily, Active: true, ProfileID: "p1"},
	}

	n := newFakeNotifier()
	s := New(n)
	if err := s.Rearm(reminders, active, now); err != nil {
		t.Fatalf("Rearm failed: %v", err)
	}
	armed := s.Armed()
	if len(armed) != 1 {
		t.Fatalf("expected only the schedulable reminder armed, got %v", armed)
	}
	if _, ok := armed["r3"]; !ok {
		t.Fatalf("r3 not armed: %v", armed)
	}
}

func TestUpcomingSorted(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)

	active := &model.Profile{ID: "p1"}
	reminders := []model.Reminder{
		{ID: "late", Title: "late", Time: model.Timestamp{Time: now.Add(5 * time.Hour)}, Active: true, ProfileID: "p1"},
		{ID: "soon", Title: "soon", Time: model.Timestamp{Time: now.Add(time.Hour)}, Active: true, ProfileID: "p1"},
	}

	s := New(newFakeNotifier())
	if err := s.Rearm(reminders, active, now); err != nil {
		t.Fatalf("Rearm failed: %v", err)
	}
	up := s.Upcoming()
	if len(up) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(up))
	}
	if !up[0].Before(up[1]) {
		t.Fatalf("upcoming not sorted: %v", up)
	}
}
