package schedule

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/keep/pkg/model"
)

func reminderAt(at time.Time, repeat model.Recurrence) model.Reminder {
	return model.Reminder{
		Title:  "test",
		Time:   model.Timestamp{Time: at},
		Repeat: repeat,
		Active: true,
	}
}

func TestNextOccurrenceOneShot(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

	future := now.Add(2 * time.Hour)
	got, err := NextOccurrence(reminderAt(future, model.RepeatNone), now)
	if err != nil {
		t.Fatalf("NextOccurrence failed: %v", err)
	}
	if !got.Equal(future) {
		t.Fatalf("got %v, want %v", got, future)
	}

	_, err = NextOccurrence(reminderAt(now.Add(-time.Hour), model.RepeatNone), now)
	if !errors.Is(err, ErrPast) {
		t.Fatalf("expected ErrPast for elapsed one-shot, got %v", err)
	}
}

func TestNextOccurrenceZeroTime(t *testing.T) {
	_, err := NextOccurrence(model.Reminder{Repeat: model.RepeatDaily}, time.Now())
	if !errors.Is(err, ErrInvalidReminderTime) {
		t.Fatalf("expected ErrInvalidReminderTime, got %v", err)
	}
}

func TestNextOccurrenceDaily(t *testing.T) {
	// Anchor clock is 09:00. At 08:00 the reminder fires today, at 10:00
	// it fires tomorrow.
	anchor := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)
	r := reminderAt(anchor, model.RepeatDaily)

	early := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)
	got, err := NextOccurrence(r, early)
	if err != nil {
		t.Fatalf("NextOccurrence failed: %v", err)
	}
	want := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	late := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.Local)
	got, err = NextOccurrence(r, late)
	if err != nil {
		t.Fatalf("NextOccurrence failed: %v", err)
	}
	want = time.Date(2026, time.March, 11, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextOccurrenceWeekly(t *testing.T) {
	// Anchored to a Monday at 09:00. From Wednesday 10:00 the next fire
	// is the following Monday.
	monday := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local)
	if monday.Weekday() != time.Monday {
		t.Fatalf("test anchor is %v, expected Monday", monday.Weekday())
	}
	r := reminderAt(monday, model.RepeatWeekly)

	wednesday := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.Local)
	got, err := NextOccurrence(r, wednesday)
	if err != nil {
		t.Fatalf("NextOccurrence failed: %v", err)
	}
	want := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got.Weekday() != time.Monday {
		t.Fatalf("fires on %v, want Monday", got.Weekday())
	}

	// Same weekday before the clock time fires today.
	mondayEarly := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.Local)
	got, err = NextOccurrence(r, mondayEarly)
	if err != nil {
		t.Fatalf("NextOccurrence failed: %v", err)
	}
	want = time.Date(2026, time.March, 9, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextOccurrenceMonthlyClamps(t *testing.T) {
	// Anchored to the 31st. February has no 31st, so the fire time clamps
	// to the 28th.
	anchor := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.Local)
	r := reminderAt(anchor, model.RepeatMonthly)

	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)
	got, err := NextOccurrence(r, now)
	if err != nil {
		t.Fatalf("NextOccurrence failed: %v", err)
	}
	want := time.Date(2026, time.February, 28, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextOccurrenceMonthlyRollsOverYear(t *testing.T) {
	anchor := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.Local)
	r := reminderAt(anchor, model.RepeatMonthly)

	now := time.Date(2026, time.December, 20, 0, 0, 0, 0, time.Local)
	got, err := NextOccurrence(r, now)
	if err != nil {
		t.Fatalf("NextOccurrence failed: %v", err)
	}
	want := time.Date(2027, time.January, 15, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAdvance(t *testing.T) {
	at := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.Local)

	next, ok := Advance(at, at.Day(), model.RepeatDaily)
	if !ok || !next.Equal(at.AddDate(0, 0, 1)) {
		t.Fatalf("daily advance = %v %v", next, ok)
	}

	next, ok = Advance(at, at.Day(), model.RepeatWeekly)
	if !ok || !next.Equal(at.AddDate(0, 0, 7)) {
		t.Fatalf("weekly advance = %v %v", next, ok)
	}

	next, ok = Advance(at, at.Day(), model.RepeatMonthly)
	if !ok {
		t.Fatal("monthly advance reported no next occurrence")
	}
	want := time.Date(2026, time.February, 28, 9, 0, 0, 0, time.Local)
	if !next.Equal(want) {
		t.Fatalf("monthly advance = %v, want %v", next, want)
	}

	if _, ok := Advance(at, at.Day(), model.RepeatNone); ok {
		t.Fatal("one-shot reminders must not advance")
	}
}

func TestAdvanceMonthlyReturnsToAnchorAfterClamp(t *testing.T) {
	// Anchored to the 31st, the February occurrence clamps to the 28th.
	// Advancing from that clamped fire time must come back to the 31st in
	// March, not stick to the 28th.
	clamped := time.Date(2026, time.February, 28, 9, 0, 0, 0, time.Local)

	next, ok := Advance(clamped, 31, model.RepeatMonthly)
	if !ok {
		t.Fatal("monthly advance reported no next occurrence")
	}
	want := time.Date(2026, time.March, 31, 9, 0, 0, 0, time.Local)
	if !next.Equal(want) {
		t.Fatalf("advance from clamped fire = %v, want %v", next, want)
	}

	// April has 30 days, so the occurrence after March clamps again.
	next, ok = Advance(next, 31, model.RepeatMonthly)
	if !ok {
		t.Fatal("monthly advance reported no next occurrence")
	}
	want = time.Date(2026, time.April, 30, 9, 0, 0, 0, time.Local)
	if !next.Equal(want) {
		t.Fatalf("second advance = %v, want %v", next, want)
	}
}
