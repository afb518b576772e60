package schedule

import (
	"errors"
	"time"

	"tableflip.dev/keep/pkg/model"
)

// ErrInvalidReminderTime marks a reminder whose stored time is missing or
// unparseable. Such reminders are skipped, never scheduled.
var ErrInvalidReminderTime = errors.New("schedule: invalid reminder time")

// ErrPast marks a one-shot reminder whose stored time already elapsed.
var ErrPast = errors.New("schedule: reminder time is in the past")

// NextOccurrence computes the next fire time for a reminder given the
// current instant. The stored time carries both the anchor (weekday for
// weekly, day-of-month for monthly) and the time of day.
//
// Rules:
//   - none: the stored absolute time; ErrPast if already elapsed.
//   - daily: today at the stored clock, or tomorrow if already passed.
//   - weekly: the stored weekday at the stored clock, every 7 days.
//   - monthly: the stored day-of-month at the stored clock; months without
//     that day clamp to their last valid day (Jan 31 -> Feb 28/29).
func NextOccurrence(r model.Reminder, now time.Time) (time.Time, error) {
	anchor := r.Time.Time
	if anchor.IsZero() {
		return time.Time{}, ErrInvalidReminderTime
	}
	anchor = anchor.In(now.Location())
	hour, min, sec := anchor.Clock()

	switch r.Repeat {
	case model.RepeatNone, "":
		if !anchor.After(now) {
			return time.Time{}, ErrPast
		}
		return anchor, nil

	case model.RepeatDaily:
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next, nil

	case model.RepeatWeekly:
		ahead := (int(anchor.Weekday()) - int(now.Weekday()) + 7) % 7
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location()).AddDate(0, 0, ahead)
		if !next.After(now) {
			next = next.AddDate(0, 0, 7)
		}
		return next, nil

	case model.RepeatMonthly:
		next := monthlyOn(now.Year(), now.Month(), anchor.Day(), hour, min, sec, now.Location())
		if !next.After(now) {
			next = monthlyOn(now.Year(), now.Month()+1, anchor.Day(), hour, min, sec, now.Location())
		}
		return next, nil
	}

	return time.Time{}, ErrInvalidReminderTime
}

// Advance moves a fire time forward one period. Monthly advances re-anchor
// on anchorDay, not on the fire day, so a clamped occurrence (Jan 31 firing
// Feb 28) returns to the anchor in months long enough to hold it. Returns
// false for one-shot reminders, which have no next occurrence.
func Advance(at time.Time, anchorDay int, r model.Recurrence) (time.Time, bool) {
	switch r {
	case model.RepeatDaily:
		return at.AddDate(0, 0, 1), true
	case model.RepeatWeekly:
		return at.AddDate(0, 0, 7), true
	case model.RepeatMonthly:
		hour, min, sec := at.Clock()
		return monthlyOn(at.Year(), at.Month()+1, anchorDay, hour, min, sec, at.Location()), true
	}
	return time.Time{}, false
}

// monthlyOn builds the fire time for the given month, clamping the day to
// the month's last valid day. time.Date normalizes month overflow, so
// callers can pass month+1 directly.
func monthlyOn(year int, month time.Month, day, hour, min, sec int, loc *time.Location) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, hour, min, sec, 0, loc)
}
