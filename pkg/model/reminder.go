package model

import (
	"fmt"
	"strings"
)

// Recurrence governs how a reminder's next fire time advances.
type Recurrence string

const (
	RepeatNone    Recurrence = "none"
	RepeatDaily   Recurrence = "daily"
	RepeatWeekly  Recurrence = "weekly"
	RepeatMonthly Recurrence = "monthly"
)

// AllRecurrences returns the supported recurrence rules.
func AllRecurrences() []Recurrence {
	return []Recurrence{RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly}
}

// ParseRecurrence converts a string to a Recurrence. Empty input means none.
func ParseRecurrence(raw string) (Recurrence, error) {
	r := Recurrence(strings.ToLower(strings.TrimSpace(raw)))
	if r == "" {
		return RepeatNone, nil
	}
	for _, candidate := range AllRecurrences() {
		if candidate == r {
			return candidate, nil
		}
	}
	return RepeatNone, fmt.Errorf("model: unknown recurrence %q", raw)
}

// Reminder is a scheduled notification owned by a profile. Time holds both
// the anchor date (weekday and day-of-month for weekly/monthly rules) and
// the time of day.
type Reminder struct {
	ID        string     `json:"-"`
	Title     string     `json:"title"`
	Body      string     `json:"content,omitempty"`
	Time      Timestamp  `json:"time"`
	Repeat    Recurrence `json:"repeat"`
	Active    bool       `json:"isActive"`
	ProfileID string     `json:"profileId"`
}

// ReminderPatch is a partial update document for a reminder.
type ReminderPatch struct {
	Title  *string     `json:"title,omitempty"`
	Body   *string     `json:"content,omitempty"`
	Time   *Timestamp  `json:"time,omitempty"`
	Repeat *Recurrence `json:"repeat,omitempty"`
	Active *bool       `json:"isActive,omitempty"`
}

// Apply merges the patch into the reminder.
func (p ReminderPatch) Apply(r *Reminder) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Body != nil {
		r.Body = *p.Body
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Repeat != nil {
		r.Repeat = *p.Repeat
	}
	if p.Active != nil {
		r.Active = *p.Active
	}
}
