package model

import (
	"fmt"
	"strings"
)

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts a string to a Priority. Empty input defaults to
// medium, matching the add form's default.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return PriorityMedium, fmt.Errorf("model: unknown priority %q", raw)
}

// TaskCategories lists the supported task categories.
func TaskCategories() []string {
	return []string{"personal", "work", "shopping", "health", "other"}
}

// Task is a to-do item. Tasks are not scoped to a profile; the app treats
// the task list as a single shared workspace.
type Task struct {
	ID          string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	Created     Timestamp `json:"createdAt"`
}

// TaskPatch is a partial update document for a task. Nil fields are left
// untouched by the remote merge.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
}

// Apply merges the patch into the task.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
