// Package glyph holds the symbols the CLI renders entities with.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape     = "\x1b"
	resetCode  = 0
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

// Task state and priority markers.
const (
	TaskOpen     = "●"
	TaskDone     = "✘"
	PriorityHigh = "✷"
	PriorityLow  = "▿"
	Income       = "▲"
	Expense      = "▼"
	Reminder     = "◷"
	Recurring    = "↻"
	ActiveMark   = "✦"
)

// DefaultGlyphs returns the legend rendered by `keep key`.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Key: "+", Symbol: TaskOpen, Meaning: "open task"},
		{Key: "x", Symbol: TaskDone, Meaning: "completed task"},
		{Key: "*", Symbol: PriorityHigh, Meaning: "high priority"},
		{Key: "v", Symbol: PriorityLow, Meaning: "low priority"},
		{Key: "i", Symbol: Income, Meaning: "income"},
		{Key: "e", Symbol: Expense, Meaning: "expense"},
		{Key: "r", Symbol: Reminder, Meaning: "reminder"},
		{Key: "@", Symbol: Recurring, Meaning: "recurring reminder"},
		{Key: "!", Symbol: ActiveMark, Meaning: "active profile"},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

// DefaultAvatars is the avatar picker set for new profiles.
func DefaultAvatars() []string {
	return []string{"👤", "👨", "👩", "🧑", "👨‍💼", "👩‍💼", "👨‍🎓", "👩‍🎓"}
}

// Priority maps a task priority name to its marker; medium renders blank.
func Priority(p string) string {
	switch p {
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	}
	return " "
}
