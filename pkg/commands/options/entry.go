// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions captures the flags shared by ledger entry commands.
type EntryOptions struct {
	Category    string
	Description string
}

// AddEntryArgs wires ledger-related flags on the provided command.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions, defaultCategory string) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", defaultCategory,
		"Specify the category.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Free-text description.")
}

// TaskOptions captures the flags for adding a task.
type TaskOptions struct {
	Category    string
	Description string
	Priority    string
}

// AddTaskArgs wires task-related flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "personal",
		"Specify the category.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Optional description.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Priority: low, medium, or high.")
}

// ReminderOptions captures the flags for adding a reminder.
type ReminderOptions struct {
	At     string
	Repeat string
	Body   string
}

// AddReminderArgs wires reminder-related flags on the provided command.
func AddReminderArgs(cmd *cobra.Command, o *ReminderOptions) {
	cmd.Flags().StringVar(&o.At, "at", "09:00",
		`Time of day, example: --at="09:00".`)
	cmd.Flags().StringVarP(&o.Repeat, "repeat", "r", "none",
		"Recurrence: none, daily, weekly, or monthly.")
	cmd.Flags().StringVarP(&o.Body, "body", "b", "",
		"Optional body text.")
}

// MineOptions limits listings to the active profile.
type MineOptions struct {
	Mine bool
}

// AddMineArgs wires the --mine flag on the provided command.
func AddMineArgs(cmd *cobra.Command, o *MineOptions) {
	cmd.Flags().BoolVarP(&o.Mine, "mine", "m", false,
		"Only records owned by the active profile.")
}

// WindowOptions selects the trailing report window.
type WindowOptions struct {
	Window string
}

// AddWindowArgs wires the --window flag on the provided command.
func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "1w",
		`Trailing window, example: --window="1w" or --window="1mo".`)
}
