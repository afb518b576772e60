package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/keep/pkg/glyph"
	"tableflip.dev/keep/pkg/model"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" record")
	default:
		_, _ = c.Println(" records")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) id(id string) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Print(id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = y.Print(strings.Repeat(" ", pad))
	}
}

// Tasks prints the task list, striking completed titles.
func (pp *PrettyPrint) Tasks(tasks ...model.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	t := color.New()
	for _, task := range tasks {
		if pp.ShowID {
			pp.id(task.ID)
		}
		mark := glyph.TaskOpen
		title := task.Title
		if task.Completed {
			mark = glyph.TaskDone
			title = glyph.Strike(title)
		}
		_, _ = t.Printf("%s %s %s", glyph.Priority(string(task.Priority)), mark, title)
		if task.Category != "" {
			_, _ = color.New(color.Faint).Printf("  (%s)", task.Category)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Ledger prints income and expense records with signed, colored amounts.
func (pp *PrettyPrint) Ledger(entries ...model.LedgerEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	in := color.New(color.FgGreen)
	out := color.New(color.FgRed)
	faint := color.New(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			pp.id(e.ID)
		}
		switch e.Type {
		case model.Income:
			_, _ = in.Printf("%s %12s", glyph.Income, e.Amount.StringFixed(2))
		default:
			_, _ = out.Printf("%s %12s", glyph.Expense, e.Amount.Neg().StringFixed(2))
		}
		_, _ = faint.Printf("  %s  %s", e.Date.Local().Format("Jan 2"), e.Category)
		if e.Description != "" {
			fmt.Printf("  %s", e.Description)
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// Reminders prints the reminder list with fire times and recurrence.
func (pp *PrettyPrint) Reminders(reminders ...model.Reminder) {
	if len(reminders) == 0 {
		pp.none()
		return
	}

	t := color.New()
	faint := color.New(color.Faint)
	for _, r := range reminders {
		if pp.ShowID {
			pp.id(r.ID)
		}
		title := r.Title
		if !r.Active {
			title = glyph.Strike(title)
		}
		_, _ = t.Printf("%s %s", glyph.Reminder, title)
		_, _ = faint.Printf("  %s", r.Time.Local().Format("Mon Jan 2 15:04"))
		if r.Repeat != model.RepeatNone && r.Repeat != "" {
			_, _ = faint.Printf("  %s %s", glyph.Recurring, r.Repeat)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Profiles prints the profile list, marking the active one.
func (pp *PrettyPrint) Profiles(active string, profiles ...model.Profile) {
	if len(profiles) == 0 {
		pp.none()
		return
	}

	t := color.New()
	for _, p := range profiles {
		if pp.ShowID {
			pp.id(p.ID)
		}
		mark := " "
		if p.ID == active {
			mark = glyph.ActiveMark
		}
		_, _ = t.Printf("%s %s %s\n", mark, p.Avatar, p.Name)
	}
	_, _ = t.Println("")
}
