package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/keep/pkg/app"
)

// Agent keeps the process resident, rearming reminder triggers on every
// data change and delivering them through the local notifier. This is the
// closest a CLI gets to the original app's foregrounded scheduler.
type Agent struct {
	Service *app.Service
}

func (a *Agent) Do(ctx context.Context) error {
	if err := a.Service.Bootstrap(ctx); err != nil {
		return err
	}

	active := a.Service.Store.ActiveProfile()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	if active == nil {
		_, _ = faint.Println("no active profile; nothing to schedule until one is switched on")
	} else {
		_, _ = bold.Printf("watching reminders for %s %s\n", active.Avatar, active.Name)
	}
	for _, at := range a.Service.Scheduler.Upcoming() {
		_, _ = faint.Printf("  next: %s\n", at.Format(time.RFC1123))
	}
	fmt.Println("")

	return a.Service.Run(ctx)
}
