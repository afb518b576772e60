package schedule

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/keep/pkg/model"
)

// LocalNotifier delivers notifications in-process by printing to a writer
// when a trigger fires. It backs agent mode, where the CLI stays resident.
// Recurring triggers re-arm themselves after each fire, since there is no
// OS scheduler to express the rule natively.
type LocalNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	seq    int
	timers map[string]*time.Timer
}

// NewLocalNotifier creates a notifier printing fired reminders to out.
func NewLocalNotifier(out io.Writer) *LocalNotifier {
	if out == nil {
		out = color.Output
	}
	return &LocalNotifier{
		out:    out,
		timers: make(map[string]*time.Timer),
	}
}

// Schedule arms a timer for the fire time and returns its trigger id.
func (n *LocalNotifier) Schedule(at time.Time, r model.Reminder) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	id := fmt.Sprintf("trigger-%d", n.seq)
	n.armLocked(id, at, r)
	return id, nil
}

func (n *LocalNotifier) armLocked(id string, at time.Time, r model.Reminder) {
	n.timers[id] = time.AfterFunc(time.Until(at), func() {
		n.fire(id, at, r)
	})
}

func (n *LocalNotifier) fire(id string, at time.Time, r model.Reminder) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	_, _ = bold.Fprintf(n.out, "\a◷ %s\n", r.Title)
	if r.Body != "" {
		_, _ = fmt.Fprintf(n.out, "  %s\n", r.Body)
	}
	_, _ = faint.Fprintf(n.out, "  %s\n", at.Format(time.Kitchen))

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, live := n.timers[id]; !live {
		// Cancelled while firing; do not re-arm.
		return
	}
	if next, ok := Advance(at, r.Time.Day(), r.Repeat); ok {
		n.armLocked(id, next, r)
	} else {
		delete(n.timers, id)
	}
}

// Cancel stops the trigger with the given id.
func (n *LocalNotifier) Cancel(triggerID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if t, ok := n.timers[triggerID]; ok {
		t.Stop()
		delete(n.timers, triggerID)
	}
	return nil
}

// CancelAll stops every armed trigger.
func (n *LocalNotifier) CancelAll() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	return nil
}
