package complete

import (
	"context"

	"tableflip.dev/keep/pkg/printers"
	"tableflip.dev/keep/pkg/store"
)

// Complete toggles a task's completed flag.
type Complete struct {
	ID string

	Store  *store.Store
	ShowID bool
}

func (c *Complete) Do(ctx context.Context) error {
	if _, err := c.Store.ToggleTask(ctx, c.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: c.ShowID}
	pp.Title("tasks")
	pp.Tasks(c.Store.Tasks()...)
	return nil
}
