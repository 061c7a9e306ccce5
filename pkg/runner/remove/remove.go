// Package remove provides the deletion runners. Removing an id that is
// already gone is a quiet no-op everywhere.
package remove

import (
	"context"
	"fmt"

	"github.com/yuvraj-makani/event-ease/pkg/printers"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

// Kind names a removable record type. Expenses are deliberately absent:
// they are only removed by their event's cascade.
type Kind string

const (
	Event  Kind = "event"
	Task   Kind = "task"
	Guest  Kind = "guest"
	Budget Kind = "budget"
)

// Remove deletes one record. Event removal cascades to every owned
// record and clears the selection when it was selected; budget removal
// leaves that category's expenses behind.
type Remove struct {
	Session *session.Session
	Kind    Kind
	ID      string
}

func (n *Remove) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}

	if n.Kind == Event {
		n.Session.DeleteEvent(n.ID)
		pp.Notice("event %s removed along with its tasks, guests, budgets, and expenses", n.ID)
		return nil
	}

	e, err := n.Session.RequireSelection()
	if err != nil {
		return err
	}

	switch n.Kind {
	case Task:
		n.Session.Planner.RemoveTask(e.ID, n.ID)
		pp.Notice("task %s removed", n.ID)
	case Guest:
		n.Session.Planner.RemoveGuest(e.ID, n.ID)
		pp.Notice("guest %s removed", n.ID)
	case Budget:
		n.Session.Planner.RemoveBudget(e.ID, n.ID)
		pp.Notice("budget %s removed; its recorded expenses remain", n.ID)
	default:
		return fmt.Errorf("unknown record type %q", n.Kind)
	}
	return nil
}
