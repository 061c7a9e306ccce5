// Package complete provides the runner for toggling a task's done flag.
package complete

import (
	"context"

	"github.com/yuvraj-makani/event-ease/pkg/event"
	"github.com/yuvraj-makani/event-ease/pkg/printers"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

// Toggle flips the completed flag on one task of the selected event.
type Toggle struct {
	Session *session.Session
	ID      string
}

func (n *Toggle) Do(ctx context.Context) error {
	e, err := n.Session.RequireSelection()
	if err != nil {
		return err
	}
	if err := n.Session.Planner.ToggleTask(e.ID, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}
	all := n.Session.Planner.Store.Tasks(e.ID)
	pp.TitleWithCount(e.Name, len(all), "task")
	event.PrettyPrintTasks(all...)
	return nil
}
