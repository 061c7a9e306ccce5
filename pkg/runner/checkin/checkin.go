// Package checkin provides the runner for marking guests as arrived.
package checkin

import (
	"context"

	"github.com/yuvraj-makani/event-ease/pkg/event"
	"github.com/yuvraj-makani/event-ease/pkg/printers"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

// CheckIn marks one guest of the selected event as checked in. The
// transition is one-way; repeating it changes nothing.
type CheckIn struct {
	Session *session.Session
	ID      string
}

func (n *CheckIn) Do(ctx context.Context) error {
	e, err := n.Session.RequireSelection()
	if err != nil {
		return err
	}
	if err := n.Session.Planner.CheckInGuest(e.ID, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}
	all := n.Session.Planner.Store.Guests(e.ID)
	pp.TitleWithCount(e.Name, len(all), "guest")
	event.PrettyPrintGuests(all...)
	return nil
}
