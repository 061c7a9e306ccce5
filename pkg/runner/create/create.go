// Package create provides the runner for making a new event.
package create

import (
	"context"
	"errors"

	"github.com/yuvraj-makani/event-ease/pkg/planner"
	"github.com/yuvraj-makani/event-ease/pkg/printers"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

// Create makes an event and selects it, seeding tasks and budgets when
// the template is known.
type Create struct {
	Session *session.Session

	Name     string
	Date     string
	Time     string
	Template string
}

func (n *Create) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not create, no session")
	}
	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}

	e, err := n.Session.Planner.CreateEvent(planner.CreateEventInput{
		Name:     n.Name,
		Date:     n.Date,
		Time:     n.Time,
		Template: n.Template,
	})
	if errors.Is(err, planner.ErrInvalidInput) {
		pp.Warn("event not created: name, date, and time are all required")
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := n.Session.Select(e.ID); err != nil {
		return err
	}

	pp.Title("Created " + e.Name)
	pp.Notice("id %s, on %s at %s", e.ID, e.Date, e.Time)
	if e.Template != "" {
		st := n.Session.Planner.Store
		pp.Notice("template %q seeded %d tasks and %d budget lines",
			e.Template, len(st.Tasks(e.ID)), len(st.Budgets(e.ID)))
	}
	return nil
}
