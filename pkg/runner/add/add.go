// Package add provides runners for creating records on the selected
// event. A rejected create prints a warning and leaves state untouched.
package add

import (
	"context"
	"errors"

	"github.com/yuvraj-makani/event-ease/pkg/event"
	"github.com/yuvraj-makani/event-ease/pkg/planner"
	"github.com/yuvraj-makani/event-ease/pkg/printers"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

// Task adds a to-do to the selected event.
type Task struct {
	Session *session.Session

	Title       string
	Description string
	Deadline    string
}

func (n *Task) Do(ctx context.Context) error {
	e, err := n.Session.RequireSelection()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}

	_, err = n.Session.Planner.AddTask(e.ID, n.Title, n.Description, n.Deadline)
	if errors.Is(err, planner.ErrInvalidInput) {
		pp.Warn("task not added: title, description, and deadline are all required")
		return nil
	}
	if err != nil {
		return err
	}

	all := n.Session.Planner.Store.Tasks(e.ID)
	pp.TitleWithCount(e.Name, len(all), "task")
	event.PrettyPrintTasks(all...)
	return nil
}

// Guest adds an invitee to the selected event.
type Guest struct {
	Session *session.Session

	Name            string
	Email           string
	RSVP            string
	SpecialRequests string
	VIP             bool
}

func (n *Guest) Do(ctx context.Context) error {
	e, err := n.Session.RequireSelection()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}

	rsvp, err := event.ParseRSVP(n.RSVP)
	if err != nil {
		pp.Warn("guest not added: %v", err)
		return nil
	}

	_, err = n.Session.Planner.AddGuest(e.ID, planner.GuestInput{
		Name:            n.Name,
		Email:           n.Email,
		RSVP:            rsvp,
		SpecialRequests: n.SpecialRequests,
		VIP:             n.VIP,
	})
	if errors.Is(err, planner.ErrInvalidInput) {
		pp.Warn("guest not added: name and email are required")
		return nil
	}
	if err != nil {
		return err
	}

	all := n.Session.Planner.Store.Guests(e.ID)
	pp.TitleWithCount(e.Name, len(all), "guest")
	event.PrettyPrintGuests(all...)
	return nil
}

// Budget adds a budget line to the selected event.
type Budget struct {
	Session *session.Session

	Category string
	Amount   string
}

func (n *Budget) Do(ctx context.Context) error {
	e, err := n.Session.RequireSelection()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}

	_, err = n.Session.Planner.AddBudget(e.ID, n.Category, n.Amount)
	if errors.Is(err, planner.ErrInvalidInput) {
		pp.Warn("budget not added: category and a non-negative amount are required")
		return nil
	}
	if err != nil {
		return err
	}

	pp.Notice("budget for %q recorded", n.Category)
	return nil
}

// Expense records a spend on the selected event. Expenses cannot be
// deleted individually; they live until their event is deleted.
type Expense struct {
	Session *session.Session

	Category    string
	Description string
	Amount      string
}

func (n *Expense) Do(ctx context.Context) error {
	e, err := n.Session.RequireSelection()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}

	_, err = n.Session.Planner.AddExpense(e.ID, n.Category, n.Description, n.Amount)
	if errors.Is(err, planner.ErrInvalidInput) {
		pp.Warn("expense not added: category, description, and a non-negative amount are required")
		return nil
	}
	if err != nil {
		return err
	}

	all := n.Session.Planner.Store.Expenses(e.ID)
	pp.TitleWithCount(e.Name, len(all), "expense")
	event.PrettyPrintExpenses(n.Session.Config.Currency, all...)
	return nil
}
