// Package get provides the listing runners.
package get

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/yuvraj-makani/event-ease/pkg/analytics"
	"github.com/yuvraj-makani/event-ease/pkg/event"
	"github.com/yuvraj-makani/event-ease/pkg/printers"
	"github.com/yuvraj-makani/event-ease/pkg/session"
	"github.com/yuvraj-makani/event-ease/pkg/venues"
)

// Kind names a listable collection.
type Kind string

const (
	Events    Kind = "events"
	Tasks     Kind = "tasks"
	Guests    Kind = "guests"
	Budgets   Kind = "budgets"
	Expenses  Kind = "expenses"
	Templates Kind = "templates"
	Venues    Kind = "venues"
)

// Get lists one collection. Events, templates, and venues work without a
// selection; the rest are scoped to the selected event.
type Get struct {
	Session *session.Session
	Kind    Kind
}

func (n *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}

	switch n.Kind {
	case Events:
		all := n.Session.Planner.Store.Events()
		pp.TitleWithCount("Events", len(all), "event")
		if len(all) == 0 {
			pp.None()
			return nil
		}
		event.PrettyPrintEvents(n.Session.SelectedID(), all...)
		return nil

	case Templates:
		names := n.Session.Planner.Catalog.Names()
		pp.TitleWithCount("Templates", len(names), "template")
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("NAME", "TASKS", "BUDGET LINES")
		for _, name := range names {
			def, _ := n.Session.Planner.Catalog.Lookup(name)
			tbl.AddRow(name, len(def.Tasks), len(def.Budgets))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		return nil

	case Venues:
		all := venues.All()
		pp.TitleWithCount("Venues", len(all), "venue")
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("NAME", "TYPE", "RATING", "PRICE", "LOCATION")
		for _, v := range all {
			tbl.AddRow(v.Name, v.Type, fmt.Sprintf("%.1f", v.Rating), v.Price, v.Location)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		return nil
	}

	e, err := n.Session.RequireSelection()
	if err != nil {
		return err
	}
	st := n.Session.Planner.Store

	switch n.Kind {
	case Tasks:
		all := st.Tasks(e.ID)
		pp.TitleWithCount(e.Name+" tasks", len(all), "task")
		if len(all) == 0 {
			pp.None()
			return nil
		}
		event.PrettyPrintTasks(all...)

	case Guests:
		all := st.Guests(e.ID)
		pp.TitleWithCount(e.Name+" guests", len(all), "guest")
		if len(all) == 0 {
			pp.None()
			return nil
		}
		event.PrettyPrintGuests(all...)

	case Budgets:
		all := st.Budgets(e.ID)
		pp.TitleWithCount(e.Name+" budgets", len(all), "budget line")
		if len(all) == 0 {
			pp.None()
			return nil
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("CATEGORY", "BUDGET", "SPENT", "ID")
		for _, cs := range analytics.Spend(all, st.Expenses(e.ID)) {
			spent := pp.Money(cs.Spent)
			if cs.Over {
				spent += " (over)"
			}
			tbl.AddRow(cs.Budget.Category, pp.Money(cs.Budget.Amount), spent, cs.Budget.ID)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)

	case Expenses:
		all := st.Expenses(e.ID)
		pp.TitleWithCount(e.Name+" expenses", len(all), "expense")
		if len(all) == 0 {
			pp.None()
			return nil
		}
		event.PrettyPrintExpenses(n.Session.Config.Currency, all...)

	default:
		return fmt.Errorf("unknown collection %q", n.Kind)
	}
	return nil
}
