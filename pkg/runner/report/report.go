// Package report renders the analytics view for the selected event.
package report

import (
	"context"
	"fmt"

	"github.com/yuvraj-makani/event-ease/pkg/analytics"
	"github.com/yuvraj-makani/event-ease/pkg/printers"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

// Report prints budget-vs-expense bars and the performance summary.
type Report struct {
	Session *session.Session
}

func (n *Report) Do(ctx context.Context) error {
	e, err := n.Session.RequireSelection()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}
	st := n.Session.Planner.Store

	sum := analytics.Summarize(st.Budgets(e.ID), st.Expenses(e.ID), st.Guests(e.ID))
	if len(sum.Categories) == 0 {
		pp.Title(e.Name + " analytics")
		pp.Notice("add budgets and expenses to view analytics")
		return nil
	}

	pp.Title(e.Name + " — budget vs expenses")
	for _, cs := range sum.Categories {
		pp.Bar(cs.Budget.Category, cs.Percent, cs.Over)
		pp.Notice("  %s of %s", pp.Money(cs.Spent), pp.Money(cs.Budget.Amount))
	}
	pp.NewLine()

	pp.Title("Performance summary")
	fmt.Printf("Attendance rate      %.1f%% (%d of %d guests)\n", sum.AttendanceRate, sum.CheckedIn, sum.GuestCount)
	fmt.Printf("Overspent categories %d of %d\n", sum.Overspent, len(sum.Categories))
	fmt.Printf("Budget utilization   %.1f%% (%s of %s used)\n", sum.Utilization, pp.Money(sum.TotalExpenses), pp.Money(sum.TotalBudget))
	return nil
}
