package event

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// StatusGlyph renders a task's completion state.
func (t *Task) StatusGlyph() string {
	if t.Completed {
		return "✘"
	}
	return "●"
}

// Badges summarizes a guest's flags for table display.
func (g *Guest) Badges() string {
	badges := ""
	if g.VIP {
		badges += "★"
	}
	if g.CheckedIn {
		badges += "✔"
	}
	return badges
}

// PrettyPrintTasks writes a task table to the color-aware writer.
func PrettyPrintTasks(tasks ...*Task) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "TITLE", "DEADLINE", "DESCRIPTION", "ID")
	for _, t := range tasks {
		tbl.AddRow(t.StatusGlyph(), t.Title, t.Deadline, t.Description, t.ID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PrettyPrintGuests writes a guest table to the color-aware writer.
func PrettyPrintGuests(guests ...*Guest) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "NAME", "EMAIL", "RSVP", "REQUESTS", "ID")
	for _, g := range guests {
		tbl.AddRow(g.Badges(), g.Name, g.Email, g.RSVP.String(), g.SpecialRequests, g.ID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PrettyPrintExpenses writes an expense table to the color-aware writer.
func PrettyPrintExpenses(currency string, expenses ...*Expense) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("CATEGORY", "DESCRIPTION", "AMOUNT", "ID")
	for _, e := range expenses {
		tbl.AddRow(e.Category, e.Description, fmt.Sprintf("%s%.2f", currency, e.Amount), e.ID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PrettyPrintEvents writes an event table to the color-aware writer.
func PrettyPrintEvents(selectedID string, events ...*Event) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "NAME", "DATE", "TIME", "TEMPLATE", "ID")
	for _, e := range events {
		marker := ""
		if e.ID == selectedID {
			marker = "›"
		}
		tbl.AddRow(marker, e.Name, e.Date, e.Time, e.Template, e.ID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
