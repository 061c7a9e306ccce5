// Package store holds the session's planning records in memory. Records
// are indexed by their owning event so per-event reads are direct lookups
// rather than full scans, and deleting an event drops every owned record
// in one step.
package store

import (
	"errors"

	"github.com/yuvraj-makani/event-ease/pkg/event"
)

// ErrNoEvent is returned when a record references an event id that does
// not exist.
var ErrNoEvent = errors.New("store: no such event")

// Store is the contract between the planner and its record storage.
// Implementations must keep cascade deletes and seeded inserts atomic:
// callers never observe a partially created or partially deleted event.
type Store interface {
	// SaveEvent inserts an event together with its seed records. Seeds
	// may be nil for a plain event. The call is all-or-nothing.
	SaveEvent(e *event.Event, tasks []*event.Task, budgets []*event.Budget) error
	Event(id string) (*event.Event, bool)
	Events() []*event.Event
	// DeleteEvent removes the event and every record owned by it.
	// Deleting an unknown id is a no-op.
	DeleteEvent(id string)

	// SaveTask inserts or replaces a task, keyed by its ID. Insertion
	// order is preserved for reads.
	SaveTask(t *event.Task) error
	Tasks(eventID string) []*event.Task
	Task(eventID, id string) (*event.Task, bool)
	// DeleteTask is a no-op for unknown ids.
	DeleteTask(eventID, id string)

	SaveGuest(g *event.Guest) error
	Guests(eventID string) []*event.Guest
	Guest(eventID, id string) (*event.Guest, bool)
	DeleteGuest(eventID, id string)

	SaveBudget(b *event.Budget) error
	Budgets(eventID string) []*event.Budget
	// DeleteBudget removes only the budget line. Expenses recorded
	// against its category remain and still count toward totals.
	DeleteBudget(eventID, id string)

	SaveExpense(x *event.Expense) error
	Expenses(eventID string) []*event.Expense
}
