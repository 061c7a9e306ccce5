// Package planner provides the high-level planning operations: event
// lifecycle, task/guest/budget/expense editing. It wraps the store so
// shells and UIs can share logic.
package planner

import (
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/yuvraj-makani/event-ease/pkg/event"
	"github.com/yuvraj-makani/event-ease/pkg/store"
	"github.com/yuvraj-makani/event-ease/pkg/templates"
)

// ErrInvalidInput marks a rejected create: a required field was missing
// or an amount failed to parse. State is never touched on rejection.
var ErrInvalidInput = errors.New("planner: invalid input")

// Service provides the planning operations over a store. Every call is
// scoped by an explicit event id; the service holds no selection state.
type Service struct {
	Store   store.Store
	Catalog templates.Catalog
}

// New wires a service over the given store with the built-in catalog.
func New(s store.Store) *Service {
	return &Service{Store: s, Catalog: templates.Default()}
}

// CreateEventInput enumerates the recognized event-creation fields.
type CreateEventInput struct {
	Name     string
	Date     string
	Time     string
	Template string // optional; unknown names mean "no template"
}

// CreateEvent inserts a new event. When the template resolves, one task
// per task seed (deadline = event date) and one budget per budget seed
// are inserted with the event in a single step; there is no partially
// seeded state.
func (s *Service) CreateEvent(in CreateEventInput) (*event.Event, error) {
	if in.Name == "" || in.Date == "" || in.Time == "" {
		slog.Debug("event creation rejected", "name", in.Name, "date", in.Date, "time", in.Time)
		return nil, ErrInvalidInput
	}

	e := &event.Event{
		ID:   event.NewID(),
		Name: in.Name,
		Date: in.Date,
		Time: in.Time,
	}

	var tasks []*event.Task
	var budgets []*event.Budget
	if def, ok := s.Catalog.Lookup(in.Template); ok {
		e.Template = strings.ToLower(strings.TrimSpace(in.Template))
		for _, seed := range def.Tasks {
			tasks = append(tasks, &event.Task{
				ID:          event.NewID(),
				EventID:     e.ID,
				Title:       seed.Title,
				Description: seed.Description,
				Deadline:    e.Date,
			})
		}
		for _, seed := range def.Budgets {
			budgets = append(budgets, &event.Budget{
				ID:       event.NewID(),
				EventID:  e.ID,
				Category: seed.Category,
				Amount:   seed.Amount,
			})
		}
	}

	if err := s.Store.SaveEvent(e, tasks, budgets); err != nil {
		return nil, err
	}
	slog.Info("event created", "event_id", e.ID, "name", e.Name,
		"template", e.Template, "seeded_tasks", len(tasks), "seeded_budgets", len(budgets))
	return e, nil
}

// DeleteEvent removes the event and every owned record in one step.
// Unknown ids are a no-op. Clearing any UI selection of the deleted
// event is the caller's job.
func (s *Service) DeleteEvent(id string) {
	s.Store.DeleteEvent(id)
	slog.Info("event deleted", "event_id", id)
}

// AddTask creates a task. Title, description, and deadline are required.
func (s *Service) AddTask(eventID, title, description, deadline string) (*event.Task, error) {
	if title == "" || description == "" || deadline == "" {
		slog.Debug("task creation rejected", "event_id", eventID, "title", title)
		return nil, ErrInvalidInput
	}
	t := &event.Task{
		ID:          event.NewID(),
		EventID:     eventID,
		Title:       title,
		Description: description,
		Deadline:    deadline,
	}
	if err := s.Store.SaveTask(t); err != nil {
		return nil, err
	}
	slog.Info("task added", "event_id", eventID, "task_id", t.ID, "title", title)
	return t, nil
}

// ToggleTask flips a task's completed flag. Unknown ids are a no-op.
func (s *Service) ToggleTask(eventID, taskID string) error {
	t, ok := s.Store.Task(eventID, taskID)
	if !ok {
		return nil
	}
	t.Completed = !t.Completed
	if err := s.Store.SaveTask(t); err != nil {
		return err
	}
	slog.Info("task toggled", "event_id", eventID, "task_id", taskID, "completed", t.Completed)
	return nil
}

// RemoveTask deletes a task. Unknown ids are a no-op.
func (s *Service) RemoveTask(eventID, taskID string) {
	s.Store.DeleteTask(eventID, taskID)
	slog.Info("task removed", "event_id", eventID, "task_id", taskID)
}

// GuestInput carries the fields for a new guest.
type GuestInput struct {
	Name            string
	Email           string
	RSVP            event.RSVP
	SpecialRequests string
	VIP             bool
}

// AddGuest creates a guest. Name and email are required; RSVP defaults
// to Pending and guests start not checked in.
func (s *Service) AddGuest(eventID string, in GuestInput) (*event.Guest, error) {
	if in.Name == "" || in.Email == "" {
		slog.Debug("guest creation rejected", "event_id", eventID, "name", in.Name)
		return nil, ErrInvalidInput
	}
	if in.RSVP == "" {
		in.RSVP = event.RSVPPending
	}
	g := &event.Guest{
		ID:              event.NewID(),
		EventID:         eventID,
		Name:            in.Name,
		Email:           in.Email,
		RSVP:            in.RSVP,
		SpecialRequests: in.SpecialRequests,
		VIP:             in.VIP,
	}
	if err := s.Store.SaveGuest(g); err != nil {
		return nil, err
	}
	slog.Info("guest added", "event_id", eventID, "guest_id", g.ID, "name", in.Name)
	return g, nil
}

// CheckInGuest marks a guest checked in. The transition is one-way;
// checking in an already-checked-in or unknown guest has no effect.
func (s *Service) CheckInGuest(eventID, guestID string) error {
	g, ok := s.Store.Guest(eventID, guestID)
	if !ok || g.CheckedIn {
		return nil
	}
	g.CheckedIn = true
	if err := s.Store.SaveGuest(g); err != nil {
		return err
	}
	slog.Info("guest checked in", "event_id", eventID, "guest_id", guestID)
	return nil
}

// RemoveGuest deletes a guest. Unknown ids are a no-op.
func (s *Service) RemoveGuest(eventID, guestID string) {
	s.Store.DeleteGuest(eventID, guestID)
	slog.Info("guest removed", "event_id", eventID, "guest_id", guestID)
}

// AddBudget creates a budget line. The category is required and the
// amount must parse as a non-negative number.
func (s *Service) AddBudget(eventID, category, amount string) (*event.Budget, error) {
	v, err := parseAmount(amount)
	if category == "" || err != nil {
		slog.Debug("budget creation rejected", "event_id", eventID, "category", category, "amount", amount)
		return nil, ErrInvalidInput
	}
	b := &event.Budget{
		ID:       event.NewID(),
		EventID:  eventID,
		Category: category,
		Amount:   v,
	}
	if err := s.Store.SaveBudget(b); err != nil {
		return nil, err
	}
	slog.Info("budget added", "event_id", eventID, "budget_id", b.ID, "category", category, "amount", v)
	return b, nil
}

// RemoveBudget deletes a budget line. Expenses recorded against its
// category remain and keep counting toward totals.
func (s *Service) RemoveBudget(eventID, budgetID string) {
	s.Store.DeleteBudget(eventID, budgetID)
	slog.Info("budget removed", "event_id", eventID, "budget_id", budgetID)
}

// AddExpense records a spend. Category, description, and a non-negative
// amount are required. Expenses have no individual delete; they go away
// only when their event does.
func (s *Service) AddExpense(eventID, category, description, amount string) (*event.Expense, error) {
	v, err := parseAmount(amount)
	if category == "" || description == "" || err != nil {
		slog.Debug("expense creation rejected", "event_id", eventID, "category", category, "amount", amount)
		return nil, ErrInvalidInput
	}
	x := &event.Expense{
		ID:          event.NewID(),
		EventID:     eventID,
		Category:    category,
		Description: description,
		Amount:      v,
	}
	if err := s.Store.SaveExpense(x); err != nil {
		return nil, err
	}
	slog.Info("expense added", "event_id", eventID, "expense_id", x.ID, "category", category, "amount", v)
	return x, nil
}

func parseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidInput
	}
	return v, nil
}
