// Package session owns the per-run state the core deliberately does not:
// the store instance and the single selected-event id. Every core call
// still takes the event id explicitly; the session only remembers which
// one the user is working on.
package session

import (
	"errors"

	"github.com/yuvraj-makani/event-ease/pkg/assistant"
	"github.com/yuvraj-makani/event-ease/pkg/config"
	"github.com/yuvraj-makani/event-ease/pkg/event"
	"github.com/yuvraj-makani/event-ease/pkg/planner"
	"github.com/yuvraj-makani/event-ease/pkg/store"
	"github.com/yuvraj-makani/event-ease/pkg/templates"
)

// ErrNoSelection is returned by commands that need a selected event.
var ErrNoSelection = errors.New("session: no event selected, run 'event select <id>' first")

// Session bundles the planner, the responder, and the selection for one
// interactive run. All state dies with the process.
type Session struct {
	Planner   *planner.Service
	Responder *assistant.Responder
	Config    *config.Config

	selected string
}

// New builds a session over a fresh in-memory store.
func New(cfg *config.Config) *Session {
	catalog := templates.Default().Merge(cfg.ExtraTemplates)
	svc := &planner.Service{Store: store.NewMemory(), Catalog: catalog}
	return &Session{
		Planner:   svc,
		Responder: assistant.New(catalog, cfg.Currency),
		Config:    cfg,
	}
}

// SelectedID returns the selected event id, empty when none.
func (s *Session) SelectedID() string {
	return s.selected
}

// Selected resolves the selected event, reporting false when no event is
// selected or the selection no longer exists.
func (s *Session) Selected() (*event.Event, bool) {
	if s.selected == "" {
		return nil, false
	}
	return s.Planner.Store.Event(s.selected)
}

// Select sets the selection to an existing event.
func (s *Session) Select(id string) (*event.Event, error) {
	e, ok := s.Planner.Store.Event(id)
	if !ok {
		return nil, errors.New("session: no such event")
	}
	s.selected = id
	return e, nil
}

// RequireSelection returns the selected event or ErrNoSelection.
func (s *Session) RequireSelection() (*event.Event, error) {
	e, ok := s.Selected()
	if !ok {
		return nil, ErrNoSelection
	}
	return e, nil
}

// DeleteEvent cascades the delete and clears the selection when the
// deleted event was the selected one.
func (s *Session) DeleteEvent(id string) {
	s.Planner.DeleteEvent(id)
	if s.selected == id {
		s.selected = ""
	}
}

// Snapshot captures the selected event's records for the responder.
// With no selection the snapshot has a nil event, which routes every
// chat input to the select-an-event prompt.
func (s *Session) Snapshot() assistant.Snapshot {
	e, ok := s.Selected()
	if !ok {
		return assistant.Snapshot{}
	}
	st := s.Planner.Store
	return assistant.Snapshot{
		Event:    e,
		Tasks:    st.Tasks(e.ID),
		Guests:   st.Guests(e.ID),
		Budgets:  st.Budgets(e.ID),
		Expenses: st.Expenses(e.ID),
	}
}
