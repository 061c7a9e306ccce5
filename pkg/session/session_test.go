package session_test

import (
	"testing"

	"github.com/yuvraj-makani/event-ease/pkg/config"
	"github.com/yuvraj-makani/event-ease/pkg/planner"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(&config.Config{Currency: "₹"})
}

func createEvent(t *testing.T, s *session.Session, name string) string {
	t.Helper()
	e, err := s.Planner.CreateEvent(planner.CreateEventInput{Name: name, Date: "2026-09-01", Time: "18:00"})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return e.ID
}

func TestSelection(t *testing.T) {
	s := newSession(t)
	if _, err := s.RequireSelection(); err == nil {
		t.Fatal("expected an error with nothing selected")
	}

	id := createEvent(t, s, "Gala")
	if _, err := s.Select(id); err != nil {
		t.Fatalf("Select: %v", err)
	}
	e, err := s.RequireSelection()
	if err != nil {
		t.Fatalf("RequireSelection: %v", err)
	}
	if e.Name != "Gala" {
		t.Errorf("got %q", e.Name)
	}

	if _, err := s.Select("nope"); err == nil {
		t.Error("expected selecting an unknown event to fail")
	}
	if s.SelectedID() != id {
		t.Error("failed select must not clobber the selection")
	}
}

func TestDeleteClearsSelection(t *testing.T) {
	s := newSession(t)
	keep := createEvent(t, s, "Keep")
	drop := createEvent(t, s, "Drop")

	if _, err := s.Select(drop); err != nil {
		t.Fatalf("Select: %v", err)
	}
	s.DeleteEvent(drop)
	if s.SelectedID() != "" {
		t.Error("deleting the selected event must clear the selection")
	}

	// Deleting another event leaves the selection alone.
	if _, err := s.Select(keep); err != nil {
		t.Fatalf("Select: %v", err)
	}
	s.DeleteEvent(drop)
	if s.SelectedID() != keep {
		t.Error("deleting an unselected event must not clear the selection")
	}
}

func TestSnapshot(t *testing.T) {
	s := newSession(t)
	if snap := s.Snapshot(); snap.Event != nil {
		t.Error("expected a nil event with nothing selected")
	}

	id := createEvent(t, s, "Gala")
	if _, err := s.Select(id); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := s.Planner.AddTask(id, "Book venue", "desc", "2026-08-01"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	snap := s.Snapshot()
	if snap.Event == nil || snap.Event.ID != id {
		t.Fatal("snapshot missing the selected event")
	}
	if len(snap.Tasks) != 1 {
		t.Errorf("got %d tasks, want 1", len(snap.Tasks))
	}
}
