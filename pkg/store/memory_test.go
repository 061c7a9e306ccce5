package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/yuvraj-makani/event-ease/pkg/event"
	"github.com/yuvraj-makani/event-ease/pkg/store"
)

func seedEvent(t *testing.T, m *store.Memory, name string) *event.Event {
	t.Helper()
	e := &event.Event{ID: event.NewID(), Name: name, Date: "2026-09-01", Time: "18:00"}
	if err := m.SaveEvent(e, nil, nil); err != nil {
		t.Fatalf("SaveEvent: %v", err)
	}
	return e
}

func TestSaveEventSeedsAtomically(t *testing.T) {
	m := store.NewMemory()
	e := &event.Event{ID: event.NewID(), Name: "Gala", Date: "2026-09-01", Time: "18:00"}
	tasks := []*event.Task{
		{ID: event.NewID(), EventID: e.ID, Title: "first"},
		{ID: event.NewID(), EventID: e.ID, Title: "second"},
	}
	budgets := []*event.Budget{
		{ID: event.NewID(), EventID: e.ID, Category: "Venue", Amount: 100},
	}
	if err := m.SaveEvent(e, tasks, budgets); err != nil {
		t.Fatalf("SaveEvent: %v", err)
	}

	got := m.Tasks(e.ID)
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Errorf("seed order not preserved: %q, %q", got[0].Title, got[1].Title)
	}
	if len(m.Budgets(e.ID)) != 1 {
		t.Errorf("got %d budgets, want 1", len(m.Budgets(e.ID)))
	}
}

func TestReadsReturnCopies(t *testing.T) {
	m := store.NewMemory()
	e := seedEvent(t, m, "Gala")

	task := &event.Task{ID: event.NewID(), EventID: e.ID, Title: "original"}
	if err := m.SaveTask(task); err != nil {
		t.Fatalf("SaveTask: %v", err)
	}

	got, ok := m.Task(e.ID, task.ID)
	if !ok {
		t.Fatal("task not found")
	}
	got.Title = "mutated"

	again, _ := m.Task(e.ID, task.ID)
	if again.Title != "original" {
		t.Errorf("mutation of a read leaked into the store: %q", again.Title)
	}

	// Mutating the saved value after the fact must not leak either.
	task.Title = "mutated too"
	again, _ = m.Task(e.ID, task.ID)
	if again.Title != "original" {
		t.Errorf("mutation of the saved value leaked into the store: %q", again.Title)
	}
}

func TestDeleteEventCascades(t *testing.T) {
	m := store.NewMemory()
	keep := seedEvent(t, m, "Keep")
	drop := seedEvent(t, m, "Drop")

	for i, id := range []string{keep.ID, drop.ID} {
		if err := m.SaveTask(&event.Task{ID: event.NewID(), EventID: id, Title: fmt.Sprintf("t%d", i)}); err != nil {
			t.Fatalf("SaveTask: %v", err)
		}
		if err := m.SaveGuest(&event.Guest{ID: event.NewID(), EventID: id, Name: "g", Email: "g@x"}); err != nil {
			t.Fatalf("SaveGuest: %v", err)
		}
		if err := m.SaveBudget(&event.Budget{ID: event.NewID(), EventID: id, Category: "Venue", Amount: 1}); err != nil {
			t.Fatalf("SaveBudget: %v", err)
		}
		if err := m.SaveExpense(&event.Expense{ID: event.NewID(), EventID: id, Category: "Venue", Description: "d", Amount: 1}); err != nil {
			t.Fatalf("SaveExpense: %v", err)
		}
	}

	m.DeleteEvent(drop.ID)

	if _, ok := m.Event(drop.ID); ok {
		t.Error("deleted event still present")
	}
	if n := len(m.Tasks(drop.ID)) + len(m.Guests(drop.ID)) + len(m.Budgets(drop.ID)) + len(m.Expenses(drop.ID)); n != 0 {
		t.Errorf("cascade left %d records behind", n)
	}

	// The other event must be untouched.
	if n := len(m.Tasks(keep.ID)) + len(m.Guests(keep.ID)) + len(m.Budgets(keep.ID)) + len(m.Expenses(keep.ID)); n != 4 {
		t.Errorf("cascade touched another event, %d records left, want 4", n)
	}

	// Deleting again is a quiet no-op.
	m.DeleteEvent(drop.ID)
	m.DeleteEvent("nope")
}

func TestEventsKeepCreationOrder(t *testing.T) {
	m := store.NewMemory()
	a := seedEvent(t, m, "A")
	b := seedEvent(t, m, "B")
	c := seedEvent(t, m, "C")

	m.DeleteEvent(b.ID)
	all := m.Events()
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != c.ID {
		t.Errorf("unexpected order after delete: %v", all)
	}
}

func TestSaveIntoMissingEvent(t *testing.T) {
	m := store.NewMemory()
	err := m.SaveTask(&event.Task{ID: event.NewID(), EventID: "nope", Title: "t"})
	if !errors.Is(err, store.ErrNoEvent) {
		t.Errorf("got %v, want ErrNoEvent", err)
	}
}

func TestSaveUpsertsInPlace(t *testing.T) {
	m := store.NewMemory()
	e := seedEvent(t, m, "Gala")

	first := &event.Task{ID: event.NewID(), EventID: e.ID, Title: "one"}
	second := &event.Task{ID: event.NewID(), EventID: e.ID, Title: "two"}
	for _, task := range []*event.Task{first, second} {
		if err := m.SaveTask(task); err != nil {
			t.Fatalf("SaveTask: %v", err)
		}
	}

	first.Completed = true
	if err := m.SaveTask(first); err != nil {
		t.Fatalf("SaveTask: %v", err)
	}

	all := m.Tasks(e.ID)
	if len(all) != 2 {
		t.Fatalf("upsert duplicated the task, got %d", len(all))
	}
	if all[0].ID != first.ID || !all[0].Completed {
		t.Error("upsert did not update in place")
	}
}
