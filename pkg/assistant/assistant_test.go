package assistant_test

import (
	"strings"
	"testing"
	"time"

	"github.com/yuvraj-makani/event-ease/pkg/assistant"
	"github.com/yuvraj-makani/event-ease/pkg/event"
	"github.com/yuvraj-makani/event-ease/pkg/templates"
)

func newResponder() *assistant.Responder {
	r := assistant.New(templates.Default(), "₹")
	r.Now = func() time.Time {
		return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	}
	return r
}

func gala() assistant.Snapshot {
	e := &event.Event{ID: "e1", Name: "Annual Gala", Date: "2026-09-01", Time: "18:00", Template: "wedding"}
	return assistant.Snapshot{
		Event: e,
		Tasks: []*event.Task{
			{Title: "Book venue", Completed: true},
			{Title: "Send invites"},
			{Title: "Order flowers"},
		},
		Guests: []*event.Guest{
			{Name: "Priya", RSVP: event.RSVPConfirmed, VIP: true},
			{Name: "Arun", RSVP: event.RSVPPending},
		},
		Budgets:  []*event.Budget{{Category: "Venue", Amount: 1000}},
		Expenses: []*event.Expense{{Category: "Venue", Amount: 250}},
	}
}

func TestNoEventSelected(t *testing.T) {
	r := newResponder()
	for _, input := range []string{"status", "budget", "anything at all"} {
		got := r.Respond(input, assistant.Snapshot{})
		if !strings.Contains(got, "select an event first") {
			t.Errorf("input %q: got %q, want the select-an-event prompt", input, got)
		}
	}
}

func TestTaskReply(t *testing.T) {
	r := newResponder()

	got := r.Respond("what tasks are left?", gala())
	want := `You have 2 tasks pending. Time to get them done! The most urgent one is: "Send invites"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	snap := gala()
	for _, task := range snap.Tasks {
		task.Completed = true
	}
	got = r.Respond("tasks?", snap)
	if got != "All your tasks are complete! Great job!" {
		t.Errorf("got %q", got)
	}
}

func TestBudgetReply(t *testing.T) {
	r := newResponder()
	got := r.Respond("how's my budget?", gala())
	want := "Your total budget is ₹1000. You've spent ₹250, leaving ₹750 remaining."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGuestReply(t *testing.T) {
	r := newResponder()
	got := r.Respond("any news on the guests?", gala())
	want := "1 guests have confirmed out of 2 total guests. You have 1 VIP guests."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTipReply(t *testing.T) {
	r := newResponder()

	got := r.Respond("give me a tip", gala())
	if !strings.Contains(got, "wedding") {
		t.Errorf("expected the wedding tip, got %q", got)
	}

	snap := gala()
	snap.Event.Template = ""
	got = r.Respond("any advice?", snap)
	if !strings.Contains(got, "delegation") {
		t.Errorf("expected the generic tip, got %q", got)
	}
}

func TestStatusReply(t *testing.T) {
	r := newResponder()
	got := r.Respond("what's my event status?", gala())

	for _, want := range []string{
		"Annual Gala summary",
		"• 2 tasks pending",
		"• 1/2 guests confirmed",
		"• ₹250 spent of ₹1000 budget",
		"• 7 days remaining",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("status reply missing %q:\n%s", want, got)
		}
	}
}

func TestHelloReply(t *testing.T) {
	r := newResponder()
	got := r.Respond("hello there", gala())
	if !strings.Contains(got, "Annual Gala") {
		t.Errorf("got %q", got)
	}
}

func TestFallback(t *testing.T) {
	r := newResponder()
	got := r.Respond("do a barrel roll", gala())
	if !strings.Contains(got, "I can help you with tasks, budget, guests") {
		t.Errorf("got %q", got)
	}
}

// First keyword match wins, so a question naming several topics gets the
// highest-precedence one.
func TestPrecedence(t *testing.T) {
	r := newResponder()

	got := r.Respond("budget and guest status", gala())
	if !strings.Contains(got, "total budget") {
		t.Errorf("budget should outrank guest and status, got %q", got)
	}

	got = r.Respond("task or budget?", gala())
	if !strings.Contains(got, "tasks pending") {
		t.Errorf("task should outrank budget, got %q", got)
	}

	// "hi" matches as a substring, so "this" routes to the greeting.
	got = r.Respond("what is this", gala())
	if !strings.Contains(got, "Hello!") {
		t.Errorf("got %q", got)
	}
}
