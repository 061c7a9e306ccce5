// Package assistant answers canned planning questions from the current
// event's records. Dispatch is keyword-based, first match wins, so an
// input mentioning both "budget" and "guest" is always a budget query.
package assistant

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yuvraj-makani/event-ease/pkg/event"
	"github.com/yuvraj-makani/event-ease/pkg/templates"
)

// Greeting opens every chat session.
const Greeting = "Hello! I'm your EventEase assistant. How can I help you manage your event today?"

const genericTip = "Focus on efficient delegation and clear communication for smooth event management. Don't forget to have backup plans!"

const noEventReply = "Please select an event first to ask questions about its status, tasks, or budget."

// Snapshot is the data the responder reads. Event may be nil when no
// event is selected; the records are already filtered to that event.
type Snapshot struct {
	Event    *event.Event
	Tasks    []*event.Task
	Guests   []*event.Guest
	Budgets  []*event.Budget
	Expenses []*event.Expense
}

// Responder maps free-text input to a canned reply. It is pure: each
// call reads only the snapshot it is handed.
type Responder struct {
	Catalog  templates.Catalog
	Currency string
	Now      func() time.Time
}

// New returns a responder over the given catalog using the currency
// symbol for amounts in replies.
func New(catalog templates.Catalog, currency string) *Responder {
	return &Responder{Catalog: catalog, Currency: currency, Now: time.Now}
}

type rule struct {
	keywords []string
	reply    func(r *Responder, snap Snapshot) string
}

// Rule order is the precedence order; do not reorder.
var rules = []rule{
	{[]string{"task"}, (*Responder).taskReply},
	{[]string{"budget"}, (*Responder).budgetReply},
	{[]string{"guest"}, (*Responder).guestReply},
	{[]string{"tip", "advice"}, (*Responder).tipReply},
	{[]string{"status", "summary"}, (*Responder).statusReply},
	{[]string{"hi", "hello"}, (*Responder).helloReply},
}

// Respond produces the reply for one input. Matching is case-insensitive
// substring containment against the lowercased input. Without a selected
// event every input gets the select-an-event prompt.
func (r *Responder) Respond(input string, snap Snapshot) string {
	if snap.Event == nil {
		return noEventReply
	}

	lower := strings.ToLower(input)
	for _, rl := range rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return rl.reply(r, snap)
			}
		}
	}
	return "I can help you with tasks, budget, guests, and event status. Try asking 'What's my event status?' or 'How's my budget?'"
}

func (r *Responder) taskReply(snap Snapshot) string {
	pending := 0
	var first *event.Task
	for _, t := range snap.Tasks {
		if !t.Completed {
			pending++
			if first == nil {
				first = t
			}
		}
	}
	if pending == 0 {
		return "All your tasks are complete! Great job!"
	}
	return fmt.Sprintf("You have %d tasks pending. Time to get them done! The most urgent one is: %q", pending, first.Title)
}

func (r *Responder) budgetReply(snap Snapshot) string {
	total := 0.0
	for _, b := range snap.Budgets {
		total += b.Amount
	}
	spent := 0.0
	for _, x := range snap.Expenses {
		spent += x.Amount
	}
	return fmt.Sprintf("Your total budget is %s. You've spent %s, leaving %s remaining.",
		r.money(total), r.money(spent), r.money(total-spent))
}

func (r *Responder) guestReply(snap Snapshot) string {
	confirmed, vips := 0, 0
	for _, g := range snap.Guests {
		if g.RSVP == event.RSVPConfirmed {
			confirmed++
		}
		if g.VIP {
			vips++
		}
	}
	return fmt.Sprintf("%d guests have confirmed out of %d total guests. You have %d VIP guests.",
		confirmed, len(snap.Guests), vips)
}

func (r *Responder) tipReply(snap Snapshot) string {
	if def, ok := r.Catalog.Lookup(snap.Event.Template); ok {
		return def.Tips
	}
	return genericTip
}

func (r *Responder) statusReply(snap Snapshot) string {
	pending := 0
	for _, t := range snap.Tasks {
		if !t.Completed {
			pending++
		}
	}
	confirmed := 0
	for _, g := range snap.Guests {
		if g.RSVP == event.RSVPConfirmed {
			confirmed++
		}
	}
	total := 0.0
	for _, b := range snap.Budgets {
		total += b.Amount
	}
	spent := 0.0
	for _, x := range snap.Expenses {
		spent += x.Amount
	}
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	return fmt.Sprintf("Here's your %s summary:\n• %d tasks pending\n• %d/%d guests confirmed\n• %s spent of %s budget\n• %d days remaining",
		snap.Event.Name, pending, confirmed, len(snap.Guests),
		r.money(spent), r.money(total), snap.Event.DaysUntil(now))
}

func (r *Responder) helloReply(snap Snapshot) string {
	return fmt.Sprintf("Hello! I'm here to help with your %s event. You can ask me about tasks, budget, guests, or get general tips!",
		snap.Event.Name)
}

func (r *Responder) money(v float64) string {
	return r.Currency + strconv.FormatFloat(v, 'f', -1, 64)
}
