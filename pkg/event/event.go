package event

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	// DateLayout is the calendar-date form used everywhere in the planner.
	DateLayout = "2006-01-02"
	// TimeLayout is the local time-of-day form for event start times.
	TimeLayout = "15:04"
)

// NewID returns a fresh opaque identifier. IDs are never reused or mutated.
func NewID() string {
	return uuid.NewString()
}

// Event is the root entity. Every other record points back at it through
// EventID and is removed with it when the event is deleted.
type Event struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Template string `json:"template,omitempty"`
}

// DaysUntil reports whole days remaining until the event date, rounding up.
// The result goes negative once the date has passed; callers display it as-is.
func (e *Event) DaysUntil(now time.Time) int {
	d, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return 0
	}
	return int(math.Ceil(d.Sub(now).Hours() / 24))
}

// Task is a to-do item owned by one event.
type Task struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Completed   bool   `json:"completed"`
}

// Guest is an invitee owned by one event. CheckedIn only ever transitions
// false to true within a session.
type Guest struct {
	ID              string `json:"id"`
	EventID         string `json:"eventId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	RSVP            RSVP   `json:"rsvp"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	VIP             bool   `json:"isVIP"`
	CheckedIn       bool   `json:"isCheckedIn"`
}

// Budget is a planned spend for one free-text category. Categories are
// matched against expenses by exact string equality.
type Budget struct {
	ID       string  `json:"id"`
	EventID  string  `json:"eventId"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Expense is a recorded spend. It is attributed to a budget only by its
// category string; deleting the budget leaves the expense behind and it
// still counts toward totals.
type Expense struct {
	ID          string  `json:"id"`
	EventID     string  `json:"eventId"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
