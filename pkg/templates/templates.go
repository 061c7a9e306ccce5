// Package templates holds the static event template catalog. A template
// seeds a new event with a starter task list, a budget breakdown, and a
// piece of planning advice.
package templates

import (
	"sort"
	"strings"
)

// TaskSeed is one starter task. Order is preserved when seeding.
type TaskSeed struct {
	Title       string
	Description string
}

// BudgetSeed is one starter budget line.
type BudgetSeed struct {
	Category string
	Amount   float64
}

// Definition is everything a template contributes to a new event.
type Definition struct {
	Tasks   []TaskSeed
	Budgets []BudgetSeed
	Tips    string
}

// Catalog maps template names to definitions.
type Catalog map[string]Definition

// Lookup resolves a template name. A miss is "no template", not an error.
func (c Catalog) Lookup(name string) (Definition, bool) {
	def, ok := c[strings.ToLower(strings.TrimSpace(name))]
	return def, ok
}

// Names returns the catalog's template names, sorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge overlays extra definitions onto a copy of the catalog. Built-in
// names win on collision so config files cannot redefine them.
func (c Catalog) Merge(extra Catalog) Catalog {
	out := make(Catalog, len(c)+len(extra))
	for name, def := range extra {
		out[strings.ToLower(strings.TrimSpace(name))] = def
	}
	for name, def := range c {
		out[name] = def
	}
	return out
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		"wedding": {
			Tasks: []TaskSeed{
				{Title: "Finalize Guest List", Description: "Confirm all guests with family members"},
				{Title: "Book Venue", Description: "Finalize and book the wedding hall"},
				{Title: "Choose Caterer", Description: "Select menu and book catering services"},
				{Title: "Send Invitations", Description: "Send digital invites to all guests"},
			},
			Budgets: []BudgetSeed{
				{Category: "Venue", Amount: 250000},
				{Category: "Catering", Amount: 150000},
				{Category: "Decor", Amount: 100000},
				{Category: "Entertainment", Amount: 50000},
			},
			Tips: "For a wedding, budget tracking and guest management are most important. Pay attention to RSVPs and seating arrangements.",
		},
		"birthday": {
			Tasks: []TaskSeed{
				{Title: "Create Guest List", Description: "Decide who to invite to the party"},
				{Title: "Order Cake", Description: "Choose a design and order the cake"},
				{Title: "Buy Decorations", Description: "Get balloons, streamers, etc."},
				{Title: "Plan Activities", Description: "Organize games or other fun activities"},
			},
			Budgets: []BudgetSeed{
				{Category: "Food & Drinks", Amount: 15000},
				{Category: "Decorations", Amount: 5000},
				{Category: "Cake", Amount: 3000},
				{Category: "Gifts", Amount: 7000},
			},
			Tips: "For a birthday party, focus on activities and a personalized guest experience.",
		},
		"conference": {
			Tasks: []TaskSeed{
				{Title: "Finalize Speakers", Description: "Confirm speakers and their topics"},
				{Title: "Set Agenda", Description: "Create a detailed schedule for the conference"},
				{Title: "Promote Event", Description: "Market the conference on social media"},
				{Title: "Prepare Materials", Description: "Gather items for attendee welcome bags"},
			},
			Budgets: []BudgetSeed{
				{Category: "Venue", Amount: 100000},
				{Category: "Speakers", Amount: 80000},
				{Category: "Marketing", Amount: 50000},
				{Category: "Logistics", Amount: 30000},
			},
			Tips: "For a conference, the agenda and speaker logistics are crucial. Use QR check-ins to manage attendee flow efficiently.",
		},
	}
}
