// Package analytics computes read-only aggregates over one event's
// budgets, expenses, and guests. Every function is pure: callers pass
// the event's records and get numbers back.
package analytics

import (
	"math"

	"github.com/yuvraj-makani/event-ease/pkg/event"
)

// CategorySpend pairs a budget line with the total spent against its
// category. Matching is exact string equality: "Venue" and "venue" are
// distinct categories.
type CategorySpend struct {
	Budget *event.Budget
	Spent  float64
	// Percent is spent/amount*100, 0 for a zero budget. It is not
	// capped; displays clamp bar width but report the true value.
	Percent float64
	Over    bool
}

// Summary is the full analytics view for one event.
type Summary struct {
	TotalBudget    float64
	TotalExpenses  float64
	GuestCount     int
	CheckedIn      int
	AttendanceRate float64 // percent, one decimal
	Overspent      int
	Utilization    float64 // percent, one decimal
	Categories     []CategorySpend
}

// TotalBudget sums budget amounts.
func TotalBudget(budgets []*event.Budget) float64 {
	total := 0.0
	for _, b := range budgets {
		total += b.Amount
	}
	return total
}

// TotalExpenses sums expense amounts.
func TotalExpenses(expenses []*event.Expense) float64 {
	total := 0.0
	for _, x := range expenses {
		total += x.Amount
	}
	return total
}

// AttendanceRate is checked-in guests over all guests as a percentage,
// rounded to one decimal. Zero guests means a rate of 0.
func AttendanceRate(guests []*event.Guest) float64 {
	if len(guests) == 0 {
		return 0
	}
	checkedIn := 0
	for _, g := range guests {
		if g.CheckedIn {
			checkedIn++
		}
	}
	return round1(float64(checkedIn) / float64(len(guests)) * 100)
}

// BudgetUtilization is total expenses over total budget as a percentage,
// rounded to one decimal. A zero total budget means 0, never a division
// by zero. Values above 100 are reported as-is.
func BudgetUtilization(totalBudget, totalExpenses float64) float64 {
	if totalBudget == 0 {
		return 0
	}
	return round1(totalExpenses / totalBudget * 100)
}

// Spend computes per-budget spend lines. An expense counts toward a
// budget only when the category strings match exactly. Over means spent
// strictly exceeds the budget; spending the full amount is not over.
func Spend(budgets []*event.Budget, expenses []*event.Expense) []CategorySpend {
	out := make([]CategorySpend, 0, len(budgets))
	for _, b := range budgets {
		spent := 0.0
		for _, x := range expenses {
			if x.Category == b.Category {
				spent += x.Amount
			}
		}
		percent := 0.0
		if b.Amount > 0 {
			percent = spent / b.Amount * 100
		}
		out = append(out, CategorySpend{
			Budget:  b,
			Spent:   spent,
			Percent: percent,
			Over:    spent > b.Amount,
		})
	}
	return out
}

// OverspentCategories counts budgets whose matched expenses exceed them.
func OverspentCategories(budgets []*event.Budget, expenses []*event.Expense) int {
	count := 0
	for _, cs := range Spend(budgets, expenses) {
		if cs.Over {
			count++
		}
	}
	return count
}

// Summarize assembles the full analytics view.
func Summarize(budgets []*event.Budget, expenses []*event.Expense, guests []*event.Guest) Summary {
	totalBudget := TotalBudget(budgets)
	totalExpenses := TotalExpenses(expenses)
	categories := Spend(budgets, expenses)

	checkedIn := 0
	for _, g := range guests {
		if g.CheckedIn {
			checkedIn++
		}
	}
	overspent := 0
	for _, cs := range categories {
		if cs.Over {
			overspent++
		}
	}

	return Summary{
		TotalBudget:    totalBudget,
		TotalExpenses:  totalExpenses,
		GuestCount:     len(guests),
		CheckedIn:      checkedIn,
		AttendanceRate: AttendanceRate(guests),
		Overspent:      overspent,
		Utilization:    BudgetUtilization(totalBudget, totalExpenses),
		Categories:     categories,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
