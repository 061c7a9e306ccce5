package analytics_test

import (
	"testing"

	"github.com/yuvraj-makani/event-ease/pkg/analytics"
	"github.com/yuvraj-makani/event-ease/pkg/event"
)

func guests(states ...bool) []*event.Guest {
	out := make([]*event.Guest, 0, len(states))
	for _, checkedIn := range states {
		out = append(out, &event.Guest{CheckedIn: checkedIn})
	}
	return out
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name   string
		guests []*event.Guest
		want   float64
	}{
		{"no guests", nil, 0},
		{"one of three", guests(true, false, false), 33.3},
		{"two of three", guests(true, true, false), 66.7},
		{"everyone", guests(true, true), 100},
	}
	for _, tc := range tests {
		if got := analytics.AttendanceRate(tc.guests); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBudgetUtilization(t *testing.T) {
	tests := []struct {
		name          string
		budget, spent float64
		want          float64
	}{
		{"zero budget", 0, 500, 0},
		{"quarter", 1000, 250, 25},
		{"third", 3000, 1000, 33.3},
		{"over", 1000, 1500, 150},
	}
	for _, tc := range tests {
		if got := analytics.BudgetUtilization(tc.budget, tc.spent); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSpendMatchesCategoriesExactly(t *testing.T) {
	budgets := []*event.Budget{
		{ID: "b1", Category: "Venue", Amount: 1000},
		{ID: "b2", Category: "venue", Amount: 500},
	}
	expenses := []*event.Expense{
		{Category: "Venue", Amount: 300},
		{Category: "venue", Amount: 600},
		{Category: " Venue", Amount: 50},
	}

	got := analytics.Spend(budgets, expenses)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0].Spent != 300 {
		t.Errorf("Venue: got %v spent, want 300 (case and whitespace are significant)", got[0].Spent)
	}
	if got[1].Spent != 600 || !got[1].Over {
		t.Errorf("venue: got %v spent over=%v, want 600 over=true", got[1].Spent, got[1].Over)
	}
}

func TestSpendingExactlyTheBudgetIsNotOver(t *testing.T) {
	budgets := []*event.Budget{{Category: "Cake", Amount: 100}}
	expenses := []*event.Expense{{Category: "Cake", Amount: 100}}

	got := analytics.Spend(budgets, expenses)
	if got[0].Over {
		t.Error("spending the full amount must not count as over")
	}
	if got[0].Percent != 100 {
		t.Errorf("got %v percent, want 100", got[0].Percent)
	}
}

func TestZeroBudgetPercent(t *testing.T) {
	budgets := []*event.Budget{{Category: "Misc", Amount: 0}}
	expenses := []*event.Expense{{Category: "Misc", Amount: 10}}

	got := analytics.Spend(budgets, expenses)
	if got[0].Percent != 0 {
		t.Errorf("got %v percent for a zero budget, want 0", got[0].Percent)
	}
	if !got[0].Over {
		t.Error("any spend against a zero budget is over")
	}
}

func TestSummarize(t *testing.T) {
	budgets := []*event.Budget{
		{Category: "Venue", Amount: 1000},
		{Category: "Food", Amount: 500},
	}
	expenses := []*event.Expense{
		{Category: "Venue", Amount: 1200},
		{Category: "Food", Amount: 100},
		{Category: "Orphaned", Amount: 50},
	}
	sum := analytics.Summarize(budgets, expenses, guests(true, false))

	if sum.TotalBudget != 1500 {
		t.Errorf("total budget: got %v, want 1500", sum.TotalBudget)
	}
	if sum.TotalExpenses != 1350 {
		t.Errorf("total expenses: got %v, want 1350 (orphans still count)", sum.TotalExpenses)
	}
	if sum.Overspent != 1 {
		t.Errorf("overspent: got %d, want 1", sum.Overspent)
	}
	if sum.Utilization != 90 {
		t.Errorf("utilization: got %v, want 90", sum.Utilization)
	}
	if sum.AttendanceRate != 50 {
		t.Errorf("attendance: got %v, want 50", sum.AttendanceRate)
	}
	if sum.GuestCount != 2 || sum.CheckedIn != 1 {
		t.Errorf("guests: got %d/%d, want 1/2", sum.CheckedIn, sum.GuestCount)
	}
}
