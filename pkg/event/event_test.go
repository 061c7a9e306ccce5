package event_test

import (
	"testing"
	"time"

	"github.com/yuvraj-makani/event-ease/pkg/event"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		date string
		want int
	}{
		{"2026-09-01", 7},  // partial days round up
		{"2026-08-26", 1},
		{"2026-08-25", 0},
		{"2026-08-20", -5}, // past dates go negative
		{"not-a-date", 0},
	}
	for _, tc := range tests {
		e := &event.Event{Date: tc.date}
		if got := e.DaysUntil(now); got != tc.want {
			t.Errorf("DaysUntil(%q) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestParseRSVP(t *testing.T) {
	tests := []struct {
		raw  string
		want event.RSVP
	}{
		{"", event.RSVPPending},
		{"pending", event.RSVPPending},
		{"Confirmed", event.RSVPConfirmed},
		{"yes", event.RSVPConfirmed},
		{" DECLINED ", event.RSVPDeclined},
		{"no", event.RSVPDeclined},
	}
	for _, tc := range tests {
		got, err := event.ParseRSVP(tc.raw)
		if err != nil {
			t.Errorf("ParseRSVP(%q): %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRSVP(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}

	if _, err := event.ParseRSVP("maybe"); err == nil {
		t.Error("expected an error for an unknown status")
	}
}
