package event

import (
	"fmt"
	"strings"
)

// RSVP is a guest's reply status.
type RSVP string

const (
	RSVPPending   RSVP = "Pending"
	RSVPConfirmed RSVP = "Confirmed"
	RSVPDeclined  RSVP = "Declined"
)

// AllRSVPs returns the supported reply statuses.
func AllRSVPs() []RSVP {
	return []RSVP{RSVPPending, RSVPConfirmed, RSVPDeclined}
}

// ParseRSVP converts a string to an RSVP. Empty input means Pending.
func ParseRSVP(raw string) (RSVP, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return RSVPPending, nil
	case "pending":
		return RSVPPending, nil
	case "confirmed", "yes":
		return RSVPConfirmed, nil
	case "declined", "no":
		return RSVPDeclined, nil
	}
	return "", fmt.Errorf("unknown rsvp status %q", raw)
}

func (r RSVP) String() string {
	return string(r)
}
