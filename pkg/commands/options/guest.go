package options

import (
	"github.com/spf13/cobra"
)

// GuestOptions
type GuestOptions struct {
	Name            string
	Email           string
	RSVP            string
	SpecialRequests string
	VIP             bool
}

func AddGuestArgs(cmd *cobra.Command, o *GuestOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		`Guest email address.`)
	cmd.Flags().StringVar(&o.RSVP, "rsvp", "",
		`RSVP status: pending, confirmed, or declined. Defaults to pending.`)
	cmd.Flags().StringVar(&o.SpecialRequests, "requests", "",
		`Special requests, example: --requests="vegetarian meal".`)
	cmd.Flags().BoolVar(&o.VIP, "vip", false,
		`Mark the guest as a VIP.`)
}
