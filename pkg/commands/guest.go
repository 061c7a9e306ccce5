package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuvraj-makani/event-ease/pkg/commands/options"
	"github.com/yuvraj-makani/event-ease/pkg/runner/add"
	"github.com/yuvraj-makani/event-ease/pkg/runner/checkin"
	"github.com/yuvraj-makani/event-ease/pkg/runner/get"
	"github.com/yuvraj-makani/event-ease/pkg/runner/remove"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

func addGuest(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Manage the selected event's guest list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGuestAdd(cmd, s)
	addGuestCheckin(cmd, s)
	addGuestRm(cmd, s)
	addGuestList(cmd, s)

	topLevel.AddCommand(cmd)
}

func addGuestAdd(topLevel *cobra.Command, s *session.Session) {
	o := &options.GuestOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a guest",
		Example: `
guest add "Priya Sharma" --email=priya@example.com --rsvp=confirmed --vip
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a guest name")
			}
			o.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := add.Guest{
				Session:         s,
				Name:            o.Name,
				Email:           o.Email,
				RSVP:            o.RSVP,
				SpecialRequests: o.SpecialRequests,
				VIP:             o.VIP,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddGuestArgs(cmd, o)
	topLevel.AddCommand(cmd)
}

func addGuestCheckin(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "checkin ID",
		Short: "Mark a guest as arrived",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			r := checkin.CheckIn{Session: s, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addGuestRm(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			r := remove.Remove{Session: s, Kind: remove.Guest, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addGuestList(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the selected event's guests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := get.Get{Session: s, Kind: get.Guests}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
