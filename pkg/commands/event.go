package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuvraj-makani/event-ease/pkg/commands/options"
	"github.com/yuvraj-makani/event-ease/pkg/runner/create"
	"github.com/yuvraj-makani/event-ease/pkg/runner/get"
	"github.com/yuvraj-makani/event-ease/pkg/runner/remove"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

func addEvent(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Create, select, list, and delete events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventCreate(cmd, s)
	addEventList(cmd, s)
	addEventSelect(cmd, s)
	addEventDelete(cmd, s)

	topLevel.AddCommand(cmd)
}

func addEventCreate(topLevel *cobra.Command, s *session.Session) {
	eo := &options.EventOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event and select it",
		Example: `
event create "Annual Gala" --date=2026-09-01 --time=18:00 --template=wedding
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an event name")
			}
			eo.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := create.Create{
				Session:  s,
				Name:     eo.Name,
				Date:     eo.Date,
				Time:     eo.Time,
				Template: eo.Template,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddEventArgs(cmd, eo)

	flagName := "template"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return s.Planner.Catalog.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

func addEventList(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := get.Get{Session: s, Kind: get.Events}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addEventSelect(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "select ID",
		Short: "Select the event later commands operate on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := s.Select(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("selected %s\n", e.Name)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addEventDelete(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an event and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			r := remove.Remove{Session: s, Kind: remove.Event, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
