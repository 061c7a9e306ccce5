package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yuvraj-makani/event-ease/pkg/commands"
	"github.com/yuvraj-makani/event-ease/pkg/config"
	"github.com/yuvraj-makani/event-ease/pkg/logging"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	sess := session.New(cfg)

	// With arguments, run one command and exit. Without, drop into the
	// shell so created events survive between commands.
	if len(os.Args) > 1 {
		root := commands.New(sess)
		root.SetArgs(os.Args[1:])
		if err := root.ExecuteContext(context.Background()); err != nil {
			os.Exit(1)
		}
		return
	}

	sess.Shell(context.Background(), os.Stdin, commands.New)
}
