package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Shell runs the read-eval loop. Each line is split shell-style and
// dispatched through a fresh command tree so flag state never leaks
// between lines. The loop exits on EOF or "exit"/"quit".
func (s *Session) Shell(ctx context.Context, in io.Reader, newRoot func(*Session) *cobra.Command) {
	prompt := color.New(color.FgMagenta, color.Bold)
	scanner := bufio.NewScanner(in)

	fmt.Println("EventEase planning shell. Type 'help' for commands, 'exit' to leave.")
	for {
		name := "no event"
		if e, ok := s.Selected(); ok {
			name = e.Name
		}
		_, _ = prompt.Printf("eventease (%s)> ", name)

		if !scanner.Scan() {
			fmt.Println("")
			return
		}
		args := SplitLine(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		case "help":
			args = []string{"--help"}
		}

		root := newRoot(s)
		root.SetArgs(args)
		if err := root.ExecuteContext(ctx); err != nil {
			// cobra already printed it; keep the loop alive.
			continue
		}
	}
}

// SplitLine breaks a shell line into arguments. Double and single quotes
// group words; there is no escape handling beyond that.
func SplitLine(line string) []string {
	var args []string
	var cur strings.Builder
	inWord := false
	var quote rune

	flush := func() {
		if inWord {
			args = append(args, cur.String())
			cur.Reset()
			inWord = false
		}
	}

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			flush()
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	flush()
	return args
}
