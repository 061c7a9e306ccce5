package printers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const barWidth = 30

// PrettyPrint renders titles, notices, and progress bars for the shell.
type PrettyPrint struct {
	Currency string
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	switch count {
	case 1:
		_, _ = c.Printf(" - %d %s\n", count, noun)
	default:
		_, _ = c.Printf(" - %d %ss\n", count, noun)
	}
}

// None marks an empty collection.
func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Notice prints a dim informational line.
func (pp *PrettyPrint) Notice(format string, a ...interface{}) {
	f := color.New(color.Faint)
	_, _ = f.Printf(format+"\n", a...)
}

// Warn prints a yellow caution line.
func (pp *PrettyPrint) Warn(format string, a ...interface{}) {
	y := color.New(color.FgHiYellow)
	_, _ = y.Printf(format+"\n", a...)
}

// Money formats an amount with the configured currency symbol.
func (pp *PrettyPrint) Money(v float64) string {
	return pp.Currency + strconv.FormatFloat(v, 'f', -1, 64)
}

// Bar prints a labeled progress bar. The drawn width is clamped at 100%
// but the label always carries the true percentage, even above 100.
func (pp *PrettyPrint) Bar(label string, percent float64, over bool) {
	clamped := percent
	if clamped > 100 {
		clamped = 100
	}
	if clamped < 0 {
		clamped = 0
	}
	filled := int(clamped / 100 * barWidth)

	fill := color.New(color.FgGreen)
	if over {
		fill = color.New(color.FgRed)
	}
	faint := color.New(color.Faint)

	fmt.Printf("%-20s ", label)
	_, _ = fill.Print(strings.Repeat("█", filled))
	_, _ = faint.Print(strings.Repeat("░", barWidth-filled))
	fmt.Printf(" %.1f%%\n", percent)
}
