package pretty

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// DefaultWidth is the fallback rule width when terminal detection fails.
const DefaultWidth = 80

const ruleChar = "─"

var (
	ruleStyle  = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true)
	typeStyle  = lipgloss.NewStyle().Faint(true)
)

// TermWidth returns the width rules should render at: the COLUMNS
// environment variable when set, else the detected terminal width of
// stderr, else DefaultWidth.
func TermWidth() int {
	if v := os.Getenv("COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// Rule renders a horizontal rule of the given visual width with title
// centered in it. A non-positive width uses TermWidth.
func Rule(title string, width int) string {
	if width <= 0 {
		width = TermWidth()
	}
	if title == "" {
		return ruleStyle.Render(strings.Repeat(ruleChar, width))
	}

	label := " " + title + " "
	fill := width - runewidth.StringWidth(label)
	if fill < 2 {
		fill = 2
	}
	left := fill / 2
	right := fill - left
	return ruleStyle.Render(strings.Repeat(ruleChar, left)) +
		titleStyle.Render(label) +
		ruleStyle.Render(strings.Repeat(ruleChar, right))
}

// TypeLabel renders a dim "(typename)" annotation line.
func TypeLabel(name string) string {
	return typeStyle.Render("(" + name + ")")
}
