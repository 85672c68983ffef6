// Package diag renders matcher failures for humans.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/coregx/coreparse"
)

// Colors
var (
	colorError  = lipgloss.Color("#EF4444")
	colorAccent = lipgloss.Color("#F59E0B")
	colorMuted  = lipgloss.Color("#6B7280")
)

// Styles controls how each part of a diagnostic is rendered.
type Styles struct {
	Location lipgloss.Style
	Message  lipgloss.Style
	Source   lipgloss.Style
	Caret    lipgloss.Style
}

// DefaultStyles returns colored styles for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Location: lipgloss.NewStyle().
			Bold(true),
		Message: lipgloss.NewStyle().
			Foreground(colorError),
		Source: lipgloss.NewStyle().
			Foreground(colorMuted),
		Caret: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true),
	}
}

// PlainStyles returns styles that leave text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Location: plain, Message: plain, Source: plain, Caret: plain}
}

// Render formats err against the source it was produced from.
//
// A *coreparse.Error renders as three lines:
//
//	line 2, column 5: expected end of input
//	  1 +) 2
//	      ^
//
// Lines and columns are shown one-based. Any other error renders as its
// Error() text in the Message style.
func Render(source string, err error, styles Styles) string {
	var perr *coreparse.Error
	if !errors.As(err, &perr) {
		return styles.Message.Render(err.Error())
	}

	location := fmt.Sprintf("line %d, column %d:", perr.Pos.Line+1, perr.Pos.Column+1)
	header := styles.Location.Render(location) + " " + styles.Message.Render(perr.Message())

	text, ok := sourceLine(source, perr.Pos.Line)
	if !ok {
		return header
	}
	return header + "\n" +
		styles.Source.Render("  "+text) + "\n" +
		"  " + caretIndent(text, perr.Pos.Column) + styles.Caret.Render("^")
}

// sourceLine returns the zero-based line n of source without its line
// terminator.
func sourceLine(source string, n int) (string, bool) {
	for i := 0; i < n; i++ {
		idx := strings.IndexByte(source, '\n')
		if idx < 0 {
			return "", false
		}
		source = source[idx+1:]
	}
	if idx := strings.IndexByte(source, '\n'); idx >= 0 {
		source = source[:idx]
	}
	return strings.TrimSuffix(source, "\r"), true
}

// caretIndent returns whitespace as wide as the first column codepoints of
// line. Tabs are kept so the caret lines up under tab-indented source.
func caretIndent(line string, column int) string {
	var sb strings.Builder
	for _, r := range line {
		if column == 0 {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		column--
	}
	sb.WriteString(strings.Repeat(" ", column))
	return sb.String()
}
