// Package span tracks line and column positions over an immutable input
// string and produces position-annotated substrings.
//
// A Str is the text S together with the Position at which S begins in some
// root document. A Str never owns its text: every Str derived during a parse
// is a suffix region (or a prefix of one) of the same root string, and its
// Pos is always the root start advanced codepoint by codepoint over everything
// that precedes it.
//
// All types in this package are plain values. Nothing is mutated after
// creation, so Str and Match values can be freely copied and shared between
// goroutines.
package span

import (
	"strconv"
	"strings"

	"github.com/coregx/coreparse/internal/ascii"
)

// Position is a zero-based line and column in a document.
// Columns count codepoints, not bytes.
type Position struct {
	Line   int
	Column int
}

// Advance returns the position immediately after r.
//
// A newline moves to column 0 of the next line; any other codepoint moves one
// column to the right.
func (p Position) Advance(r rune) Position {
	if r == '\n' {
		return Position{Line: p.Line + 1, Column: 0}
	}
	return Position{Line: p.Line, Column: p.Column + 1}
}

// AdvanceString returns the position after every codepoint of s.
//
// The result is identical to calling Advance once per codepoint. ASCII runs
// are advanced by byte arithmetic instead of decoding.
func (p Position) AdvanceString(s string) Position {
	if ascii.IsASCII(s) {
		return p.advanceASCII(s)
	}
	i := ascii.FirstNonASCII(s)
	p = p.advanceASCII(s[:i])
	for _, r := range s[i:] {
		p = p.Advance(r)
	}
	return p
}

func (p Position) advanceASCII(s string) Position {
	nl := strings.LastIndexByte(s, '\n')
	if nl < 0 {
		return Position{Line: p.Line, Column: p.Column + len(s)}
	}
	return Position{
		Line:   p.Line + strings.Count(s, "\n"),
		Column: len(s) - nl - 1,
	}
}

// String renders the position as "line:column", zero-based.
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
