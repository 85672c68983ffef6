package span

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// Str is a positioned view of text: S begins at Pos in the root document.
//
// Str values are cheap to copy and must be treated as immutable. Matchers
// derive new Str values by slicing S and advancing Pos, never by editing an
// existing one.
type Str struct {
	Pos Position
	S   string
}

// New returns a Str over s starting at line 0, column 0.
func New(s string) Str {
	return Str{S: s}
}

// At returns a Str over s starting at pos.
func At(pos Position, s string) Str {
	return Str{Pos: pos, S: s}
}

// Len returns the length of the text in bytes.
func (s Str) Len() int {
	return len(s.S)
}

// IsEmpty reports whether no text remains.
func (s Str) IsEmpty() bool {
	return len(s.S) == 0
}

// String returns the text.
func (s Str) String() string {
	return s.S
}

// GoString renders the Str with its position, for test failure output.
func (s Str) GoString() string {
	return fmt.Sprintf("span.Str{Pos: %v, S: %q}", s.Pos, s.S)
}

// End returns the position just past the last codepoint of s.
func (s Str) End() Position {
	return s.Pos.AdvanceString(s.S)
}

// SplitAt splits s at byte offset n. The tail's position is the head's
// position advanced over the head's text.
//
// n must lie on a codepoint boundary within [0, len(s.S)].
func (s Str) SplitAt(n int) (head, tail Str) {
	head = Str{Pos: s.Pos, S: s.S[:n]}
	tail = Str{Pos: s.Pos.AdvanceString(head.S), S: s.S[n:]}
	return head, tail
}

// Char is a single decoded codepoint of a Str.
type Char struct {
	// Pos is the position of the codepoint itself.
	Pos Position
	// Offset is the byte offset of the codepoint within the Str's text.
	Offset int
	// Size is the encoded length in bytes.
	Size int
	Rune rune
}

// Chars iterates over the codepoints of s in order, with their positions.
//
// Invalid UTF-8 decodes as utf8.RuneError, one byte at a time.
func (s Str) Chars() iter.Seq[Char] {
	return func(yield func(Char) bool) {
		pos := s.Pos
		for i := 0; i < len(s.S); {
			r, size := utf8.DecodeRuneInString(s.S[i:])
			if !yield(Char{Pos: pos, Offset: i, Size: size, Rune: r}) {
				return
			}
			pos = pos.Advance(r)
			i += size
		}
	}
}

// Between returns the prefix of source that precedes remainder.
//
// remainder must be a suffix of source.
func Between(source, remainder Str) Str {
	return Str{Pos: source.Pos, S: source.S[:len(source.S)-len(remainder.S)]}
}
