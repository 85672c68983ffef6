package span

import "unicode/utf8"

// Match is the result of a successful match.
//
// Invariants:
//   - Source is the input the matcher was given
//   - Matched.S + Remainder.S == Source.S
//   - Remainder.Pos is Matched.Pos advanced over Matched.S
//
// Value is the matcher's typed result and need not be related to the matched
// text.
type Match[T any] struct {
	Source    Str
	Matched   Str
	Remainder Str
	Value     T
}

// NewMatch builds a match that consumed the first n bytes of source.
func NewMatch[T any](source Str, n int, value T) Match[T] {
	matched, remainder := source.SplitAt(n)
	return Match[T]{
		Source:    source,
		Matched:   matched,
		Remainder: remainder,
		Value:     value,
	}
}

// Empty builds a zero-width match: nothing consumed, Remainder == source.
func Empty[T any](source Str, value T) Match[T] {
	return Match[T]{
		Source:    source,
		Matched:   Str{Pos: source.Pos},
		Remainder: source,
		Value:     value,
	}
}

// Span builds a match from source through remainder, where remainder is a
// suffix of source. Combinators use it to cover the text consumed by a
// chain of sub-matches.
func Span[T any](source, remainder Str, value T) Match[T] {
	return Match[T]{
		Source:    source,
		Matched:   Between(source, remainder),
		Remainder: remainder,
		Value:     value,
	}
}

// WithValue returns m with its value replaced by v.
func WithValue[T, U any](m Match[T], v U) Match[U] {
	return Match[U]{
		Source:    m.Source,
		Matched:   m.Matched,
		Remainder: m.Remainder,
		Value:     v,
	}
}

// TakeSingleChar splits off the first codepoint of s.
// It returns false if s is empty.
func TakeSingleChar(s Str) (Match[rune], bool) {
	if len(s.S) == 0 {
		return Match[rune]{}, false
	}
	r, size := utf8.DecodeRuneInString(s.S)
	return Match[rune]{
		Source:    s,
		Matched:   Str{Pos: s.Pos, S: s.S[:size]},
		Remainder: Str{Pos: s.Pos.Advance(r), S: s.S[size:]},
		Value:     r,
	}, true
}

// TakeWhile scans codepoints from the start of s while pred holds.
//
// The returned match's value is the matched prefix. The boolean is false when
// zero codepoints matched; the match is then zero-width with Remainder == s.
// pred is called with the position of each codepoint it inspects, including
// the first one it rejects.
func TakeWhile(s Str, pred func(pos Position, r rune) bool) (Match[Str], bool) {
	pos := s.Pos
	i := 0
	for i < len(s.S) {
		r, size := utf8.DecodeRuneInString(s.S[i:])
		if !pred(pos, r) {
			break
		}
		pos = pos.Advance(r)
		i += size
	}
	if i == 0 {
		return Empty(s, Str{Pos: s.Pos}), false
	}
	matched := Str{Pos: s.Pos, S: s.S[:i]}
	return Match[Str]{
		Source:    s,
		Matched:   matched,
		Remainder: Str{Pos: pos, S: s.S[i:]},
		Value:     matched,
	}, true
}

// SkipWhile returns the remainder of s after the longest prefix for which
// pred holds.
func SkipWhile(s Str, pred func(pos Position, r rune) bool) Str {
	m, _ := TakeWhile(s, pred)
	return m.Remainder
}
