package coreparse

import (
	"unicode"

	"github.com/coregx/coreparse/internal/ascii"
	"github.com/coregx/coreparse/span"
)

type takeWhileMatcher struct {
	pred func(pos span.Position, r rune) bool
}

// TakeWhile matches the longest prefix whose codepoints all satisfy pred.
// The value is the matched text.
//
// TakeWhile never fails: when nothing matches it succeeds with a zero-width
// match and the input as remainder.
func TakeWhile(pred func(pos span.Position, r rune) bool) Matcher[span.Str] {
	return &takeWhileMatcher{pred: pred}
}

func (m *takeWhileMatcher) Apply(input span.Str) (span.Match[span.Str], error) {
	r, _ := span.TakeWhile(input, m.pred)
	return r, nil
}

type takeWhile1Matcher struct {
	description string
	pred        func(pos span.Position, r rune) bool
}

// TakeWhile1 is TakeWhile requiring at least one matching codepoint.
// It fails with Expected(description) at the start of input, or
// NotEnoughRemainingInput on empty input.
func TakeWhile1(description string, pred func(pos span.Position, r rune) bool) Matcher[span.Str] {
	return &takeWhile1Matcher{description: description, pred: pred}
}

func (m *takeWhile1Matcher) Apply(input span.Str) (span.Match[span.Str], error) {
	if input.IsEmpty() {
		return span.Match[span.Str]{}, NotEnoughInputAt(input.Pos)
	}
	r, ok := span.TakeWhile(input, m.pred)
	if !ok {
		return span.Match[span.Str]{}, ExpectedAt(input.Pos, "%s", m.description)
	}
	return r, nil
}

type tableMatcher struct {
	table *ascii.Table
}

func (m *tableMatcher) Apply(input span.Str) (span.Match[span.Str], error) {
	n := m.table.SpanIn(input.S)
	matched, remainder := input.SplitAt(n)
	return span.Match[span.Str]{
		Source:    input,
		Matched:   matched,
		Remainder: remainder,
		Value:     matched,
	}, nil
}

// TakeWhileIn is TakeWhile over membership in chars. Like TakeWhile it never
// fails. An all-ASCII set scans bytes against a table without decoding.
func TakeWhileIn(chars string) Matcher[span.Str] {
	if t, ok := ascii.NewTable(chars); ok {
		return &tableMatcher{table: t}
	}
	in := setContains(chars)
	return TakeWhile(func(_ span.Position, r rune) bool { return in(r) })
}

// Whitespace matches a possibly empty run of unicode.IsSpace codepoints.
func Whitespace() Matcher[span.Str] {
	return TakeWhile(func(_ span.Position, r rune) bool { return unicode.IsSpace(r) })
}

// Digits matches one or more ASCII decimal digits.
func Digits() Matcher[span.Str] {
	return TakeWhile1("digit", func(_ span.Position, r rune) bool { return r >= '0' && r <= '9' })
}
