package coreparse

import (
	"strconv"
	"strings"

	"github.com/coregx/coreparse/internal/ascii"
	"github.com/coregx/coreparse/span"
)

type anyCharMatcher struct{}

// AnyChar matches any single codepoint.
// It fails with NotEnoughRemainingInput on empty input.
func AnyChar() Matcher[rune] {
	return anyCharMatcher{}
}

func (anyCharMatcher) Apply(input span.Str) (span.Match[rune], error) {
	m, ok := span.TakeSingleChar(input)
	if !ok {
		return span.Match[rune]{}, NotEnoughInputAt(input.Pos)
	}
	return m, nil
}

// charMatcher is AnyChar plus a check on the decoded codepoint. On a failed
// check the error is anchored at the start of input.
type charMatcher struct {
	want  string
	check func(r rune) bool
}

func (c *charMatcher) Apply(input span.Str) (span.Match[rune], error) {
	m, ok := span.TakeSingleChar(input)
	if !ok {
		return span.Match[rune]{}, NotEnoughInputAt(input.Pos)
	}
	if !c.check(m.Value) {
		return span.Match[rune]{}, ExpectedAt(input.Pos, "%s, got %s", c.want, strconv.QuoteRune(m.Value))
	}
	return m, nil
}

// SpecificChar matches exactly the codepoint want.
//
// Example:
//
//	m, err := coreparse.Parse(coreparse.SpecificChar('a'), "b")
//	// err: "0:0: expected 'a', got 'b'"
func SpecificChar(want rune) Matcher[rune] {
	return &charMatcher{
		want:  strconv.QuoteRune(want),
		check: func(r rune) bool { return r == want },
	}
}

// CharRange matches a single codepoint in the inclusive range [lo, hi].
// The bounds are swapped if given in reverse.
func CharRange(lo, hi rune) Matcher[rune] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &charMatcher{
		want:  "[" + strconv.QuoteRune(lo) + "-" + strconv.QuoteRune(hi) + "]",
		check: func(r rune) bool { return r >= lo && r <= hi },
	}
}

// CharFunc matches a single codepoint for which pred holds. description names
// the expected class in error messages.
func CharFunc(description string, pred func(r rune) bool) Matcher[rune] {
	return &charMatcher{want: description, check: pred}
}

// OneOf matches a single codepoint contained in chars.
func OneOf(chars string) Matcher[rune] {
	return &charMatcher{
		want:  "one of " + strconv.Quote(chars),
		check: setContains(chars),
	}
}

// NoneOf matches a single codepoint not contained in chars.
func NoneOf(chars string) Matcher[rune] {
	in := setContains(chars)
	return &charMatcher{
		want:  "none of " + strconv.Quote(chars),
		check: func(r rune) bool { return !in(r) },
	}
}

// setContains returns a membership test for the codepoints of chars. ASCII
// sets use a byte table.
func setContains(chars string) func(r rune) bool {
	if t, ok := ascii.NewTable(chars); ok {
		return func(r rune) bool {
			return r < 0x80 && t.Contains(byte(r))
		}
	}
	return func(r rune) bool {
		return strings.ContainsRune(chars, r)
	}
}
