package coreparse

import (
	"strings"

	"github.com/coregx/coreparse/span"
)

type strMatcher struct {
	literal string
}

// Str matches the exact literal text. The value is the matched text.
//
// On mismatch the error is Expected at the start of input with the literal as
// its description; on empty input it is NotEnoughRemainingInput.
//
// Example:
//
//	m, _ := coreparse.Parse(coreparse.Str("foo"), "foobar")
//	fmt.Println(m.Value, m.Remainder.S) // foo bar
func Str(literal string) Matcher[string] {
	return &strMatcher{literal: literal}
}

func (m *strMatcher) Apply(input span.Str) (span.Match[string], error) {
	if !strings.HasPrefix(input.S, m.literal) {
		if input.IsEmpty() {
			return span.Match[string]{}, NotEnoughInputAt(input.Pos)
		}
		return span.Match[string]{}, ExpectedAt(input.Pos, "%s", m.literal)
	}
	n := len(m.literal)
	return span.NewMatch(input, n, input.S[:n]), nil
}
