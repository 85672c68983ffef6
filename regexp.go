package coreparse

import (
	"github.com/coregx/coregex"
	"github.com/coregx/coreparse/span"
)

type regexpMatcher struct {
	re      *coregex.Regex
	pattern string
}

// Regexp builds a matcher for a regular expression anchored at the start of
// the input. The value is the matched text.
//
// Syntax is Go's RE2 syntax. The pattern is compiled once; matching is
// linear in the input consumed and never backtracks.
//
// Example:
//
//	ident := coreparse.MustRegexp(`[A-Za-z_][A-Za-z0-9_]*`)
//	r, _ := coreparse.Parse(ident, "foo_1 = 2")
//	fmt.Println(r.Value.S) // foo_1
func Regexp(pattern string) (Matcher[span.Str], error) {
	// The pattern must also parse on its own, so `a)|(b` is rejected.
	if _, err := coregex.Compile(pattern); err != nil {
		return nil, err
	}
	re, err := coregex.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	return &regexpMatcher{re: re, pattern: pattern}, nil
}

// MustRegexp is like Regexp but panics if the pattern does not compile.
func MustRegexp(pattern string) Matcher[span.Str] {
	m, err := Regexp(pattern)
	if err != nil {
		panic("coreparse: Regexp(`" + pattern + "`): " + err.Error())
	}
	return m
}

func (m *regexpMatcher) Apply(input span.Str) (span.Match[span.Str], error) {
	loc := m.re.FindStringIndex(input.S)
	if loc == nil || loc[0] != 0 {
		if input.IsEmpty() {
			return span.Match[span.Str]{}, NotEnoughInputAt(input.Pos)
		}
		return span.Match[span.Str]{}, ExpectedAt(input.Pos, "/%s/", m.pattern)
	}
	r := span.NewMatch(input, loc[1], span.Str{})
	r.Value = r.Matched
	return r, nil
}
