package coreparse

import (
	"strings"

	"github.com/coregx/coreparse/span"
)

// anyMatcher is ordered choice over alternatives that share a value type.
type anyMatcher[T any] struct {
	alternatives []Matcher[T]
}

func (a *anyMatcher[T]) Apply(input span.Str) (span.Match[T], error) {
	errs := make([]string, 0, len(a.alternatives))
	for _, m := range a.alternatives {
		r, err := m.Apply(input)
		if err == nil {
			return r, nil
		}
		errs = append(errs, err.Error())
	}
	return span.Match[T]{}, ExpectedAt(input.Pos, "one of [%s]", strings.Join(errs, ", "))
}

// Any2 tries m1, then m2, each on the original input, and returns the first
// success. Later alternatives are not tried once one succeeds, even if they
// would consume more input.
//
// If both fail, the error is Expected at the start of input and its
// description lists both sub-errors: "one of [<err1>, <err2>]".
//
// Example:
//
//	m := coreparse.Any2(coreparse.Str("foo"), coreparse.Str("foobar"))
//	r, _ := coreparse.Parse(m, "foobar")
//	fmt.Println(r.Value) // foo
func Any2[T any](m1, m2 Matcher[T]) Matcher[T] {
	return &anyMatcher[T]{alternatives: []Matcher[T]{m1, m2}}
}

// Any3 is the three-way form of Any2.
func Any3[T any](m1, m2, m3 Matcher[T]) Matcher[T] {
	return &anyMatcher[T]{alternatives: []Matcher[T]{m1, m2, m3}}
}

// Any4 is the four-way form of Any2.
func Any4[T any](m1, m2, m3, m4 Matcher[T]) Matcher[T] {
	return &anyMatcher[T]{alternatives: []Matcher[T]{m1, m2, m3, m4}}
}

// AnyOf is Any2 over any number of alternatives. With no alternatives it
// always fails.
func AnyOf[T any](ms ...Matcher[T]) Matcher[T] {
	alternatives := make([]Matcher[T], len(ms))
	copy(alternatives, ms)
	return &anyMatcher[T]{alternatives: alternatives}
}
