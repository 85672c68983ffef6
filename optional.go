package coreparse

import "github.com/coregx/coreparse/span"

// OptionalResult is the value of Optional.
type OptionalResult[T any] struct {
	Matched bool
	Value   T
}

type optionalMatcher[T any] struct {
	m Matcher[T]
}

// Optional applies m and never fails. When m fails the result is a
// zero-width match with Matched false.
func Optional[T any](m Matcher[T]) Matcher[OptionalResult[T]] {
	return &optionalMatcher[T]{m: m}
}

func (o *optionalMatcher[T]) Apply(input span.Str) (span.Match[OptionalResult[T]], error) {
	r, err := o.m.Apply(input)
	if err != nil {
		return span.Empty(input, OptionalResult[T]{}), nil
	}
	return span.WithValue(r, OptionalResult[T]{Matched: true, Value: r.Value}), nil
}
