package coreparse

import "github.com/coregx/coreparse/span"

type endMatcher struct{}

// End succeeds with a zero-width match only when no input remains.
func End() Matcher[struct{}] {
	return endMatcher{}
}

func (endMatcher) Apply(input span.Str) (span.Match[struct{}], error) {
	if !input.IsEmpty() {
		return span.Match[struct{}]{}, ExpectedAt(input.Pos, "end of input")
	}
	return span.Empty(input, struct{}{}), nil
}

// Succeed always succeeds with a zero-width match and value v.
func Succeed[T any](v T) Matcher[T] {
	return Func[T](func(input span.Str) (span.Match[T], error) {
		return span.Empty(input, v), nil
	})
}

// Complete applies m and then requires that no input remains.
func Complete[T any](m Matcher[T]) Matcher[T] {
	return Left(m, End())
}
