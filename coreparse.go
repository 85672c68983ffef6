// Package coreparse provides backtracking-free, position-tracking parser
// combinators.
//
// A Matcher consumes a prefix of a positioned input string and reports either
// a typed value plus the unconsumed remainder, or an *Error anchored to the
// line and column at which matching failed. Grammars are built by composing
// small matchers:
//   - Primitives: AnyChar, SpecificChar, CharRange, OneOf, Str, TakeWhile
//   - Ordered alternation: Any2, Any3, Any4, AnyOf (first success wins)
//   - Sequencing: Match2, Match3 (fail fast)
//   - Repetition: Repeat (greedy, capped at the range maximum), Multiple
//   - Transforms: Map, Value, Matched
//
// Basic usage:
//
//	number := coreparse.Uint64()
//	list := coreparse.Multiple(number, coreparse.Str(","))
//
//	m, err := coreparse.Parse(list, "1,2,3 rest")
//	if err != nil {
//	    log.Fatal(err) // e.g. "0:0: expected ..."
//	}
//	fmt.Println(m.Value)       // [1 2 3]
//	fmt.Println(m.Remainder.S) // " rest"
//
// Alternation is PEG-style ordered choice: once a branch succeeds the others
// are never tried, and a sequence never retries an earlier member after a
// later one fails. Grammars must therefore list longer alternatives first
// where prefixes overlap.
//
// Matchers hold no mutable state. A grammar built once may be applied from
// many goroutines at the same time.
package coreparse

import (
	"github.com/coregx/coreparse/span"
)

// Matcher is anything that can match a prefix of a positioned string.
//
// Apply must be referentially transparent: equal inputs give equal outputs.
// On failure the returned error is an *Error.
type Matcher[T any] interface {
	Apply(input span.Str) (span.Match[T], error)
}

// Func adapts an ordinary function to the Matcher interface.
//
// Example:
//
//	sign := coreparse.Func[int](func(in span.Str) (span.Match[int], error) {
//	    if strings.HasPrefix(in.S, "-") {
//	        return span.NewMatch(in, 1, -1), nil
//	    }
//	    return span.Empty(in, 1), nil
//	})
type Func[T any] func(input span.Str) (span.Match[T], error)

// Apply calls f(input).
func (f Func[T]) Apply(input span.Str) (span.Match[T], error) {
	return f(input)
}

// Skip applies m and returns the remainder on success, or input unchanged on
// failure. It never reports an error.
func Skip[T any](m Matcher[T], input span.Str) span.Str {
	r, err := m.Apply(input)
	if err != nil {
		return input
	}
	return r.Remainder
}

// Parse applies m to s, starting at line 0, column 0.
//
// Leftover input is not an error; inspect Remainder or wrap m in Complete.
func Parse[T any](m Matcher[T], s string) (span.Match[T], error) {
	return m.Apply(span.New(s))
}
