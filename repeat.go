package coreparse

import (
	"strconv"

	"github.com/coregx/coreparse/span"
)

// Range is an occurrence count range for Repeat.
//
// The zero Range is Unbounded. Use the constructors to build others.
type Range struct {
	min     int
	max     int
	bounded bool
}

// Unbounded allows any number of occurrences (Rust notation "..").
func Unbounded() Range {
	return Range{}
}

// AtLeast allows n or more occurrences ("n..").
func AtLeast(n int) Range {
	return Range{min: max(n, 0)}
}

// AtMost allows at most n occurrences, inclusive ("..=n").
func AtMost(n int) Range {
	return Range{max: max(n, 0), bounded: true}
}

// LessThan allows fewer than n occurrences ("..n").
// LessThan(0) admits no count at all.
func LessThan(n int) Range {
	return Range{max: n - 1, bounded: true}
}

// Inclusive allows lo through hi occurrences ("lo..=hi").
// The bounds are swapped if given in reverse.
func Inclusive(lo, hi int) Range {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{min: max(lo, 0), max: hi, bounded: true}
}

// Exactly allows exactly n occurrences ("n..=n").
func Exactly(n int) Range {
	return Inclusive(n, n)
}

// Contains reports whether n occurrences satisfy the range.
func (r Range) Contains(n int) bool {
	if n < r.min {
		return false
	}
	return !r.bounded || n <= r.max
}

// String renders the range in Rust range notation.
func (r Range) String() string {
	lo := ""
	if r.min > 0 {
		lo = strconv.Itoa(r.min)
	}
	if !r.bounded {
		return lo + ".."
	}
	return lo + "..=" + strconv.Itoa(r.max)
}

type repeatMatcher[T any] struct {
	m     Matcher[T]
	count Range
}

// Repeat applies m repeatedly, collecting values, until the count satisfies
// r and one more would not, or until m fails.
//
// Repetition is greedy but never goes past the range maximum, and m is not
// applied once the maximum is reached. Accepted repetitions are never given
// back. If the final count is outside r, Repeat fails with the error from the
// attempt that could not extend the sequence.
//
// A zero-width success ends the repetition as soon as the count is within r,
// so an always-succeeding m cannot loop forever.
//
// Example:
//
//	m := coreparse.Repeat(coreparse.Str("foo"), coreparse.Inclusive(2, 3))
//	r, _ := coreparse.Parse(m, "foofoofoofoobar")
//	fmt.Println(r.Value, r.Remainder.S) // [foo foo foo] foobar
func Repeat[T any](m Matcher[T], r Range) Matcher[[]T] {
	return &repeatMatcher[T]{m: m, count: r}
}

func (p *repeatMatcher[T]) Apply(input span.Str) (span.Match[[]T], error) {
	remaining := input
	var results []T
	var lastErr error

	for {
		n := len(results)
		if p.count.Contains(n) && !p.count.Contains(n+1) || p.count.bounded && n > p.count.max {
			break
		}
		r, err := p.m.Apply(remaining)
		if err != nil {
			lastErr = err
			break
		}
		results = append(results, r.Value)
		remaining = r.Remainder
		if r.Matched.IsEmpty() && p.count.Contains(len(results)) {
			break
		}
	}

	if !p.count.Contains(len(results)) {
		if lastErr == nil {
			lastErr = NotEnoughInputAt(remaining.Pos)
		}
		return span.Match[[]T]{}, lastErr
	}
	if results == nil {
		results = []T{}
	}
	return span.Span(input, remaining, results), nil
}
