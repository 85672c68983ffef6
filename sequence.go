package coreparse

import "github.com/coregx/coreparse/span"

// Pair is the value of a two-element sequence.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// Triple is the value of a three-element sequence.
type Triple[T1, T2, T3 any] struct {
	First  T1
	Second T2
	Third  T3
}

type match2Matcher[T1, T2 any] struct {
	m1 Matcher[T1]
	m2 Matcher[T2]
}

// Match2 matches m1 then m2 on m1's remainder.
//
// The first failure is returned unchanged and nothing is retried: if m2
// fails after m1 succeeded, the sequence fails with m2's error.
func Match2[T1, T2 any](m1 Matcher[T1], m2 Matcher[T2]) Matcher[Pair[T1, T2]] {
	return &match2Matcher[T1, T2]{m1: m1, m2: m2}
}

func (s *match2Matcher[T1, T2]) Apply(input span.Str) (span.Match[Pair[T1, T2]], error) {
	r1, err := s.m1.Apply(input)
	if err != nil {
		return span.Match[Pair[T1, T2]]{}, err
	}
	r2, err := s.m2.Apply(r1.Remainder)
	if err != nil {
		return span.Match[Pair[T1, T2]]{}, err
	}
	return span.Span(input, r2.Remainder, Pair[T1, T2]{First: r1.Value, Second: r2.Value}), nil
}

type match3Matcher[T1, T2, T3 any] struct {
	m1 Matcher[T1]
	m2 Matcher[T2]
	m3 Matcher[T3]
}

// Match3 is the three-element form of Match2, evaluated left to right.
func Match3[T1, T2, T3 any](m1 Matcher[T1], m2 Matcher[T2], m3 Matcher[T3]) Matcher[Triple[T1, T2, T3]] {
	return &match3Matcher[T1, T2, T3]{m1: m1, m2: m2, m3: m3}
}

func (s *match3Matcher[T1, T2, T3]) Apply(input span.Str) (span.Match[Triple[T1, T2, T3]], error) {
	var zero span.Match[Triple[T1, T2, T3]]
	r1, err := s.m1.Apply(input)
	if err != nil {
		return zero, err
	}
	r2, err := s.m2.Apply(r1.Remainder)
	if err != nil {
		return zero, err
	}
	r3, err := s.m3.Apply(r2.Remainder)
	if err != nil {
		return zero, err
	}
	value := Triple[T1, T2, T3]{First: r1.Value, Second: r2.Value, Third: r3.Value}
	return span.Span(input, r3.Remainder, value), nil
}

// Left matches m1 then m2 and keeps m1's value.
func Left[T1, T2 any](m1 Matcher[T1], m2 Matcher[T2]) Matcher[T1] {
	return Value(Match2(m1, m2), func(p Pair[T1, T2]) T1 { return p.First })
}

// Right matches m1 then m2 and keeps m2's value.
func Right[T1, T2 any](m1 Matcher[T1], m2 Matcher[T2]) Matcher[T2] {
	return Value(Match2(m1, m2), func(p Pair[T1, T2]) T2 { return p.Second })
}

// Surrounded matches open, m, closer in order and keeps m's value.
func Surrounded[O, T, C any](open Matcher[O], m Matcher[T], closer Matcher[C]) Matcher[T] {
	return Value(Match3(open, m, closer), func(t Triple[O, T, C]) T { return t.Second })
}
