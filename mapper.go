package coreparse

import "github.com/coregx/coreparse/span"

type mapMatcher[T, U any] struct {
	m Matcher[T]
	f func(pos span.Position, value T) (U, error)
}

// Map applies m and transforms its value with f. pos is the start of the
// match.
//
// If f returns an error, Map fails with Expected at the start of the match
// and the error's text as the description. Failures of m itself pass through
// unchanged.
//
// Example:
//
//	digits := coreparse.TakeWhile(func(_ span.Position, r rune) bool { return r >= '0' && r <= '9' })
//	u8 := coreparse.Map(digits, func(_ span.Position, s span.Str) (uint8, error) {
//	    v, err := strconv.ParseUint(s.S, 10, 8)
//	    if err != nil {
//	        return 0, coreparse.MapErrorf("failed to parse as uint8: %v", err)
//	    }
//	    return uint8(v), nil
//	})
func Map[T, U any](m Matcher[T], f func(pos span.Position, value T) (U, error)) Matcher[U] {
	return &mapMatcher[T, U]{m: m, f: f}
}

func (p *mapMatcher[T, U]) Apply(input span.Str) (span.Match[U], error) {
	r, err := p.m.Apply(input)
	if err != nil {
		return span.Match[U]{}, err
	}
	v, err := p.f(input.Pos, r.Value)
	if err != nil {
		return span.Match[U]{}, ExpectedAt(input.Pos, "%s", err.Error())
	}
	return span.WithValue(r, v), nil
}

// Value is Map with a transform that cannot fail.
func Value[T, U any](m Matcher[T], f func(value T) U) Matcher[U] {
	return Map(m, func(_ span.Position, v T) (U, error) {
		return f(v), nil
	})
}

// Matched applies m and replaces its value with the consumed text.
//
// It is the usual way to turn a structural match (a sequence of digits, an
// optional sign, ...) into the exact source text it covered.
func Matched[T any](m Matcher[T]) Matcher[span.Str] {
	return Func[span.Str](func(input span.Str) (span.Match[span.Str], error) {
		r, err := m.Apply(input)
		if err != nil {
			return span.Match[span.Str]{}, err
		}
		return span.WithValue(r, r.Matched), nil
	})
}
