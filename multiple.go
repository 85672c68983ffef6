package coreparse

import "github.com/coregx/coreparse/span"

type multipleMatcher[T, S any] struct {
	m         Matcher[T]
	separator Matcher[S]
}

// Multiple matches a possibly empty list of m, with an optional separator
// before each element after the first.
//
// Multiple never fails. If m fails at the start it returns an empty list
// matching nothing. Otherwise it repeatedly skips a separator (if present)
// and applies m, stopping at the first failure of m. A separator that is not
// followed by an element is left unconsumed.
//
// Example:
//
//	list := coreparse.Multiple(coreparse.Uint32(), coreparse.Str(","))
//	r, _ := coreparse.Parse(list, "1,2,3,x")
//	fmt.Println(r.Value, r.Remainder.S) // [1 2 3] ,x
func Multiple[T, S any](m Matcher[T], separator Matcher[S]) Matcher[[]T] {
	return &multipleMatcher[T, S]{m: m, separator: separator}
}

func (p *multipleMatcher[T, S]) Apply(input span.Str) (span.Match[[]T], error) {
	first, err := p.m.Apply(input)
	if err != nil {
		return span.Empty(input, []T{}), nil
	}
	results := []T{first.Value}
	remaining := first.Remainder
	for {
		r, err := p.m.Apply(Skip(p.separator, remaining))
		if err != nil {
			break
		}
		// A zero-width element with no separator consumed would repeat forever.
		if r.Remainder.Len() == remaining.Len() {
			break
		}
		results = append(results, r.Value)
		remaining = r.Remainder
	}
	return span.Span(input, remaining, results), nil
}
