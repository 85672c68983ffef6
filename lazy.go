package coreparse

import (
	"sync"

	"github.com/coregx/coreparse/span"
)

type lazyMatcher[T any] struct {
	once  sync.Once
	build func() Matcher[T]
	m     Matcher[T]
}

// Lazy defers building a matcher until its first use, so a grammar can refer
// to a rule before the rule is defined. build runs exactly once and must not
// apply the matcher it is building.
//
// Example:
//
//	var expr coreparse.Matcher[int]
//	parens := coreparse.Surrounded(coreparse.Str("("),
//	    coreparse.Lazy(func() coreparse.Matcher[int] { return expr }),
//	    coreparse.Str(")"))
//	expr = coreparse.Any2(parens, coreparse.Value(coreparse.Str("x"), func(string) int { return 1 }))
func Lazy[T any](build func() Matcher[T]) Matcher[T] {
	return &lazyMatcher[T]{build: build}
}

func (l *lazyMatcher[T]) Apply(input span.Str) (span.Match[T], error) {
	l.once.Do(func() {
		l.m = l.build()
	})
	return l.m.Apply(input)
}
