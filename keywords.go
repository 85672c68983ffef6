package coreparse

import (
	"errors"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/coreparse/span"
)

// keywordsMatcher matches one of a fixed set of literals at the start of the
// input using an Aho-Corasick automaton. The automaton only ever sees a
// window no longer than the longest keyword, so a miss costs O(maxLen)
// regardless of input length. Every keyword occurring in the window is
// reported, and among those starting at offset 0 the lowest pattern id wins.
type keywordsMatcher struct {
	auto        *ahocorasick.Automaton
	maxLen      int
	description string
}

// Keywords builds a matcher for any of words at the start of the input. The
// value is the matched keyword.
//
// For large keyword sets this is much cheaper than AnyOf over Str matchers,
// and it matches the same way: when several keywords match at the start, the
// one listed first wins, even if a later one is longer.
//
// Returns an error if words is empty or contains an empty keyword.
//
// Example:
//
//	kw, err := coreparse.Keywords("if", "else", "while", "return")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, _ := coreparse.Parse(kw, "while (x)")
//	fmt.Println(r.Value) // while
func Keywords(words ...string) (Matcher[string], error) {
	if len(words) == 0 {
		return nil, errors.New("coreparse: no keywords")
	}
	builder := ahocorasick.NewBuilder()
	maxLen := 0
	for _, w := range words {
		if w == "" {
			return nil, errors.New("coreparse: empty keyword")
		}
		builder.AddPattern([]byte(w))
		maxLen = max(maxLen, len(w))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &keywordsMatcher{
		auto:        auto,
		maxLen:      maxLen,
		description: "one of keywords [" + strings.Join(words, ", ") + "]",
	}, nil
}

// MustKeywords is like Keywords but panics on error.
func MustKeywords(words ...string) Matcher[string] {
	m, err := Keywords(words...)
	if err != nil {
		panic("coreparse: Keywords(" + strings.Join(words, ", ") + "): " + err.Error())
	}
	return m
}

func (k *keywordsMatcher) Apply(input span.Str) (span.Match[string], error) {
	if input.IsEmpty() {
		return span.Match[string]{}, NotEnoughInputAt(input.Pos)
	}
	window := input.S[:min(len(input.S), k.maxLen)]
	best, end := -1, 0
	for _, m := range k.auto.FindAllOverlapping([]byte(window)) {
		if m.Start == 0 && (best < 0 || m.PatternID < best) {
			best, end = m.PatternID, m.End
		}
	}
	if best < 0 {
		return span.Match[string]{}, ExpectedAt(input.Pos, "%s", k.description)
	}
	return span.NewMatch(input, end, input.S[:end]), nil
}
