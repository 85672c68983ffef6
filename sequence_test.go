package coreparse

import (
	"testing"

	"github.com/coregx/coreparse/span"
)

func TestMatch2(t *testing.T) {
	m, err := Parse(Match2(Str("foo"), Str("bar")), "foobarbaz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := span.Match[Pair[string, string]]{
		Source:    span.New("foobarbaz"),
		Matched:   span.New("foobar"),
		Remainder: span.At(pos(0, 6), "baz"),
		Value:     Pair[string, string]{First: "foo", Second: "bar"},
	}
	if m != want {
		t.Errorf("Match2:\n  got:  %#v\n  want: %#v", m, want)
	}
}

func TestMatch2FailFast(t *testing.T) {
	a := Str("foo")
	b := Str("bar")
	seq := Match2(a, b)

	// First member fails: exactly its error.
	_, wantErr := a.Apply(span.New("xyz"))
	_, err := Parse(seq, "xyz")
	if err.Error() != wantErr.Error() {
		t.Errorf("got %v, want %v", err, wantErr)
	}

	// Second member fails: exactly its error, computed on the first's remainder.
	_, wantErr = b.Apply(span.At(pos(0, 3), "baz"))
	_, err = Parse(seq, "foobaz")
	checkError(t, err, Expected, pos(0, 3), "bar")
	if err.Error() != wantErr.Error() {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}

func TestMatch3(t *testing.T) {
	m, err := Parse(Match3(Str("a"), Str("\n"), Str("b")), "a\nbc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Triple[string, string, string]{First: "a", Second: "\n", Third: "b"}
	if m.Value != want || m.Matched.S != "a\nb" || m.Remainder != span.At(pos(1, 1), "c") {
		t.Errorf("got %#v", m)
	}
	checkSpan(t, m)

	tests := []struct {
		input string
		at    span.Position
		desc  string
	}{
		{"x\nb", pos(0, 0), "a"},
		{"axb", pos(0, 1), "\n"},
		{"a\nx", pos(1, 0), "b"},
	}
	for _, tt := range tests {
		_, err := Parse(Match3(Str("a"), Str("\n"), Str("b")), tt.input)
		checkError(t, err, Expected, tt.at, tt.desc)
	}
}

func TestSequenceDoesNotBacktrack(t *testing.T) {
	// Repeat greedily takes every 'a', so the trailing Str("a") cannot match;
	// the sequence fails rather than giving an 'a' back.
	seq := Match2(Repeat(Str("a"), Unbounded()), Str("a"))
	_, err := Parse(seq, "aaa")
	checkError(t, err, NotEnoughRemainingInput, pos(0, 3), "")
}

func TestLeftRightSurrounded(t *testing.T) {
	l, err := Parse(Left(Str("a"), Str("b")), "abc")
	if err != nil || l.Value != "a" || l.Remainder.S != "c" {
		t.Errorf("Left = %#v, %v", l, err)
	}
	r, err := Parse(Right(Str("a"), Str("b")), "abc")
	if err != nil || r.Value != "b" || r.Matched.S != "ab" {
		t.Errorf("Right = %#v, %v", r, err)
	}
	s, err := Parse(Surrounded(Str("("), Str("x"), Str(")")), "(x)!")
	if err != nil || s.Value != "x" || s.Matched.S != "(x)" {
		t.Errorf("Surrounded = %#v, %v", s, err)
	}
	_, err = Parse(Surrounded(Str("("), Str("x"), Str(")")), "(x]")
	checkError(t, err, Expected, pos(0, 2), ")")
}
