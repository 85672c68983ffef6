package coreparse

import (
	"strings"
	"testing"

	"github.com/coregx/coreparse/span"
)

func TestFuncAdapter(t *testing.T) {
	sign := Func[int](func(in span.Str) (span.Match[int], error) {
		if strings.HasPrefix(in.S, "-") {
			return span.NewMatch(in, 1, -1), nil
		}
		return span.Empty(in, 1), nil
	})

	m, err := Parse(sign, "-5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Value != -1 || m.Remainder.S != "5" {
		t.Errorf("got value %d remainder %q", m.Value, m.Remainder.S)
	}
	checkSpan(t, m)
}

func TestSkip(t *testing.T) {
	tests := []struct {
		input string
		want  span.Str
	}{
		{"foobar", span.At(pos(0, 3), "bar")},
		{"barfoo", span.New("barfoo")},
		{"", span.New("")},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Skip(Str("foo"), span.New(tt.input)); got != tt.want {
				t.Errorf("Skip(Str(foo), %q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStartsAtOrigin(t *testing.T) {
	m, err := Parse(AnyChar(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Source.Pos != pos(0, 0) {
		t.Errorf("source position = %v, want 0:0", m.Source.Pos)
	}
}

func TestAlternationPriority(t *testing.T) {
	// The first alternative wins even though the second would consume more.
	inputs := []string{"foobar", "foo", "foobarbaz"}
	a := Str("foo")
	b := Str("foobar")
	for _, input := range inputs {
		want, err := a.Apply(span.New(input))
		if err != nil {
			t.Fatalf("Str(foo) on %q: %v", input, err)
		}
		got, err := Any2(a, b).Apply(span.New(input))
		if err != nil {
			t.Fatalf("Any2 on %q: %v", input, err)
		}
		if got != want {
			t.Errorf("Any2(foo, foobar) on %q = %#v, want %#v", input, got, want)
		}
	}
}

func TestTotalMatchersNeverFail(t *testing.T) {
	inputs := []string{"", "abc", "   x", "\n\n", "123", "😀", "\xff\xfe"}
	preds := map[string]func(span.Position, rune) bool{
		"never":  func(span.Position, rune) bool { return false },
		"always": func(span.Position, rune) bool { return true },
		"digit":  func(_ span.Position, r rune) bool { return r >= '0' && r <= '9' },
		"line0":  func(p span.Position, _ rune) bool { return p.Line == 0 },
	}
	for name, pred := range preds {
		for _, input := range inputs {
			m, err := Parse(TakeWhile(pred), input)
			if err != nil {
				t.Errorf("TakeWhile(%s) on %q failed: %v", name, input, err)
				continue
			}
			checkSpan(t, m)
		}
	}
	for _, input := range inputs {
		if _, err := Parse(Multiple(Str("a"), Str(",")), input); err != nil {
			t.Errorf("Multiple on %q failed: %v", input, err)
		}
		if _, err := Parse(Optional(Str("a")), input); err != nil {
			t.Errorf("Optional on %q failed: %v", input, err)
		}
		if _, err := Parse(Whitespace(), input); err != nil {
			t.Errorf("Whitespace on %q failed: %v", input, err)
		}
	}
}

func TestSpanReconstruction(t *testing.T) {
	inputs := []string{
		"foo bar\nbaz",
		"123, 456\n 789 x",
		"héllo wörld",
		"ab\n\ncd",
		"",
	}
	word := TakeWhile1("letter", func(_ span.Position, r rune) bool { return r != ' ' && r != '\n' && r != ',' })
	list := Multiple(word, Match2(Optional(Str(",")), Whitespace()))

	for _, input := range inputs {
		m, err := Parse(list, input)
		if err != nil {
			t.Fatalf("Multiple on %q: %v", input, err)
		}
		checkSpan(t, m)

		m2, err := Parse(Repeat(AnyChar(), Unbounded()), input)
		if err != nil {
			t.Fatalf("Repeat(AnyChar) on %q: %v", input, err)
		}
		checkSpan(t, m2)
		if !m2.Remainder.IsEmpty() {
			t.Errorf("Repeat(AnyChar) left %q", m2.Remainder.S)
		}
		if m2.Remainder.Pos != span.New(input).End() {
			t.Errorf("Repeat(AnyChar) ended at %v, want %v", m2.Remainder.Pos, span.New(input).End())
		}
	}
}

func TestReparseRemainderIsMonotonic(t *testing.T) {
	matchers := map[string]Matcher[span.Str]{
		"TakeWhileIn": TakeWhileIn("ab"),
		"Matched":     Matched(Str("ab")),
		"Whitespace":  Whitespace(),
	}
	for name, m := range matchers {
		r1, err := Parse(m, "abab  cd")
		if err != nil {
			continue
		}
		r2, err := m.Apply(r1.Remainder)
		if err != nil {
			continue
		}
		if r2.Remainder.Len() > r1.Remainder.Len() {
			t.Errorf("%s: re-parse grew the remainder from %q to %q", name, r1.Remainder.S, r2.Remainder.S)
		}
		if r2.Remainder.Len() == r1.Remainder.Len() && !r2.Matched.IsEmpty() {
			t.Errorf("%s: same remainder but non-empty match", name)
		}
	}
}
