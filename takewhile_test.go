package coreparse

import (
	"testing"
	"unicode"

	"github.com/coregx/coreparse/span"
)

func TestTakeWhile(t *testing.T) {
	isDigit := func(_ span.Position, r rune) bool { return unicode.IsDigit(r) }
	tests := []struct {
		input     string
		matched   string
		remainder span.Str
	}{
		{"123abc", "123", span.At(pos(0, 3), "abc")},
		{"123", "123", span.At(pos(0, 3), "")},
		{"abc", "", span.New("abc")},
		{"", "", span.New("")},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := Parse(TakeWhile(isDigit), tt.input)
			if err != nil {
				t.Fatalf("TakeWhile should never fail: %v", err)
			}
			if m.Value.S != tt.matched || m.Matched.S != tt.matched || m.Remainder != tt.remainder {
				t.Errorf("got %#v", m)
			}
			checkSpan(t, m)
		})
	}
}

func TestTakeWhilePositionAware(t *testing.T) {
	firstLine := TakeWhile(func(p span.Position, _ rune) bool { return p.Line == 0 })
	m, _ := Parse(firstLine, "ab\ncd")
	if m.Matched.S != "ab\n" || m.Remainder != span.At(pos(1, 0), "cd") {
		t.Errorf("got %#v", m)
	}
}

func TestTakeWhile1(t *testing.T) {
	letters := TakeWhile1("letter", func(_ span.Position, r rune) bool { return unicode.IsLetter(r) })

	m, err := Parse(letters, "abc1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Value.S != "abc" {
		t.Errorf("value = %q, want abc", m.Value.S)
	}

	_, err = Parse(letters, "1abc")
	checkError(t, err, Expected, pos(0, 0), "letter")

	_, err = Parse(letters, "")
	checkError(t, err, NotEnoughRemainingInput, pos(0, 0), "")
}

func TestTakeWhileIn(t *testing.T) {
	tests := []struct {
		name      string
		chars     string
		input     string
		matched   string
		remainder span.Str
	}{
		{"ascii", "01", "0110x", "0110", span.At(pos(0, 4), "x")},
		{"ascii_newline", " \n", " \n \nx", " \n \n", span.At(pos(2, 0), "x")},
		{"ascii_stops_at_utf8", "ab", "abé", "ab", span.At(pos(0, 2), "é")},
		{"unicode", "äö", "äöäx", "äöä", span.At(pos(0, 3), "x")},
		{"none", "ab", "xyz", "", span.New("xyz")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(TakeWhileIn(tt.chars), tt.input)
			if err != nil {
				t.Fatalf("TakeWhileIn should never fail: %v", err)
			}
			if m.Value.S != tt.matched || m.Remainder != tt.remainder {
				t.Errorf("got %#v", m)
			}
			checkSpan(t, m)
		})
	}
}

func TestWhitespaceAndDigits(t *testing.T) {
	m, _ := Parse(Whitespace(), " \t\n x")
	if m.Remainder != span.At(pos(1, 1), "x") {
		t.Errorf("Whitespace remainder = %#v", m.Remainder)
	}

	d, err := Parse(Digits(), "42abc")
	if err != nil || d.Value.S != "42" {
		t.Errorf("Digits = %#v, %v", d, err)
	}
	_, err = Parse(Digits(), "abc")
	checkError(t, err, Expected, pos(0, 0), "digit")
}
