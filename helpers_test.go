package coreparse

import (
	"errors"
	"testing"

	"github.com/coregx/coreparse/span"
)

func pos(line, column int) span.Position {
	return span.Position{Line: line, Column: column}
}

// checkError asserts err is an *Error of the given kind, position and
// description.
func checkError(t *testing.T, err error, kind ErrorKind, at span.Position, description string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error at %v, got nil", kind, at)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v (%T) is not an *Error", err, err)
	}
	if e.Kind != kind || e.Pos != at || e.Description != description {
		t.Errorf("error mismatch:\n  got:  %v %v %q\n  want: %v %v %q",
			e.Kind, e.Pos, e.Description, kind, at, description)
	}
}

// checkSpan asserts the reconstruction invariants of a successful match.
func checkSpan[T any](t *testing.T, m span.Match[T]) {
	t.Helper()
	if m.Matched.S+m.Remainder.S != m.Source.S {
		t.Errorf("matched %q + remainder %q != source %q", m.Matched.S, m.Remainder.S, m.Source.S)
	}
	if m.Matched.Pos != m.Source.Pos {
		t.Errorf("matched position %v != source position %v", m.Matched.Pos, m.Source.Pos)
	}
	if want := m.Matched.Pos.AdvanceString(m.Matched.S); m.Remainder.Pos != want {
		t.Errorf("remainder position %v, want %v", m.Remainder.Pos, want)
	}
}
