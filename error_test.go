package coreparse

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessageFormat(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{ExpectedAt(pos(0, 3), "foo"), "0:3: expected foo"},
		{ExpectedAt(pos(2, 0), "%d items", 3), "2:0: expected 3 items"},
		{NotEnoughInputAt(pos(1, 7)), "1:7: not enough remaining input"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ExpectedAt(pos(4, 4), "x").Message(); got != "expected x" {
		t.Errorf("Message() = %q", got)
	}
	if got := NotEnoughInputAt(pos(0, 0)).Message(); got != "not enough remaining input" {
		t.Errorf("Message() = %q", got)
	}
}

func TestErrorIs(t *testing.T) {
	expected := ExpectedAt(pos(0, 1), "x")
	notEnough := NotEnoughInputAt(pos(0, 1))

	if !errors.Is(expected, ErrExpected) {
		t.Error("Expected error should match ErrExpected")
	}
	if errors.Is(expected, ErrNotEnoughRemainingInput) {
		t.Error("Expected error should not match ErrNotEnoughRemainingInput")
	}
	if !errors.Is(notEnough, ErrNotEnoughRemainingInput) {
		t.Error("NotEnoughRemainingInput error should match its sentinel")
	}

	wrapped := fmt.Errorf("parsing config: %w", expected)
	if !errors.Is(wrapped, ErrExpected) {
		t.Error("wrapped error should still match ErrExpected")
	}
	var e *Error
	if !errors.As(wrapped, &e) || e.Pos != pos(0, 1) {
		t.Errorf("errors.As should recover the position, got %v", e)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{Expected, "Expected"},
		{NotEnoughRemainingInput, "NotEnoughRemainingInput"},
		{ErrorKind(9), "UnknownErrorKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMapErrorf(t *testing.T) {
	err := MapErrorf("bad value %d", 7)
	var me *MapError
	if !errors.As(err, &me) {
		t.Fatalf("MapErrorf should return a *MapError, got %T", err)
	}
	if me.Message != "bad value 7" || err.Error() != "bad value 7" {
		t.Errorf("MapErrorf message = %q", me.Message)
	}
}
