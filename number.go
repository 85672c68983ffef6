package coreparse

import (
	"strconv"

	"github.com/coregx/coreparse/span"
)

func asciiDigits() Matcher[span.Str] {
	return TakeWhileIn("0123456789")
}

// uintMatcher parses a run of decimal digits as an unsigned integer of the
// given bit size. The digit run may be empty; the parse then fails.
func uintMatcher(bitSize int, name string) Matcher[uint64] {
	return Map(asciiDigits(), func(_ span.Position, s span.Str) (uint64, error) {
		v, err := strconv.ParseUint(s.S, 10, bitSize)
		if err != nil {
			return 0, MapErrorf("failed to parse %q as %s: %v", s.S, name, err)
		}
		return v, nil
	})
}

// Uint32 matches a decimal unsigned integer that fits in 32 bits.
//
// Values out of range fail with Expected at the first digit:
//
//	_, err := coreparse.Parse(coreparse.Uint32(), "4294967296")
//	// 0:0: expected failed to parse "4294967296" as uint32: strconv.ParseUint: parsing "4294967296": value out of range
func Uint32() Matcher[uint32] {
	return Value(uintMatcher(32, "uint32"), func(v uint64) uint32 { return uint32(v) })
}

// Uint64 matches a decimal unsigned integer that fits in 64 bits.
func Uint64() Matcher[uint64] {
	return uintMatcher(64, "uint64")
}

// Int64 matches an optionally negative decimal integer that fits in 64 bits.
func Int64() Matcher[int64] {
	text := Matched(Match2(Optional(SpecificChar('-')), asciiDigits()))
	return Map(text, func(_ span.Position, s span.Str) (int64, error) {
		v, err := strconv.ParseInt(s.S, 10, 64)
		if err != nil {
			return 0, MapErrorf("failed to parse %q as int64: %v", s.S, err)
		}
		return v, nil
	})
}

// NumberText matches the text of a JSON number (https://www.json.org):
//
//	integer:  "0" | [1-9][0-9]*
//	fraction: ("." [0-9]+)?
//	exponent: ([eE] [+-]? [0-9]+)?
//
// The leading minus sign is not included; negation is left to the grammar.
func NumberText() Matcher[span.Str] {
	digit := CharRange('0', '9')

	integer := Any2(
		Matched(Str("0")),
		Matched(Match2(CharRange('1', '9'), Repeat(digit, Unbounded()))),
	)
	fraction := Matched(Optional(Match2(SpecificChar('.'), Repeat(digit, AtLeast(1)))))
	exponent := Matched(Optional(Match3(
		OneOf("eE"),
		Optional(OneOf("+-")),
		Repeat(digit, AtLeast(1)),
	)))

	return Matched(Match3(integer, fraction, exponent))
}

// Float64 matches a JSON number (without sign) and parses it as a float64.
func Float64() Matcher[float64] {
	return Map(NumberText(), func(_ span.Position, s span.Str) (float64, error) {
		v, err := strconv.ParseFloat(s.S, 64)
		if err != nil {
			return 0, MapErrorf("failed to parse %q as float64: %v", s.S, err)
		}
		return v, nil
	})
}
