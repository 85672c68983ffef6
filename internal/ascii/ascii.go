// Package ascii provides ASCII fast paths for position tracking and byte-class
// scanning over strings.
//
// Column arithmetic in the span package counts codepoints. When input is pure
// ASCII every byte is one codepoint, so positions can be computed from byte
// counts without decoding UTF-8. Byte tables give the same shortcut to
// character-class matchers whose members are all ASCII.
package ascii

// hi8 extracts the high bit of each of 8 packed bytes.
const hi8 = uint64(0x8080808080808080)

// IsASCII reports whether every byte of s is below 0x80.
//
// Algorithm (SWAR, SIMD Within A Register):
//  1. Pack 8 bytes of s into a uint64
//  2. AND with 0x8080808080808080 to extract the high bits
//  3. A non-zero result means at least one byte is non-ASCII
//
// Inputs shorter than 8 bytes are checked byte by byte.
func IsASCII(s string) bool {
	n := len(s)
	i := 0
	for i+8 <= n {
		chunk := uint64(s[i]) |
			uint64(s[i+1])<<8 |
			uint64(s[i+2])<<16 |
			uint64(s[i+3])<<24 |
			uint64(s[i+4])<<32 |
			uint64(s[i+5])<<40 |
			uint64(s[i+6])<<48 |
			uint64(s[i+7])<<56
		if chunk&hi8 != 0 {
			return false
		}
		i += 8
	}
	for ; i < n; i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// FirstNonASCII returns the index of the first non-ASCII byte, or -1 if all
// bytes are ASCII.
func FirstNonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}

// Table is a byte membership table. Only entries below 0x80 are ever set by
// NewTable, so a table never matches a byte of a multi-byte UTF-8 sequence.
type Table [256]bool

// NewTable builds a table from the bytes of set. It returns false if set
// contains a non-ASCII byte, in which case the table must not be used.
func NewTable(set string) (*Table, bool) {
	var t Table
	for i := 0; i < len(set); i++ {
		b := set[i]
		if b >= 0x80 {
			return nil, false
		}
		t[b] = true
	}
	return &t, true
}

// Contains reports whether b is in the table.
func (t *Table) Contains(b byte) bool {
	return t[b]
}

// SpanIn returns the length of the longest prefix of s consisting only of
// bytes in t.
func (t *Table) SpanIn(s string) int {
	for i := 0; i < len(s); i++ {
		if !t[s[i]] {
			return i
		}
	}
	return len(s)
}
