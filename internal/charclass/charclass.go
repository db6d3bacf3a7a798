// Package charclass holds the small byte classification predicates the
// lexer's state handlers dispatch on: digits, hex digits, and JSON
// whitespace.
package charclass

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit[T byte | rune](b T) bool {
	return b >= '0' && b <= '9'
}

// IsHexDigit reports whether b is 0-9, A-F, or a-f.
func IsHexDigit[T byte | rune](b T) bool {
	return IsDigit(b) || (b >= 'A' && b <= 'F') || (b >= 'a' && b <= 'f')
}

// IsSpace reports whether b is JSON insignificant whitespace: tab, line
// feed, carriage return, or space. Unlike unicode.IsSpace this is exactly
// the RFC 8259 whitespace set, nothing more.
func IsSpace[T byte | rune](b T) bool {
	return b == '\t' || b == '\n' || b == '\r' || b == ' '
}

// HexNibble returns the value of the hex digit b, or 0xFF if b is not a
// hex digit.
func HexNibble(b byte) uint8 {
	switch {
	case IsDigit(b):
		return b - '0'
	case b >= 'A' && b <= 'F':
		return 10 + b - 'A'
	case b >= 'a' && b <= 'f':
		return 10 + b - 'a'
	default:
		return 0xFF
	}
}
