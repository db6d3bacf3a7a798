package charclass

import "testing"

func TestIsSpace(t *testing.T) {
	for _, b := range []byte{'\t', '\n', '\r', ' '} {
		if !IsSpace(b) {
			t.Errorf("IsSpace(%q) = false, want true", b)
		}
	}
	// Vertical tab and form feed are whitespace in some languages, but not
	// in JSON.
	for _, b := range []byte{'\v', '\f', 0, 'a', 0xA0} {
		if IsSpace(b) {
			t.Errorf("IsSpace(%q) = true, want false", b)
		}
	}
}

func TestHexNibble(t *testing.T) {
	tests := []struct {
		in   byte
		want uint8
	}{
		{'0', 0},
		{'9', 9},
		{'a', 10},
		{'f', 15},
		{'A', 10},
		{'F', 15},
		{'g', 0xFF},
		{'G', 0xFF},
		{'/', 0xFF},
	}
	for _, tt := range tests {
		if got := HexNibble(tt.in); got != tt.want {
			t.Errorf("HexNibble(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestIsHexDigit(t *testing.T) {
	for b := byte(0); b < 0x80; b++ {
		want := HexNibble(b) != 0xFF
		if got := IsHexDigit(b); got != want {
			t.Errorf("IsHexDigit(%q) = %v, want %v", b, got, want)
		}
	}
}
