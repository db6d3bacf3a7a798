package sajs

// A Colorizer holds the byte sequences (typically ANSI color codes) a
// Printer brackets scalar values with. A nil *Colorizer on a Printer
// means no coloring.
type Colorizer struct {
	// KeyColorCode colors object member names.
	KeyColorCode []byte
	// ScalarColorCodes is indexed by ValueKind; only the String, Number
	// and Literal entries are used.
	ScalarColorCodes [6][]byte
	// ResetCode is written after each colored scalar.
	ResetCode []byte
}

// scalarColorCode returns the code opening a scalar Start event: the key
// color for member names, the kind's color otherwise.
func (c *Colorizer) scalarColorCode(kind ValueKind, flags Flags) []byte {
	if flags.Has(IsMemberName) {
		return c.KeyColorCode
	}
	return c.ScalarColorCodes[kind]
}
