package sajs

// Result is the compact outcome of a single Lexer.ReadByte call: a status,
// an event kind, and (for Start/End/DoubleEnd) the value kind and flags
// that describe it.
//
// A single call to ReadByte returns exactly one Result; the caller passes
// it, together with Lexer.Bytes, to Writer.Write to turn it into text.
type Result struct {
	Status Status
	Event  Event
	Kind   ValueKind
	Flags  Flags
}
