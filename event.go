package sajs

// Event is the kind of structural observation a Result carries.
type Event uint8

const (
	// Nothing means the byte was consumed but produced no observable
	// event: whitespace in a structural position, or a mid-token
	// continuation byte (e.g. a hex digit of a \u escape still being
	// accumulated).
	Nothing Event = iota

	// Start brackets the beginning of a value. For containers (Object,
	// Array) no bytes accompany the start. For numbers and literals, the
	// triggering byte is emitted as part of the Start event with
	// HasBytes set.
	Start

	// End brackets the end of a value: the closing quote, bracket, or
	// brace, or the first non-number byte after a number.
	End

	// DoubleEnd means one input byte terminated both a number/literal and
	// its surrounding container, e.g. ']' right after "123". Kind is set
	// to the kind of the outer container; the kind of the number/literal
	// being closed is implicit (it was whatever value was open).
	DoubleEnd

	// Bytes carries 1-4 UTF-8 bytes of a string, number, or literal body.
	Bytes
)

func (e Event) String() string {
	switch e {
	case Nothing:
		return "Nothing"
	case Start:
		return "Start"
	case End:
		return "End"
	case DoubleEnd:
		return "DoubleEnd"
	case Bytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}
