package sajs

// ValueKind identifies what sort of JSON value a Start/End/DoubleEnd event
// belongs to. Kinds are numbered from 1 so the zero value of ValueKind
// means "none" (as seen, for example, on a Bytes or Nothing event, where
// Result.Kind is unused).
type ValueKind uint8

const (
	_ ValueKind = iota // 0 is reserved for "none"

	Object  // A JSON object, delimited by '{' '}'
	Array   // A JSON array, delimited by '[' ']'
	String  // A JSON string
	Number  // A JSON number
	Literal // false, null, or true
)

func (k ValueKind) String() string {
	switch k {
	case Object:
		return "Object"
	case Array:
		return "Array"
	case String:
		return "String"
	case Number:
		return "Number"
	case Literal:
		return "Literal"
	default:
		return "None"
	}
}
