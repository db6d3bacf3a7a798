package sajs

// Writer turns the Results produced by a Lexer into fragments of JSON
// text. It holds only a handful of scratch fields and never allocates
// after construction.
type Writer struct {
	depth    uint      // container nesting depth
	topKind  ValueKind // kind of the value currently open
	topFlags Flags     // flags of the value currently open
	topBytes [8]byte   // backing array for the most recent TextOutput.Bytes
}

// NewWriter returns a Writer ready to format the Results of a fresh
// top-level value.
func NewWriter() *Writer {
	return &Writer{}
}

/*
 * Output constructors
 */

func makeOutput(status Status, prefix TextPrefix, indent uint, bytes []byte) TextOutput {
	return TextOutput{Status: status, Indent: indent, Bytes: bytes, Prefix: prefix}
}

func emitNothing() TextOutput {
	return makeOutput(Success, PrefixNone, 0, nil)
}

// emitByte writes a single byte with no prefix.
func (w *Writer) emitByte(b byte) TextOutput {
	w.topBytes[0] = b
	return makeOutput(Success, PrefixNone, 0, w.topBytes[:1])
}

// emitSep writes a prefix followed by a single byte.
func (w *Writer) emitSep(prefix TextPrefix, indent uint, b byte) TextOutput {
	w.topBytes[0] = b
	return makeOutput(Success, prefix, indent, w.topBytes[:1])
}

// emitPair writes two adjacent bytes with no prefix (a backslash escape).
func (w *Writer) emitPair(a, b byte) TextOutput {
	w.topBytes[0] = a
	w.topBytes[1] = b
	return makeOutput(Success, PrefixNone, 0, w.topBytes[:2])
}

/*
 * Event handlers
 */

// onStart is called when a value is started.
func (w *Writer) onStart(kind ValueKind, flags Flags, head byte) TextOutput {
	w.topKind = kind
	w.topFlags = flags

	isFirst := flags.Has(IsFirst)

	var prefix TextPrefix
	switch {
	case flags.Has(IsMemberValue):
		prefix = PrefixMemberColon
	case flags.Has(IsMemberName):
		if isFirst {
			prefix = PrefixObjectStart
		} else {
			prefix = PrefixMemberComma
		}
	case flags.Has(IsElement):
		if isFirst {
			prefix = PrefixArrayStart
		} else {
			prefix = PrefixArrayComma
		}
	default:
		prefix = PrefixNone
	}

	switch kind {
	case Object:
		out := w.emitSep(prefix, w.depth, '{')
		w.depth++
		return out
	case Array:
		out := w.emitSep(prefix, w.depth, '[')
		w.depth++
		return out
	case String:
		return w.emitSep(prefix, w.depth, '"')
	case Number, Literal:
	}

	return w.emitSep(prefix, w.depth, head)
}

// onByte is called on each character of an open string, number, or
// literal. Strings get escaped; everything else passes through raw.
func (w *Writer) onByte(b byte) TextOutput {
	if w.topKind != String {
		return w.emitByte(b)
	}

	switch b {
	case '"', '\\':
		return w.emitPair('\\', b)
	case '\b':
		return w.emitPair('\\', 'b')
	case '\f':
		return w.emitPair('\\', 'f')
	case '\n':
		return w.emitPair('\\', 'n')
	case '\r':
		return w.emitPair('\\', 'r')
	case '\t':
		return w.emitPair('\\', 't')
	}

	if b >= 0x20 {
		return w.emitByte(b) // printable ASCII, or a UTF-8 continuation/lead byte
	}

	// Generic control character: \u00XX
	const hexDigits = "0123456789ABCDEF"
	w.topBytes[0] = '\\'
	w.topBytes[1] = 'u'
	w.topBytes[2] = '0'
	w.topBytes[3] = '0'
	w.topBytes[4] = hexDigits[(b&0xF0)>>4]
	w.topBytes[5] = hexDigits[b&0x0F]
	return makeOutput(Success, PrefixNone, w.depth, w.topBytes[:6])
}

// onEnd is called when a value is finished. tail is the closing byte for
// a number or literal, or 0 if the End event carried no bytes.
func (w *Writer) onEnd(kind ValueKind, tail byte) TextOutput {
	w.topFlags = 0

	switch kind {
	case Object:
		w.depth--
		return w.emitSep(PrefixObjectEnd, w.depth, '}')
	case Array:
		w.depth--
		return w.emitSep(PrefixArrayEnd, w.depth, ']')
	case String:
		return w.emitByte('"')
	case Number, Literal:
	}

	if tail != 0 {
		return w.emitByte(tail)
	}
	return emitNothing()
}

// Write converts one Lexer Result into a fragment of JSON text. bytes
// should be the Lexer.Bytes() view captured immediately after the call
// that produced r.
func (w *Writer) Write(r Result, bytes []byte) TextOutput {
	head := func() byte {
		if r.Flags.Has(HasBytes) && len(bytes) > 0 {
			return bytes[0]
		}
		return 0
	}

	switch r.Event {
	case Start:
		return w.onStart(r.Kind, r.Flags, head())
	case End:
		return w.onEnd(r.Kind, head())
	case DoubleEnd:
		w.onEnd(w.topKind, 0)
		return w.onEnd(r.Kind, 0)
	case Bytes:
		if len(bytes) == 1 {
			return w.onByte(bytes[0])
		}
		return makeOutput(Success, PrefixNone, 0, bytes)
	}

	return emitNothing()
}
