// Package sajs is a streaming, event-driven JSON reader and a companion
// text writer that together form a push-style SAX-like pipeline.
//
// The Lexer consumes one input byte at a time and emits small structural
// events (value starts, value ends, character bytes) without buffering
// input beyond a fixed-size container-nesting stack set up at
// construction. The Writer transforms those events into well-formed JSON
// text, emitting fragments annotated with whitespace-prefix hints so the
// caller controls actual indentation and line breaks.
//
// Neither type does any I/O of its own, and neither allocates after
// construction:
//
//	lexer, err := sajs.NewLexer(64)
//	writer := sajs.NewWriter()
//	for {
//	    r := lexer.ReadByte(nextByte())
//	    out := writer.Write(r, lexer.Bytes())
//	    // materialize out.Prefix and out.Bytes however you like
//	}
//
// A *Lexer or *Writer is owned exclusively by its caller and must not be
// used concurrently from more than one goroutine; two instances may be
// used concurrently without synchronization.
//
// The reference command-line tool built on this package is in
// cmd/sajspipe. Install it with:
//
//	go install github.com/drobilla/sajs/cmd/sajspipe
package sajs
