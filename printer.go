package sajs

import (
	"fmt"
	"io"
)

// A Flusher can flush buffered output to its destination. If a Printer's
// Flusher field is set, it is flushed after each top-level value, so an
// interactive consumer sees complete values as soon as they are parsed.
type Flusher interface {
	Flush() error
}

// Printer materializes the TextOutput fragments produced by a Writer: it
// decides what whitespace each prefix hint becomes and writes the result
// to an io.Writer.
//
// IndentSize is the number of spaces per indentation level. If IndentSize
// is negative the output is terse: no newlines or indentation inside a
// value, and member colons are written without a trailing space. EndValue
// still ends each top-level value with a newline.
//
// The printing methods do not return an error because for a consumer of
// this package it's assumed to be an exceptional case that outputting
// results in an error and the only sensible outcome is to stop. Instead
// Printer panics with a *PrinterError when a write fails. A user can use
//
//	func printingFunction(p *Printer) (err error) {
//	    defer CatchPrinterError(&err)
//	    return doSomePrinting(p)
//	}
//
// to capture such errors.
type Printer struct {
	io.Writer
	IndentSize int
	Flusher    Flusher
	Colorizer  *Colorizer

	openScalar ValueKind // scalar currently being colored, 0 if none
}

// CatchPrinterError can be used to capture panics caused by a Printer
// because of an error encountered while attempting to send output. See
// the Printer documentation for details.
func CatchPrinterError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*PrinterError)
		if ok {
			*err = perr
		} else {
			panic(r)
		}
	}
}

// A PrinterError contains an error that occurred while a Printer was
// sending some output.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("printer error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}

func wrapError(err error) *PrinterError {
	return &PrinterError{Err: err}
}

// Print writes one output fragment: the whitespace and delimiter its
// prefix hint calls for, then its bytes. The Result that produced the
// fragment is needed too, so scalar values can be colorized as a unit
// even though their bytes arrive over many calls.
func (p *Printer) Print(r Result, out TextOutput) {
	if r.Event == DoubleEnd {
		// The open scalar was closed implicitly by the container end.
		p.endScalarColor()
	}

	p.printPrefix(out)

	if r.Event == Start && isScalarKind(r.Kind) {
		if p.Colorizer != nil {
			p.printBytes(p.Colorizer.scalarColorCode(r.Kind, r.Flags))
		}
		p.openScalar = r.Kind
	}

	p.printBytes(out.Bytes)

	if r.Event == End && isScalarKind(r.Kind) {
		p.endScalarColor()
	}
}

// EndValue terminates a top-level value with a newline and flushes the
// Flusher if one is set. The newline is written in terse mode too, so
// each top-level value occupies exactly one line.
func (p *Printer) EndValue() {
	p.printBytes(newlineBytes)
	if p.Flusher != nil {
		if err := p.Flusher.Flush(); err != nil {
			panic(wrapError(err))
		}
	}
}

func isScalarKind(kind ValueKind) bool {
	return kind == String || kind == Number || kind == Literal
}

var (
	newlineBytes    = []byte{'\n'}
	spaceBytes      = []byte{' '}
	commaBytes      = []byte{','}
	colonBytes      = []byte{':'}
	colonSpaceBytes = []byte{':', ' '}
)

// printPrefix materializes a prefix hint: nothing in terse mode except
// the commas and colons the syntax requires, otherwise the newline and
// indentation that put each member and element on its own line.
func (p *Printer) printPrefix(out TextOutput) {
	terse := p.IndentSize < 0
	switch out.Prefix {
	case PrefixNone:
	case PrefixObjectStart, PrefixArrayStart, PrefixObjectEnd, PrefixArrayEnd:
		if !terse {
			p.newLine(out.Indent)
		}
	case PrefixMemberColon:
		if terse {
			p.printBytes(colonBytes)
		} else {
			p.printBytes(colonSpaceBytes)
		}
	case PrefixMemberComma, PrefixArrayComma:
		p.printBytes(commaBytes)
		if !terse {
			p.newLine(out.Indent)
		}
	}
}

// newLine outputs '\n' followed by a number of spaces corresponding to
// the given indentation level.
func (p *Printer) newLine(indent uint) {
	p.printBytes(newlineBytes)
	for i := p.IndentSize * int(indent); i > 0; i-- {
		p.printBytes(spaceBytes)
	}
}

func (p *Printer) printBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	_, err := p.Write(b)
	if err != nil {
		panic(wrapError(err))
	}
}

func (p *Printer) endScalarColor() {
	if p.openScalar == 0 {
		return
	}
	if p.Colorizer != nil {
		p.printBytes(p.Colorizer.ResetCode)
	}
	p.openScalar = 0
}
