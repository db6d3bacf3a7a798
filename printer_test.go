package sajs

import (
	"bytes"
	"errors"
	"testing"
)

// printAll drives text through a fresh pipeline into the given printer.
func printAll(t *testing.T, printer *Printer, text string) {
	t.Helper()
	lexer := mustNewLexer(t, 64)
	writer := NewWriter()
	feed := func(c int) bool {
		r := lexer.ReadByte(c)
		if r.Status > Failure {
			t.Fatalf("parsing %q: %s", text, r.Status)
		}
		if r.Status != Success {
			return false
		}
		printer.Print(r, writer.Write(r, lexer.Bytes()))
		return true
	}
	for i := 0; i < len(text); i++ {
		feed(int(text[i]))
	}
	for feed(-1) {
	}
}

func TestPrinterColorizesScalars(t *testing.T) {
	var buf bytes.Buffer
	printer := &Printer{
		Writer:     &buf,
		IndentSize: -1,
		Colorizer: &Colorizer{
			KeyColorCode: []byte("<k>"),
			ScalarColorCodes: [6][]byte{
				String:  []byte("<s>"),
				Number:  []byte("<n>"),
				Literal: []byte("<l>"),
			},
			ResetCode: []byte("<r>"),
		},
	}
	printAll(t, printer, `{"a":1,"b":"x","c":true}`)
	want := `{<k>"a"<r>:<n>1<r>,<k>"b"<r>:<s>"x"<r>,<k>"c"<r>:<l>true<r>}`
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrinterColorResetBeforeContainerClose(t *testing.T) {
	var buf bytes.Buffer
	printer := &Printer{
		Writer:     &buf,
		IndentSize: -1,
		Colorizer: &Colorizer{
			ScalarColorCodes: [6][]byte{Number: []byte("<n>")},
			ResetCode:        []byte("<r>"),
		},
	}
	printAll(t, printer, "[1]")
	// The ']' closes the number and the array at once; the color must be
	// reset before the bracket is written.
	if got, want := buf.String(), "[<n>1<r>]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type countingFlusher struct {
	flushes int
}

func (f *countingFlusher) Flush() error {
	f.flushes++
	return nil
}

func TestPrinterEndValueFlushes(t *testing.T) {
	var buf bytes.Buffer
	flusher := &countingFlusher{}
	printer := &Printer{Writer: &buf, IndentSize: -1, Flusher: flusher}
	printAll(t, printer, "[1,2]")
	printer.EndValue()
	if got := buf.String(); got != "[1,2]\n" {
		t.Errorf("got %q, want %q", got, "[1,2]\n")
	}
	if flusher.flushes != 1 {
		t.Errorf("got %d flushes, want 1", flusher.flushes)
	}
}

type failingWriter struct{}

var errSink = errors.New("sink is broken")

func (failingWriter) Write(b []byte) (int, error) {
	return 0, errSink
}

func TestCatchPrinterError(t *testing.T) {
	printer := &Printer{Writer: failingWriter{}, IndentSize: -1}

	err := func() (err error) {
		defer CatchPrinterError(&err)
		printer.Print(
			Result{Status: Success, Event: Start, Kind: Array, Flags: IsFirst},
			TextOutput{Status: Success, Bytes: []byte("[")},
		)
		return nil
	}()

	var perr *PrinterError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *PrinterError, got %v", err)
	}
	if !errors.Is(err, errSink) {
		t.Errorf("expected the sink error to be wrapped, got %v", err)
	}
}

func TestCatchPrinterErrorPassesOtherPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected the panic to propagate")
		}
	}()
	var err error
	defer CatchPrinterError(&err)
	panic("unrelated")
}
