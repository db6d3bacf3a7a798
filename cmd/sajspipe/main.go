// Command sajspipe reads JSON from a file or stdin one byte at a time and
// writes it back out, pretty-printed by default or as compactly as
// possible with -t.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/drobilla/sajs"
	"github.com/drobilla/sajs/internal/linepos"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const version = "0.1.0"

const defaultStackSize = 1024

// exDataErr is EX_DATAERR from sysexits.h: the input was not exactly one
// JSON value.
const exDataErr = 65

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see the EPIPE check in
	// run's caller).
	signal.Ignore(syscall.SIGPIPE)

	var (
		showVersion = flag.Bool("V", false, "display version information and exit")
		terse       = flag.Bool("t", false, "write terse output without whitespace inside values")
		outPath     = flag.String("o", "", "write output to `FILENAME` instead of stdout")
		stackArg    = flag.String("k", strconv.Itoa(defaultStackSize), "parser stack size in bytes")
		indentSize  = flag.Int("indent", 2, "indent step for output")
		forceColors = flag.Bool("colors", false, "force using colors")
		noColors    = flag.Bool("nocolors", false, "disable colors")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [OPTION]... [INPUT]\nRead and write JSON.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("sajspipe %s\n", version)
		return
	}
	stackSize, err := strconv.Atoi(*stackArg)
	if err != nil || stackSize <= 0 {
		fmt.Fprintf(os.Stderr, "%s: invalid size %q\n\n", os.Args[0], *stackArg)
		flag.Usage()
		os.Exit(2)
	}

	// Open input stream
	var input io.Reader = os.Stdin
	if filename := flag.Arg(0); filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			fatalError("%s: failed to open input (%s)", os.Args[0], err)
		}
		defer f.Close()
		input = f
	}

	// Open output stream
	var output io.Writer = os.Stdout
	stdoutIsTerminal := isatty.IsTerminal(os.Stdout.Fd())
	var colorizer *sajs.Colorizer
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatalError("%s: failed to open output (%s)", os.Args[0], err)
		}
		defer f.Close()
		output = f
		stdoutIsTerminal = false
	} else if stdoutIsTerminal {
		colorizer = &defaultColorizer
	}
	if *forceColors {
		colorizer = &defaultColorizer
	}
	if *noColors {
		colorizer = nil
	}

	// Set up stdout for handling colors
	if colorizer != nil && output == os.Stdout {
		output = colorable.NewColorableStdout()
	}

	lexer, err := sajs.NewLexer(stackSize)
	if err != nil {
		fatalError("%s: %s", os.Args[0], err)
	}

	out := bufio.NewWriter(output)
	printer := &sajs.Printer{
		Writer:     out,
		IndentSize: *indentSize,
		Colorizer:  colorizer,
	}
	if *terse {
		printer.IndentSize = -1
	}

	// If we are writing to a terminal, flush after each top-level value so
	// the user gets feedback early.
	if stdoutIsTerminal {
		printer.Flusher = out
	}

	code := run(lexer, printer, linepos.NewTracker(bufio.NewReader(input)), os.Stderr)
	if err := out.Flush(); err != nil && code == 0 {
		if !errors.Is(err, syscall.EPIPE) {
			fatalError("%s: failed write (%s)", os.Args[0], err)
		}
	}
	os.Exit(code)
}

// run feeds every input byte through the lexer, every resulting event
// through a writer, and every output fragment through the printer,
// terminating each top-level value with a newline. It returns the
// process exit code.
func run(lexer *sajs.Lexer, printer *sajs.Printer, in *linepos.Tracker, errOut io.Writer) int {
	writer := sajs.NewWriter()

	numValues := 0
	depth := 0
	st := sajs.Success

	err := func() (err error) {
		defer sajs.CatchPrinterError(&err)
		for st == sajs.Success {
			c := -1
			b, rerr := in.ReadByte()
			if rerr == nil {
				c = int(b)
			} else if rerr != io.EOF {
				return rerr
			}

			r := lexer.ReadByte(c)
			if st = r.Status; st != sajs.Success {
				return nil
			}

			isTopEnd := updateDepth(&depth, r)
			printer.Print(r, writer.Write(r, lexer.Bytes()))
			if isTopEnd {
				numValues++
				printer.EndValue()
			}
		}
		return nil
	}()
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or
			// 'less'). In this case we don't want to complain.
			return 0
		}
		var perr *sajs.PrinterError
		if !errors.As(err, &perr) {
			// Input I/O error.
			fmt.Fprintf(errOut, "error: %s\n", err)
			return 1
		}
		st = sajs.BadWrite
		fmt.Fprintf(errOut, "error: %s (%s)\n", sajs.Strerror(st), perr.Err)
	} else if st > sajs.Failure {
		pos := in.Pos()
		fmt.Fprintf(errOut, "error: %s at line %d, column %d\n", sajs.Strerror(st), pos.Line, pos.Col)
	}

	switch {
	case numValues != 1:
		return exDataErr
	case st == sajs.Failure:
		return 0
	default:
		return int(st) + 100
	}
}

// updateDepth tracks container nesting and reports whether r closed a
// top-level value.
func updateDepth(depth *int, r sajs.Result) bool {
	switch r.Event {
	case sajs.Start:
		*depth++
	case sajs.End:
		*depth--
		return *depth == 0
	case sajs.DoubleEnd:
		*depth -= 2
		return *depth == 0
	}
	return false
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

// Some color ANSI codes
var (
	ansiReset      = []byte("\033[0m")
	ansiYellow     = []byte("\033[33m")
	ansiWhite      = []byte("\033[37m")
	ansiGreen      = []byte("\033[32m")
	ansiBrightBlue = []byte("\033[34;1m")
)

var defaultColorizer = sajs.Colorizer{
	KeyColorCode: ansiBrightBlue,
	ScalarColorCodes: [6][]byte{
		sajs.String:  ansiGreen,
		sajs.Number:  ansiWhite,
		sajs.Literal: ansiYellow,
	},
	ResetCode: ansiReset,
}
