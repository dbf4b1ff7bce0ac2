// Package output provides formatted console output for the CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Semantic colors for console messages. fatih/color degrades to plain
// text automatically when stdout is not a terminal or NO_COLOR is set.
var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	actionColor  = color.New(color.FgCyan)
)

// Writer handles CLI output formatting.
type Writer struct {
	out     io.Writer
	err     io.Writer
	quiet   bool
	verbose bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out: os.Stdout,
		err: os.Stderr,
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer) *Writer {
	return &Writer{
		out: out,
		err: err,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetVerbose enables or disables verbose mode.
func (w *Writer) SetVerbose(verbose bool) {
	w.verbose = verbose
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println(format, args...)
}

// Detail prints a detail message (only in verbose mode).
func (w *Writer) Detail(format string, args ...interface{}) {
	if !w.verbose {
		return
	}
	w.Println("  "+format, args...)
}

// Action prints an action message (what the CLI is doing).
func (w *Writer) Action(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println("%s", actionColor.Sprintf(format, args...))
}

// Success prints a success message.
func (w *Writer) Success(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println("%s", successColor.Sprintf(format, args...))
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Errorln("%s %s", warningColor.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// ErrorPrefix prints an error message with the bddconv prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	w.Errorln("%s %s", errorColor.Sprint("bddconv:"), fmt.Sprintf(format, args...))
}
