package feature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EmittedFile describes one feature file produced during a conversion.
type EmittedFile struct {
	Suite string
	Path  string
	Tests int
}

// Emitter writes one feature-text file per suite. dir is the directory
// files are created in; empty means the current working directory. The
// whole file content is rendered first and written in a single call, so
// a failed write never leaves a partially flushed handle behind.
type Emitter struct {
	dir   string
	files []EmittedFile
}

// NewEmitter creates an Emitter writing into dir. Pass "" to write into
// the current working directory.
func NewEmitter(dir string) *Emitter {
	return &Emitter{dir: dir}
}

// Files lists the files written so far, in emission order.
func (e *Emitter) Files() []EmittedFile {
	return e.files
}

// WriteSuite renders and writes the feature file for one suite.
func (e *Emitter) WriteSuite(suiteName string, tests []TestRecord) error {
	path := filepath.Join(e.dir, FileName(suiteName))
	content := Render(suiteName, tests)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write feature file for suite %s: %w", suiteName, err)
	}

	e.files = append(e.files, EmittedFile{Suite: suiteName, Path: path, Tests: len(tests)})
	return nil
}

// FileName derives the feature file name from a suite name.
func FileName(suiteName string) string {
	return strings.ReplaceAll(suiteName, " ", "_") + ".feature"
}

// Render serializes test records into the feature text grammar:
// a "Feature:" header followed by two blank lines, then per test a tag
// blob and the display name on one line, one line per keyword indented
// with two tabs, and a trailing blank line.
func Render(suiteName string, tests []TestRecord) string {
	var b strings.Builder

	b.WriteString("Feature: " + suiteName + "\n\n\n")
	for _, test := range tests {
		// The tag blob runs straight into the test-name line: the
		// rendering concatenates "t", the slice's literal form, and the
		// tabbed name without a line break in between.
		fmt.Fprintf(&b, "t%v", test.Tags)
		b.WriteString("\t" + test.Name + "\n")
		for _, kw := range test.Keywords {
			b.WriteString("\t\t" + kw.Name + kw.Arguments + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
