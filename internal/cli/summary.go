package cli

import (
	"bytes"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bddtools/bddconv/internal/feature"
)

// renderSummary renders the per-suite emission summary as an ASCII table.
func renderSummary(title string, files []feature.EmittedFile) string {
	var buf bytes.Buffer

	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"SUITE", "FILE", "TESTS"})

	total := 0
	for _, f := range files {
		t.AppendRow(table.Row{f.Suite, filepath.Base(f.Path), f.Tests})
		total += f.Tests
	}
	t.AppendFooter(table.Row{"", "TOTAL", total})

	t.SetStyle(table.StyleLight)
	t.Render()
	return buf.String()
}
