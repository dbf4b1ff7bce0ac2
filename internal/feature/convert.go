package feature

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bddtools/bddconv/internal/model"
)

// Document is the structured result of one conversion run: the full
// suite record tree plus run metadata. It exists for downstream
// consumers; the feature text files are the primary output.
type Document struct {
	Suite     *SuiteRecord `json:"suite"`
	Title     string       `json:"title"`
	Generated int64        `json:"generated"`
	RunID     string       `json:"runId"`
}

// Converter drives a full conversion: build records for the whole tree,
// emit one feature file per suite with direct tests, and assemble the
// conversion document.
type Converter struct {
	builder *Builder
	emitter *Emitter
	title   string
}

// NewConverter creates a Converter. outputPath anchors relative-source
// computation. title overrides the document title; underscores are
// shown as spaces, and an empty title falls back to the root suite name.
func NewConverter(outputPath, title string) *Converter {
	emitter := NewEmitter("")
	return &Converter{
		builder: NewBuilder(outputPath, emitter),
		emitter: emitter,
		title:   title,
	}
}

// Convert walks the suite tree depth-first, writing feature files as
// suites complete, and returns the conversion document. Any failure
// aborts the run; there is no partial retry.
func (c *Converter) Convert(root *model.Suite) (*Document, error) {
	record, err := c.builder.BuildSuite(root)
	if err != nil {
		return nil, err
	}

	title := root.Name
	if c.title != "" {
		title = strings.ReplaceAll(c.title, "_", " ")
	}

	return &Document{
		Suite:     record,
		Title:     title,
		Generated: time.Now().UnixMilli(),
		RunID:     uuid.NewString(),
	}, nil
}

// Emitted lists the feature files written by the last conversion.
func (c *Converter) Emitted() []EmittedFile {
	return c.emitter.Files()
}
