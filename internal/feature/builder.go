package feature

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bddtools/bddconv/internal/model"
)

// Sink receives the tests of every suite that owns at least one direct
// test, in depth-first suite order. Suites holding only nested suites
// are never passed to the sink.
type Sink interface {
	WriteSuite(suiteName string, tests []TestRecord) error
}

// Builder flattens a suite tree into suite records. When a sink is set,
// each suite with direct tests is handed to it as soon as the suite's
// records are complete, before its parent finishes.
type Builder struct {
	outputPath string
	sink       Sink
}

// NewBuilder creates a Builder. outputPath is the configured output
// location; relative sources are computed against its containing
// directory. An empty outputPath disables relative-source computation.
func NewBuilder(outputPath string, sink Sink) *Builder {
	return &Builder{outputPath: outputPath, sink: sink}
}

// BuildSuite converts a suite node and all of its descendants. Child
// suites are processed before the suite's own tests, so nested feature
// files appear before their parent's.
func (b *Builder) BuildSuite(suite *model.Suite) (*SuiteRecord, error) {
	relSource, err := b.relativeSource(suite.Source)
	if err != nil {
		return nil, err
	}

	children := make([]*SuiteRecord, 0, len(suite.Suites))
	for _, child := range suite.Suites {
		record, err := b.BuildSuite(child)
		if err != nil {
			return nil, err
		}
		children = append(children, record)
	}

	tests := make([]TestRecord, 0, len(suite.Tests))
	for _, test := range suite.Tests {
		tests = append(tests, BuildTest(test))
	}
	if len(tests) > 0 && b.sink != nil {
		if err := b.sink.WriteSuite(suite.Name, tests); err != nil {
			return nil, err
		}
	}

	return &SuiteRecord{
		Source:         suite.Source,
		RelativeSource: relSource,
		ID:             suite.ID,
		Name:           suite.Name,
		FullName:       suite.LongName,
		Doc:            suite.Doc,
		NumberOfTests:  suite.TestCount,
		Suites:         children,
		Tests:          tests,
		Keywords:       Normalize([]*model.Keyword{suite.Setup, suite.Teardown}),
	}, nil
}

// relativeSource computes the suite source path relative to the
// directory containing the output path. It is all-or-nothing: missing
// inputs yield "", and an unresolvable pair of paths is an error rather
// than a partial result.
func (b *Builder) relativeSource(source string) (string, error) {
	if source == "" || b.outputPath == "" {
		return "", nil
	}
	rel, err := filepath.Rel(filepath.Dir(b.outputPath), source)
	if err != nil {
		return "", fmt.Errorf("resolve source %s relative to %s: %w", source, b.outputPath, err)
	}
	return rel, nil
}

// BuildTest converts a single test into its record form. The body is
// copied before setup and teardown are spliced in, so the shared model
// tree is never mutated.
func BuildTest(test *model.Test) TestRecord {
	body := make([]*model.Keyword, 0, len(test.Body)+2)
	if test.Setup != nil {
		body = append(body, test.Setup)
	}
	body = append(body, test.Body...)
	if test.Teardown != nil {
		body = append(body, test.Teardown)
	}

	tags := make([]string, len(test.Tags))
	copy(tags, test.Tags)

	return TestRecord{
		Name:     scenarioName(test.Name),
		FullName: test.LongName,
		ID:       test.ID,
		Doc:      test.Doc,
		Tags:     tags,
		Timeout:  FormatTimeout(test.Timeout),
		Keywords: Normalize(body),
	}
}

// scenarioName prefixes the test name with "Scenario: " unless the name
// already mentions a scenario in any casing.
func scenarioName(name string) string {
	if strings.Contains(strings.ToLower(name), "scenario") {
		return name
	}
	return "Scenario: " + name
}
