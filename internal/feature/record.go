// Package feature converts a test-suite tree into feature-style text
// reports. A Builder flattens the tree into plain descriptive records,
// a normalizer collapses polymorphic keyword nodes into uniform line
// records, and an Emitter serializes one file per suite with tests.
package feature

// Line is the uniform record every keyword or control-flow node
// collapses to. Type is not rendered into the text output; it is kept
// for the structured document export.
type Line struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// TestRecord is the flattened form of a single test.
type TestRecord struct {
	Name     string   `json:"name"`
	FullName string   `json:"fullName"`
	ID       string   `json:"id"`
	Doc      string   `json:"doc"`
	Tags     []string `json:"tags"`
	Timeout  string   `json:"timeout"`
	Keywords []Line   `json:"keywords"`
}

// SuiteRecord is the flattened form of a suite and its descendants.
// Keywords holds the suite's own normalized setup/teardown; it is
// informational only and never rendered into the text output.
type SuiteRecord struct {
	Source         string         `json:"source"`
	RelativeSource string         `json:"relativeSource"`
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	FullName       string         `json:"fullName"`
	Doc            string         `json:"doc"`
	NumberOfTests  int            `json:"numberOfTests"`
	Suites         []*SuiteRecord `json:"suites"`
	Tests          []TestRecord   `json:"tests"`
	Keywords       []Line         `json:"keywords"`
}
