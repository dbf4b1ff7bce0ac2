// Package model defines the test-suite tree consumed by the converter:
// suites containing nested suites and tests, tests containing a body of
// polymorphic keyword nodes. The tree is read-only to the rendering code;
// loaders in internal/suite construct and finalize it.
package model

// Suite is a named grouping of tests, possibly containing nested suites.
// Source, ID, LongName, and TestCount are assigned by the loader after
// decoding; they are not part of the document format.
type Suite struct {
	Name     string   `yaml:"name"`
	Doc      string   `yaml:"doc"`
	Suites   []*Suite `yaml:"suites"`
	Tests    []*Test  `yaml:"tests"`
	Setup    *Keyword `yaml:"setup"`
	Teardown *Keyword `yaml:"teardown"`

	Source    string `yaml:"-"`
	ID        string `yaml:"-"`
	LongName  string `yaml:"-"`
	TestCount int    `yaml:"-"`
}

// Test is a single test case with an ordered body of keyword nodes.
type Test struct {
	Name     string     `yaml:"name"`
	Doc      string     `yaml:"doc"`
	Tags     []string   `yaml:"tags"`
	Timeout  string     `yaml:"timeout"`
	Body     []*Keyword `yaml:"body"`
	Setup    *Keyword   `yaml:"setup"`
	Teardown *Keyword   `yaml:"teardown"`

	ID       string `yaml:"-"`
	LongName string `yaml:"-"`
}
