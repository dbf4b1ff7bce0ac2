// Package suite loads suite documents from YAML files into the model
// tree. Loading validates each document against the embedded JSON
// Schema, then finalizes the tree: suite and test IDs, long names,
// recursive test counts, and setup/teardown kinds.
package suite

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	apperrors "github.com/bddtools/bddconv/internal/errors"
	"github.com/bddtools/bddconv/internal/model"
	"github.com/bddtools/bddconv/internal/schema"
)

// Load reads, validates, and decodes a single suite document. The
// returned tree is not yet finalized; LoadAll finalizes the full tree
// it hands back.
func Load(path string) (*model.Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.InputWrap(path, err)
	}

	if err := schema.ValidateSuiteDocument(data); err != nil {
		return nil, apperrors.InputWrap(path, err)
	}

	var s model.Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, apperrors.InputWrap(path, err)
	}

	source, err := filepath.Abs(path)
	if err != nil {
		return nil, apperrors.InputWrap(path, err)
	}
	s.Source = source

	if s.Name == "" {
		s.Name = nameFromPath(path)
	}

	return &s, nil
}

// LoadAll loads one or more suite documents and returns a finalized
// tree. A single document becomes the root; multiple documents are
// grouped under a synthetic parent named after its children.
func LoadAll(paths []string) (*model.Suite, error) {
	if len(paths) == 0 {
		return nil, apperrors.Usage("at least one data source is required")
	}

	if len(paths) == 1 {
		root, err := Load(paths[0])
		if err != nil {
			return nil, err
		}
		Finalize(root)
		return root, nil
	}

	children := make([]*model.Suite, 0, len(paths))
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		child, err := Load(path)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		names = append(names, child.Name)
	}

	root := &model.Suite{
		Name:   strings.Join(names, " & "),
		Suites: children,
	}
	Finalize(root)
	return root, nil
}

// nameFromPath derives a suite name from the document file name:
// extension dropped, underscores shown as spaces, all-lowercase words
// capitalized. Words with existing capitals are kept as written.
func nameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")

	caser := cases.Title(language.English)
	words := strings.Fields(base)
	for i, word := range words {
		if word == strings.ToLower(word) {
			words[i] = caser.String(word)
		}
	}
	return strings.Join(words, " ")
}
