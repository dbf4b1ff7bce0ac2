// Package schema provides JSON Schema validation for suite documents.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "github.com/bddtools/bddconv/schema"
)

var (
	suiteSchema *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		suiteData, err := schemafs.FS.ReadFile("suite.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read suite schema: %w", err)
			return
		}

		suiteDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(suiteData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal suite schema: %w", err)
			return
		}

		if err := compiler.AddResource("suite.schema.json", suiteDoc); err != nil {
			compileErr = fmt.Errorf("add suite schema resource: %w", err)
			return
		}

		suiteSchema, err = compiler.Compile("suite.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile suite schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateSuiteDocument validates raw YAML data against the suite schema.
func ValidateSuiteDocument(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	// Round-trip through JSON so values carry the types the validator
	// expects (float64 numbers, string-keyed maps).
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("convert document to JSON: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("reparse document: %w", err)
	}

	if err := suiteSchema.Validate(doc); err != nil {
		return fmt.Errorf("suite document validation failed: %w", err)
	}

	return nil
}
