package feature

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteDocument serializes the conversion document as indented JSON.
func WriteDocument(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal conversion document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write conversion document: %w", err)
	}
	return nil
}
