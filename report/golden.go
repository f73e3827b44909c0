// Package report provides golden-fixture JSON helpers for tests, adapted
// from the teacher's report/generator.go: writeJsonFile's
// marshal-then-write idiom is kept, but parseFeatures's real
// features/*.feature file discovery and gherkin-go parsing is dropped —
// that was file I/O against a live filesystem, explicitly out of scope
// for the core (spec.md §1). Only _test.go files in this module import
// this package; the core packages never write to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteExpected marshals v as indented JSON and writes it to path,
// creating or truncating the file. Intended for generating/refreshing a
// testdata/*.json golden fixture, not for production use.
func WriteExpected(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("marshal golden fixture: %w", err)
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write golden fixture %s: %w", path, err)
	}
	return nil
}

// Load reads the JSON file at path and unmarshals it into v.
func Load(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read golden fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("unmarshal golden fixture %s: %w", path, err)
	}
	return nil
}
