package envelope

import (
	"encoding/json"
	"fmt"
	"strings"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// Compiled once at package init, the same compile-then-validate shape
// ormasoftchile-gert's pkg/schema/validate.go wires the same library
// with: parse the schema's own JSON into an `any`, AddResource it under
// a synthetic name, Compile, then Validate an `any` decoded from the
// candidate document.
var (
	extractStepIndexSchema = mustCompile("extract_step_index.json", extractStepIndexSchemaJSON)
	matchStepsSchema       = mustCompile("match_steps.json", matchStepsSchemaJSON)
	diagnosticsSchema      = mustCompile("diagnostics_for_feature.json", diagnosticsSchemaJSON)
)

func mustCompile(name, schemaJSON string) *sjsonschema.Schema {
	var doc any
	if err := json.Unmarshal([]byte(schemaJSON), &doc); err != nil {
		panic(fmt.Sprintf("envelope: invalid built-in schema %s: %v", name, err))
	}

	c := sjsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("envelope: cannot register built-in schema %s: %v", name, err))
	}

	sch, err := c.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("envelope: cannot compile built-in schema %s: %v", name, err))
	}

	return sch
}

// validateAgainst validates raw JSON bytes against sch, returning
// ErrInputParse wrapped with a JSON-pointer path to the first offending
// location on failure.
func validateAgainst(sch *sjsonschema.Schema, raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrInputParse, err)
	}

	if err := sch.Validate(doc); err != nil {
		if ve, ok := err.(*sjsonschema.ValidationError); ok {
			path := strings.Join(firstLeaf(ve).InstanceLocation, "/")
			return fmt.Errorf("%w: at /%s: %v", ErrInputParse, path, firstLeaf(ve).ErrorKind)
		}
		return fmt.Errorf("%w: %v", ErrInputParse, err)
	}

	return nil
}

// firstLeaf descends into the first cause chain to find a concrete leaf
// error, since top-level schema failures are often just "doesn't match
// the schema" wrappers around the actually useful cause.
func firstLeaf(ve *sjsonschema.ValidationError) *sjsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

const extractStepIndexSchemaJSON = `{
  "type": "object",
  "properties": {
    "files": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "path": {"type": "string"},
          "text": {"type": "string"}
        },
        "required": ["path", "text"]
      }
    }
  },
  "required": ["files"]
}`

const stepEntrySchemaFragment = `{
  "type": "object",
  "properties": {
    "kind": {"enum": ["Given", "When", "Then"]},
    "regex": {"type": "string"},
    "file": {"type": "string"},
    "line": {"type": "integer", "minimum": 1},
    "function": {"type": "string"},
    "captures": {"type": "array", "items": {"type": "string"}},
    "tags": {"type": "array", "items": {"type": "string"}},
    "notes": {"type": "string"}
  },
  "required": ["kind", "regex", "file", "line"]
}`

var matchStepsSchemaJSON = `{
  "type": "object",
  "properties": {
    "steps": {"type": "array", "items": ` + stepEntrySchemaFragment + `},
    "query": {
      "type": "object",
      "properties": {
        "kind": {"enum": ["Given", "When", "Then"]},
        "body": {"type": "string"},
        "mode": {"enum": ["anchored", "smart", "substring"]}
      },
      "required": ["kind", "body"]
    }
  },
  "required": ["steps", "query"]
}`

var diagnosticsSchemaJSON = `{
  "type": "object",
  "properties": {
    "feature_text": {"type": "string"},
    "config": {
      "type": "object",
      "properties": {
        "dialect": {"type": "string"},
        "match_mode": {"enum": ["anchored", "smart", "substring"]}
      }
    },
    "steps": {"type": "array", "items": ` + stepEntrySchemaFragment + `}
  },
  "required": ["feature_text", "steps"]
}`
