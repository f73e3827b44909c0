// Package feature implements the Feature Scanner (C7): tokenizing
// Gherkin-like feature text into step lines with inherited kind, plus
// Scenario Outline / Examples table resolution.
package feature

import "github.com/veighnsche/cukerust/stepindex"

// StepLine is one detected step within a feature file.
type StepLine struct {
	// LineIndex is the 0-based line number within the feature text,
	// matching Diagnostic.Line's numbering (spec.md §3).
	LineIndex int
	Kind      stepindex.StepKind
	Keyword   string
	Body      string
}

// ExamplesTable is a parsed Examples: block beneath a Scenario Outline.
type ExamplesTable struct {
	Headers []string
	Rows    [][]string
}

// OutlineContext describes what was found when resolving a step line's
// Scenario Outline membership. Per spec.md §4.6 only the single nearest
// Examples: table below the enclosing "Scenario Outline:" line is
// considered, not every Examples block in the scenario.
type OutlineContext struct {
	IsOutline bool
	Examples  *ExamplesTable
}
