// Package diagnostics implements the Diagnostics Engine (C8): composing
// the Feature Scanner (feature) and Matching Engine (match) to classify
// every step line in a feature file as OK, Undefined, or Ambiguous.
package diagnostics

import "github.com/veighnsche/cukerust/match"

// Diagnostic is a single finding against a feature file. Line is
// 0-based, for direct editor-gutter use, contrasting with
// stepindex.StepEntry.Line, which is 1-based.
type Diagnostic struct {
	Line     int    `json:"line"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Config configures a diagnostics_for_feature call. The zero value is
// accepted: ForFeature treats an empty Dialect as "auto" and an empty
// MatchMode as "smart", the same values DefaultConfig() returns.
type Config struct {
	Dialect   string
	MatchMode match.Mode
}

// DefaultConfig returns the spec-mandated defaults: dialect "auto",
// match mode "smart".
func DefaultConfig() Config {
	return Config{Dialect: "auto", MatchMode: match.Smart}
}
