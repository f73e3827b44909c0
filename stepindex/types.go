// Package stepindex implements the literal reader, comment stripper, step
// extractor, and index builder: the Step Index half of the static analysis
// core. Every call except BuildIndexWithTimestamp (which reads the wall
// clock) is a pure function of its input — no file I/O, no shared state
// across invocations.
package stepindex

// StepKind is a closed tagged variant. And/But are never a StepKind: they
// inherit the most recently seen explicit kind within a scenario, which is
// feature.StepLine's job to track, not this package's.
type StepKind string

const (
	Given StepKind = "Given"
	When  StepKind = "When"
	Then  StepKind = "Then"
)

// SourceFile is an opaque (path, text) pair. Paths are never interpreted
// beyond being carried through to StepEntry.File.
type SourceFile struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

// StepEntry is the atomic extraction record produced by ExtractFromFile.
type StepEntry struct {
	Kind     StepKind `json:"kind"`
	Regex    string   `json:"regex"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Function *string  `json:"function,omitempty"`
	Captures []string `json:"captures,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// ByKind sums to Stats.Total.
type ByKind struct {
	Given int `json:"Given"`
	When  int `json:"When"`
	Then  int `json:"Then"`
}

// Stats summarizes a StepIndex. GeneratedAt is set only by
// BuildIndexWithTimestamp, the one function in this package that reads the
// clock (see index.go); BuildIndex leaves it nil, so freestanding/sandboxed
// embeddings can omit it by simply not calling the timestamped constructor.
type Stats struct {
	Total       int     `json:"total"`
	ByKind      ByKind  `json:"by_kind"`
	Ambiguous   int     `json:"ambiguous"`
	GeneratedAt *string `json:"generated_at,omitempty"`
}

// StepIndex is the sorted, stable catalog of every step definition found
// across a corpus, plus summary Stats.
type StepIndex struct {
	Steps []StepEntry `json:"steps"`
	Stats Stats       `json:"stats"`
}
