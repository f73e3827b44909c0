package cucumber

// RenderedStep is one step line tagged with the diagnosis (if any) found
// for it, ready to be placed into the report tree. Line1 is 1-based, for
// human display.
type RenderedStep struct {
	Keyword   string
	Body      string
	Line1     int
	Diagnosis *Diagnosis
}

// ScenarioInput is the input BuildFeature consumes for a single
// scenario's worth of rendered steps. This package no longer walks a
// cucumber/gherkin-go AST (Formatter.go's original FormatFeature/
// FormatScenario did): the core's own feature.ScanSteps is a bespoke
// line scanner per spec.md §4.6, not a gherkin-go parser consumer, so the
// caller (internal/summary) supplies already-grouped scenario data
// instead of this package walking a *msgs.GherkinDocument_Feature.
type ScenarioInput struct {
	Keyword string
	Name    string
	Steps   []RenderedStep
}

// BuildFeature assembles a Feature report from pre-grouped scenario
// data, mirroring the teacher's FormatFeature/FormatScenario shape
// (walk children, accumulate into the report tree) without the AST
// dependency.
func BuildFeature(uri, name string, scenarios []ScenarioInput) Feature {
	f := NewFeature(uri, name)
	for _, si := range scenarios {
		sc := NewScenario(si.Keyword, si.Name)
		for _, rs := range si.Steps {
			step := NewStep(rs.Keyword, rs.Body, rs.Line1)
			if rs.Diagnosis != nil {
				step = step.WithDiagnosis(rs.Diagnosis.Message, rs.Diagnosis.Severity)
			}
			sc.AddStep(step)
		}
		f.AddScenario(sc)
	}
	return f
}
