// Package summary renders a diagnostics run as a human-readable nested
// tree, for test failure output only (t.Logf("%s", summary.Render(...))).
// It is never called by envelope's three entry points: spec.md §1 treats
// persistence of results beyond the JSON envelope as out of scope, and
// this package exists purely so the teacher's cucumber-report formatter
// code stays adapted and exercised rather than deleted outright.
package summary

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/veighnsche/cukerust/diagnostics"
	"github.com/veighnsche/cukerust/feature"
	cucumberfmt "github.com/veighnsche/cukerust/formatter/cucumber"
)

var (
	featureHeaderRe  = regexp.MustCompile(`(?i)^\s*feature\s*:\s*(.*)$`)
	scenarioHeaderRe = regexp.MustCompile(`(?i)^\s*(scenario outline|scenario)\s*:\s*(.*)$`)
)

// Summarize groups stepLines and diags by their enclosing scenario and
// returns the nested report tree.
func Summarize(uri, featureText string, stepLines []feature.StepLine, diags []diagnostics.Diagnostic) cucumberfmt.Feature {
	diagByLine := make(map[int]diagnostics.Diagnostic, len(diags))
	for _, d := range diags {
		diagByLine[d.Line] = d
	}

	stepByLine := make(map[int]feature.StepLine, len(stepLines))
	for _, sl := range stepLines {
		stepByLine[sl.LineIndex] = sl
	}

	featureName := ""
	var scenarios []cucumberfmt.ScenarioInput
	var current *cucumberfmt.ScenarioInput

	flush := func() {
		if current != nil && len(current.Steps) > 0 {
			scenarios = append(scenarios, *current)
		}
		current = nil
	}

	lines := strings.Split(featureText, "\n")
	for i, line := range lines {
		if m := featureHeaderRe.FindStringSubmatch(line); m != nil {
			featureName = strings.TrimSpace(m[1])
			continue
		}
		if m := scenarioHeaderRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &cucumberfmt.ScenarioInput{
				Keyword: strings.TrimSpace(m[1]),
				Name:    strings.TrimSpace(m[2]),
			}
			continue
		}
		if sl, ok := stepByLine[i]; ok && current != nil {
			rs := cucumberfmt.RenderedStep{
				Keyword: sl.Keyword,
				Body:    sl.Body,
				Line1:   i + 1,
			}
			if d, ok := diagByLine[i]; ok {
				rs.Diagnosis = &cucumberfmt.Diagnosis{Message: d.Message, Severity: d.Severity}
			}
			current.Steps = append(current.Steps, rs)
		}
	}
	flush()

	return cucumberfmt.BuildFeature(uri, featureName, scenarios)
}

// Render marshals a Feature report as indented JSON for inclusion in a
// test failure log.
func Render(f cucumberfmt.Feature) string {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "<summary render failed: " + err.Error() + ">"
	}
	return string(b)
}
