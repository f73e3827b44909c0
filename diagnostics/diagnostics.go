package diagnostics

import (
	"strings"

	"github.com/veighnsche/cukerust/dialect"
	"github.com/veighnsche/cukerust/feature"
	"github.com/veighnsche/cukerust/internal/corelog"
	"github.com/veighnsche/cukerust/match"
	"github.com/veighnsche/cukerust/stepindex"
	"go.uber.org/zap"
)

const (
	msgUndefined         = "Undefined step"
	msgAmbiguous         = "Ambiguous step"
	msgUndefinedOutlined = "Undefined step (none of the Examples values match)"
	msgAmbiguousOutlined = "Ambiguous step (one or more Examples values have multiple matches)"
)

// ForFeature classifies every step line in featureText against steps,
// per cfg's dialect and match mode. Diagnostics are returned in
// ascending source-line order, a direct consequence of the scanner's
// left-to-right walk (spec.md §5).
func ForFeature(featureText string, steps []stepindex.StepEntry, cfg Config) []Diagnostic {
	code := cfg.Dialect
	if code == "" || code == "auto" {
		code = dialect.DetectFromFeatureText(featureText)
	}
	d := dialect.Resolve(code)

	mode := cfg.MatchMode
	if mode == "" {
		mode = match.Smart
	}

	lines := strings.Split(featureText, "\n")
	stepLines := feature.ScanSteps(featureText, d)

	var diags []Diagnostic
	for _, sl := range stepLines {
		outline := feature.ResolveOutline(lines, sl.LineIndex)

		if !outline.IsOutline || outline.Examples == nil || !feature.HasPlaceholder(sl.Body) {
			if diag, ok := classifyPlain(steps, sl, mode); ok {
				diags = append(diags, diag)
			}
			continue
		}

		if diag, ok := classifyOutlined(steps, sl, outline.Examples, mode); ok {
			diags = append(diags, diag)
		}
	}

	corelog.L().Debug("computed diagnostics", zap.Int("count", len(diags)))

	return diags
}

func classifyPlain(steps []stepindex.StepEntry, sl feature.StepLine, mode match.Mode) (Diagnostic, bool) {
	matches := match.Match(steps, sl.Kind, sl.Body, mode)
	switch {
	case len(matches) == 0:
		return Diagnostic{Line: sl.LineIndex, Message: msgUndefined, Severity: "warning"}, true
	case len(matches) >= 2:
		return Diagnostic{Line: sl.LineIndex, Message: msgAmbiguous, Severity: "warning"}, true
	default:
		return Diagnostic{}, false
	}
}

func classifyOutlined(steps []stepindex.StepEntry, sl feature.StepLine, ex *feature.ExamplesTable, mode match.Mode) (Diagnostic, bool) {
	anyMatch := false
	anyAmbiguous := false

	for _, row := range ex.Rows {
		body := feature.SubstitutePlaceholders(sl.Body, ex.Headers, row)
		matches := match.Match(steps, sl.Kind, body, mode)
		if len(matches) > 0 {
			anyMatch = true
		}
		if len(matches) >= 2 {
			anyAmbiguous = true
		}
	}

	switch {
	case !anyMatch:
		return Diagnostic{Line: sl.LineIndex, Message: msgUndefinedOutlined, Severity: "warning"}, true
	case anyAmbiguous:
		return Diagnostic{Line: sl.LineIndex, Message: msgAmbiguousOutlined, Severity: "warning"}, true
	default:
		return Diagnostic{}, false
	}
}
