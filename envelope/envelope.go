// Package envelope implements the JSON Envelope (C9): the three external
// entry points (extract_step_index, match_steps, diagnostics_for_feature),
// each a pure string -> string function over UTF-8 JSON. Every failure
// mode — malformed input, or (unreachably, with well-typed Go values)
// output serialization — is rendered as {"error": "<message>"} rather
// than propagated as a Go error or panic, per spec.md §6/§7.
package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/veighnsche/cukerust/diagnostics"
	"github.com/veighnsche/cukerust/internal/corelog"
	"github.com/veighnsche/cukerust/match"
	"github.com/veighnsche/cukerust/stepindex"
	"go.uber.org/zap"
)

type extractStepIndexInput struct {
	Files []stepindex.SourceFile `json:"files"`
}

// ExtractStepIndex implements the extract_step_index entry point.
func ExtractStepIndex(input string) string {
	raw := []byte(input)
	if err := validateAgainst(extractStepIndexSchema, raw); err != nil {
		return renderError(err)
	}

	var in extractStepIndexInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return renderError(fmt.Errorf("%w: %v", ErrInputParse, err))
	}

	var entries []stepindex.StepEntry
	for _, f := range in.Files {
		entries = append(entries, stepindex.ExtractFromFile(f)...)
	}
	idx := stepindex.BuildIndex(entries)

	out, err := json.Marshal(idx)
	if err != nil {
		return renderError(fmt.Errorf("%w: %v", ErrOutputSerialize, err))
	}
	return string(out)
}

type matchStepsQuery struct {
	Kind string `json:"kind"`
	Body string `json:"body"`
	Mode string `json:"mode"`
}

type matchStepsInput struct {
	Steps []stepindex.StepEntry `json:"steps"`
	Query matchStepsQuery       `json:"query"`
}

// MatchSteps implements the match_steps entry point. Mode defaults to
// "smart" when the query omits it.
func MatchSteps(input string) string {
	raw := []byte(input)
	if err := validateAgainst(matchStepsSchema, raw); err != nil {
		return renderError(err)
	}

	var in matchStepsInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return renderError(fmt.Errorf("%w: %v", ErrInputParse, err))
	}

	mode := match.Mode(in.Query.Mode)
	if mode == "" {
		mode = match.Smart
	}

	matched := match.Match(in.Steps, stepindex.StepKind(in.Query.Kind), in.Query.Body, mode)
	if matched == nil {
		matched = []stepindex.StepEntry{}
	}

	out, err := json.Marshal(matched)
	if err != nil {
		return renderError(fmt.Errorf("%w: %v", ErrOutputSerialize, err))
	}
	return string(out)
}

type diagnosticsConfigInput struct {
	Dialect   string `json:"dialect"`
	MatchMode string `json:"match_mode"`
}

type diagnosticsInput struct {
	FeatureText string                  `json:"feature_text"`
	Config      *diagnosticsConfigInput `json:"config"`
	Steps       []stepindex.StepEntry   `json:"steps"`
}

type diagnosticsOutput struct {
	Diags []diagnostics.Diagnostic `json:"diags"`
}

// DiagnosticsForFeature implements the diagnostics_for_feature entry
// point. Defaults: dialect "auto", match_mode "smart".
func DiagnosticsForFeature(input string) string {
	raw := []byte(input)
	if err := validateAgainst(diagnosticsSchema, raw); err != nil {
		return renderError(err)
	}

	var in diagnosticsInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return renderError(fmt.Errorf("%w: %v", ErrInputParse, err))
	}

	cfg := diagnostics.DefaultConfig()
	if in.Config != nil {
		if in.Config.Dialect != "" {
			cfg.Dialect = in.Config.Dialect
		}
		if in.Config.MatchMode != "" {
			cfg.MatchMode = match.Mode(in.Config.MatchMode)
		}
	}

	diags := diagnostics.ForFeature(in.FeatureText, in.Steps, cfg)
	if diags == nil {
		diags = []diagnostics.Diagnostic{}
	}

	out, err := json.Marshal(diagnosticsOutput{Diags: diags})
	if err != nil {
		return renderError(fmt.Errorf("%w: %v", ErrOutputSerialize, err))
	}
	return string(out)
}

// renderError renders err as the {"error": "<message>"} envelope. If
// marshaling the error envelope itself somehow fails, a hand-written
// fallback string is returned so this function can never panic or
// return invalid JSON.
func renderError(err error) string {
	corelog.L().Warn("envelope call failed", zap.Error(err))

	out, marshalErr := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: err.Error()})
	if marshalErr != nil {
		return `{"error":"envelope: failed to render error"}`
	}
	return string(out)
}
