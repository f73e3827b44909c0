// Package match implements the Matching Engine (C5): given a candidate
// list of step entries, a target kind, a body string, and a mode, it
// returns every entry whose kind matches and whose (mode-transformed)
// regex matches the trimmed body. Entries whose regex fails to compile
// are silently skipped, per spec.md §4.5/§7 — one malformed pattern must
// never blind the diagnostics pass to every other entry.
package match

import (
	"regexp"
	"strings"

	"github.com/veighnsche/cukerust/internal/corelog"
	"github.com/veighnsche/cukerust/stepindex"
	"go.uber.org/zap"
)

// Mode is the anchoring policy applied to a step definition's regex before
// it is tested against a scenario-step body.
type Mode string

const (
	Anchored  Mode = "anchored"
	Smart     Mode = "smart"
	Substring Mode = "substring"
)

// Match returns the subset of candidates whose Kind equals kind and whose
// regex, transformed per mode, matches strings.TrimSpace(body).
func Match(candidates []stepindex.StepEntry, kind stepindex.StepKind, body string, mode Mode) []stepindex.StepEntry {
	trimmed := strings.TrimSpace(body)

	var out []stepindex.StepEntry
	for _, c := range candidates {
		if c.Kind != kind {
			continue
		}

		pattern := transform(c.Regex, mode)
		re, err := regexp.Compile(pattern)
		if err != nil {
			corelog.L().Warn("skipping step with uncompilable regex",
				zap.String("file", c.File), zap.Int("line", c.Line), zap.Error(err))
			continue
		}

		if re.MatchString(trimmed) {
			out = append(out, c)
		}
	}

	return out
}

// transform applies the mode's anchoring policy to pattern.
func transform(pattern string, mode Mode) string {
	switch mode {
	case Anchored:
		return anchorBoth(pattern)
	case Substring:
		return pattern
	case Smart:
		fallthrough
	default:
		if strings.HasPrefix(pattern, "^") || strings.HasSuffix(pattern, "$") {
			return pattern
		}
		return anchorBoth(pattern)
	}
}

func anchorBoth(pattern string) string {
	out := pattern
	if !strings.HasPrefix(out, "^") {
		out = "^" + out
	}
	if !strings.HasSuffix(out, "$") {
		out = out + "$"
	}
	return out
}
