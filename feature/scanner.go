package feature

import (
	"regexp"
	"sort"
	"strings"

	"github.com/veighnsche/cukerust/dialect"
	"github.com/veighnsche/cukerust/internal/corelog"
	"github.com/veighnsche/cukerust/stepindex"
	"go.uber.org/zap"
)

// ScanSteps tokenizes feature text into step lines using d's keyword
// table. Kind inheritance (And/But borrowing the previous explicit
// kind) resets at every Background:/Scenario:/Scenario Outline: header,
// since each of those starts a fresh sequence of steps.
func ScanSteps(text string, d dialect.Dialect) []StepLine {
	lineRe := buildLineRegex(d)
	andBut := make(map[string]bool)
	for _, kw := range d.And {
		andBut[kw] = true
	}
	for _, kw := range d.But {
		andBut[kw] = true
	}

	lines := strings.Split(text, "\n")
	var out []StepLine
	var lastKind stepindex.StepKind
	haveLastKind := false

	for i, line := range lines {
		if isScenarioHeader(line) {
			haveLastKind = false
			continue
		}

		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		keyword, body := strings.TrimSpace(m[1]), m[2]

		var kind stepindex.StepKind
		if andBut[keyword] {
			if haveLastKind {
				kind = lastKind
			} else {
				kind = stepindex.Given
			}
		} else {
			kind = kindFor(d, keyword)
			lastKind = kind
			haveLastKind = true
		}

		out = append(out, StepLine{
			LineIndex: i,
			Kind:      kind,
			Keyword:   keyword,
			Body:      body,
		})
	}

	corelog.L().Debug("scanned feature steps", zap.Int("count", len(out)))

	return out
}

var headerRe = regexp.MustCompile(`(?i)^\s*(background|scenario outline|scenario)\s*:`)

func isScenarioHeader(line string) bool {
	return headerRe.MatchString(line)
}

// buildLineRegex builds ^\s*(KW1|KW2|...)\s+(.+)$ from the concatenated
// keyword lists of the active dialect, longest keyword first so a
// shorter keyword that happens to prefix a longer one never wins.
func buildLineRegex(d dialect.Dialect) *regexp.Regexp {
	var all []string
	all = append(all, d.Given...)
	all = append(all, d.When...)
	all = append(all, d.Then...)
	all = append(all, d.And...)
	all = append(all, d.But...)

	sort.Slice(all, func(i, j int) bool { return len(all[i]) > len(all[j]) })

	escaped := make([]string, len(all))
	for i, kw := range all {
		escaped[i] = regexp.QuoteMeta(kw)
	}

	pattern := `^\s*(` + strings.Join(escaped, "|") + `)\s+(.+)$`
	return regexp.MustCompile(pattern)
}

func kindFor(d dialect.Dialect, keyword string) stepindex.StepKind {
	for _, kw := range d.Given {
		if kw == keyword {
			return stepindex.Given
		}
	}
	for _, kw := range d.When {
		if kw == keyword {
			return stepindex.When
		}
	}
	return stepindex.Then
}
