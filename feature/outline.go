package feature

import (
	"regexp"
	"strings"
)

var (
	outlineHeaderRe     = regexp.MustCompile(`(?i)^\s*scenario outline\s*:`)
	scenarioOrFeatureRe = regexp.MustCompile(`(?i)^\s*(scenario|feature)\s*:`)
	examplesHeaderRe    = regexp.MustCompile(`(?i)^\s*examples\s*:`)
)

// ResolveOutline walks upward from lineIndex looking for an enclosing
// "Scenario Outline:" header (stopping early, not an outline, if a plain
// "Scenario:" or "Feature:" header is found first), and, if found, walks
// downward to the nearest "Examples:" block and parses its pipe table.
// Grounded on gobdd.go's getOutlineStep/stepsFromExamples placeholder
// substitution, adapted from "build a new regex per example row" (the
// teacher's approach, used to compile fresh step regexes) to "discover
// the table so the caller can substitute placeholders into the body
// text," per spec.md §4.6/§4.7.
func ResolveOutline(lines []string, lineIndex int) OutlineContext {
	isOutline := false
	outlineAt := -1

	for i := lineIndex - 1; i >= 0; i-- {
		line := lines[i]
		if outlineHeaderRe.MatchString(line) {
			isOutline = true
			outlineAt = i
			break
		}
		if scenarioOrFeatureRe.MatchString(line) {
			break
		}
	}

	if !isOutline {
		return OutlineContext{IsOutline: false}
	}

	table := findExamplesTable(lines, outlineAt)
	return OutlineContext{IsOutline: true, Examples: table}
}

// findExamplesTable walks downward from outlineAt to the nearest
// "Examples:" line, then parses the pipe-delimited table beneath it.
// Blank lines between "Examples:" and the table are tolerated; the
// table ends at the first non-pipe, non-blank line.
func findExamplesTable(lines []string, outlineAt int) *ExamplesTable {
	examplesAt := -1
	for i := outlineAt + 1; i < len(lines); i++ {
		if examplesHeaderRe.MatchString(lines[i]) {
			examplesAt = i
			break
		}
	}
	if examplesAt < 0 {
		return nil
	}

	var rows [][]string
	for i := examplesAt + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "|") {
			break
		}
		rows = append(rows, parseTableRow(trimmed))
	}

	if len(rows) == 0 {
		return nil
	}

	return &ExamplesTable{Headers: rows[0], Rows: rows[1:]}
}

// parseTableRow splits a pipe-delimited Gherkin table row into trimmed
// cells: outer pipes are trimmed first, then each interior cell.
func parseTableRow(row string) []string {
	inner := strings.Trim(row, "|")
	parts := strings.Split(inner, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

var placeholderRe = regexp.MustCompile(`<([^<>]+)>`)

// SubstitutePlaceholders replaces every <name> in body with the row's
// value for name, per the ExamplesTable's header-to-cell mapping.
// Placeholders with no matching header name are left untouched.
func SubstitutePlaceholders(body string, headers, row []string) string {
	values := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(row) {
			values[h] = row[i]
		}
	}

	return placeholderRe.ReplaceAllStringFunc(body, func(ph string) string {
		name := ph[1 : len(ph)-1]
		if v, ok := values[name]; ok {
			return v
		}
		return ph
	})
}

// HasPlaceholder reports whether body contains at least one <name> token.
func HasPlaceholder(body string) bool {
	return placeholderRe.MatchString(body)
}
