package stepindex

import (
	"regexp"
	"strings"

	"github.com/veighnsche/cukerust/internal/corelog"
	"go.uber.org/zap"
)

var (
	builderRe = regexp.MustCompile(`\.(given|when|then)(?:::<[^>]*>)?\s*\(`)
	macroRe   = regexp.MustCompile(`\b(given|when|then)!\s*\(`)
	attrRe    = regexp.MustCompile(`(?s)#\[\s*(given|when|then)\b.*?\]`)
	fnRe      = regexp.MustCompile(`\bfn\s+([A-Za-z_][A-Za-z0-9_]*)`)
)

// ExtractFromFile runs the comment stripper then the three step-detection
// forms (builder, macro, attribute) against a single source file. Builder
// and macro detection is line-oriented; attribute detection scans the
// whole stripped text so it can span multi-line attribute blocks. Sites
// where no literal can be extracted produce no entry — this is a parser,
// not a validator.
func ExtractFromFile(sf SourceFile) []StepEntry {
	stripped := StripComments(sf.Text)
	var entries []StepEntry

	entries = append(entries, extractBuilderAndMacro(sf.Path, stripped, builderRe)...)
	entries = append(entries, extractBuilderAndMacro(sf.Path, stripped, macroRe)...)
	entries = append(entries, extractAttributes(sf.Path, stripped)...)

	corelog.L().Debug("extracted entries from file",
		zap.String("file", sf.Path), zap.Int("count", len(entries)))

	return entries
}

// extractBuilderAndMacro detects either the builder form (.given/.when/.then)
// or the macro form (given!/when!/then!) depending on re, line by line. A
// line with multiple call sites contributes one entry per site.
func extractBuilderAndMacro(path, stripped string, re *regexp.Regexp) []StepEntry {
	var entries []StepEntry
	lines := strings.Split(stripped, "\n")

	for idx, line := range lines {
		for _, m := range re.FindAllStringSubmatchIndex(line, -1) {
			kindStr := line[m[2]:m[3]]
			after := line[m[1]:]
			regexText, ok := ReadFirstLiteral([]byte(after))
			if !ok {
				continue
			}
			entries = append(entries, StepEntry{
				Kind:  kindFromLower(kindStr),
				Regex: regexText,
				File:  path,
				Line:  idx + 1,
			})
		}
	}

	return entries
}

func extractAttributes(path, stripped string) []StepEntry {
	var entries []StepEntry

	for _, m := range attrRe.FindAllStringSubmatchIndex(stripped, -1) {
		matchStart, matchEnd := m[0], m[1]
		kindStr := stripped[m[2]:m[3]]
		matchText := stripped[matchStart:matchEnd]

		openIdx := strings.IndexByte(matchText, '[')
		closeIdx := strings.LastIndexByte(matchText, ']')
		if openIdx < 0 || closeIdx < 0 || closeIdx <= openIdx {
			continue
		}
		inside := matchText[openIdx+1 : closeIdx]

		regexText, ok := ReadFirstLiteral([]byte(inside))
		if !ok {
			corelog.L().Debug("attribute form produced no literal, skipping",
				zap.String("file", path))
			continue
		}

		line := 1 + strings.Count(stripped[:matchStart], "\n")

		entry := StepEntry{
			Kind:  kindFromLower(kindStr),
			Regex: regexText,
			File:  path,
			Line:  line,
		}

		if fn, ok := scanFunctionName(stripped, matchEnd); ok {
			entry.Function = &fn
		}

		entries = append(entries, entry)
	}

	return entries
}

// scanFunctionName walks up to four lines after offset looking for a
// function-declaration keyword followed by an identifier. The four-line
// window is a documented design choice (spec.md §9 Open Question), not a
// bug: it is never widened to "walk to the next {".
func scanFunctionName(text string, from int) (string, bool) {
	rest := text[from:]
	lines := strings.Split(rest, "\n")

	limit := 4
	if len(lines) < limit {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		if m := fnRe.FindStringSubmatch(lines[i]); m != nil {
			return m[1], true
		}
	}

	return "", false
}

func kindFromLower(s string) StepKind {
	switch strings.ToLower(s) {
	case "given":
		return Given
	case "when":
		return When
	default:
		return Then
	}
}
