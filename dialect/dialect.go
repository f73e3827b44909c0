// Package dialect implements the Dialect Table (C6): locale-indexed
// keyword sets for Given/When/Then/And/But, seeded from
// cucumber/gherkin-go's builtin dialect data rather than a hand-copied
// keyword list, so every locale that library ships is available, not
// only en/es.
package dialect

import (
	"regexp"
	"strings"

	gherkin "github.com/cucumber/gherkin-go/v13"
)

// Dialect is a locale's keyword sets for the five step-introducing
// keywords. Keywords are stored trimmed of any trailing whitespace the
// upstream data carries (some locales ship keywords like "Given " to
// mark that a following space is mandatory; the feature scanner's
// generated line regex enforces that separator instead).
type Dialect struct {
	Code  string
	Given []string
	When  []string
	Then  []string
	And   []string
	But   []string
}

const (
	defaultCode  = "en"
	fallbackCode = "es"
)

var builtin = gherkin.DialectsBuiltin()

// Resolve returns the Dialect for code. If a configured code is given
// directly (anything other than "auto"), it is used as-is — looked up
// in gherkin-go's builtin table, falling back to English if the library
// does not know the code (the core never fails a call over a bad
// locale string, per spec.md §7's tolerant, best-effort contract).
func Resolve(code string) Dialect {
	if d, ok := fromBuiltin(code); ok {
		return d
	}
	d, _ := fromBuiltin(defaultCode)
	return d
}

// DetectFromFeatureText scans text for a `# language: xx` directive and
// returns the dialect code to use: the captured code if it begins with
// "es", otherwise English. Per spec.md §4.6 this prefix rule is the
// auto-detection heuristic, independent of which locales the underlying
// keyword table happens to support.
func DetectFromFeatureText(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if m := languageDirectiveRe.FindStringSubmatch(line); m != nil {
			code := m[1]
			if strings.HasPrefix(strings.ToLower(code), fallbackCode) {
				return fallbackCode
			}
			return defaultCode
		}
	}
	return defaultCode
}

var languageDirectiveRe = regexp.MustCompile(`^\s*#\s*language:\s*([A-Za-z0-9_-]+)`)

func fromBuiltin(code string) (Dialect, bool) {
	gd, ok := builtin[code]
	if !ok {
		return Dialect{}, false
	}
	return Dialect{
		Code:  code,
		Given: cleanKeywords(gd.Given),
		When:  cleanKeywords(gd.When),
		Then:  cleanKeywords(gd.Then),
		And:   cleanKeywords(gd.And),
		But:   cleanKeywords(gd.But),
	}, true
}

// cleanKeywords trims trailing whitespace gherkin-go's data embeds in
// some keywords and drops the "*" wildcard bullet some locales include,
// since it cannot distinguish Given/When/Then/And/But on its own and
// would make every line match every keyword class.
func cleanKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, kw := range in {
		trimmed := strings.TrimSpace(kw)
		if trimmed == "" || trimmed == "*" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
