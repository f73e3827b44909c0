package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veighnsche/cukerust/dialect"
	"github.com/veighnsche/cukerust/feature"
	"github.com/veighnsche/cukerust/stepindex"
)

func en(t *testing.T) dialect.Dialect {
	t.Helper()
	return dialect.Resolve("en")
}

func TestScanSteps_AndInheritsPrecedingKind(t *testing.T) {
	text := "Feature: f\n  Scenario: s\n    Given I have 5 cukes\n    And I have a bowl\n    When I eat 3\n    But I do not choke\n"
	lines := feature.ScanSteps(text, en(t))

	require.Len(t, lines, 4)
	assert.Equal(t, stepindex.Given, lines[0].Kind)
	assert.Equal(t, stepindex.Given, lines[1].Kind, "And inherits the preceding Given")
	assert.Equal(t, stepindex.When, lines[2].Kind)
	assert.Equal(t, stepindex.When, lines[3].Kind, "But inherits the preceding When")
}

func TestScanSteps_KindResetsAtScenarioBoundary(t *testing.T) {
	text := "Feature: f\n" +
		"  Scenario: one\n" +
		"    When I eat 3\n" +
		"  Scenario: two\n" +
		"    And leftover and-step with no preceding kind\n"
	lines := feature.ScanSteps(text, en(t))

	require.Len(t, lines, 2)
	assert.Equal(t, stepindex.When, lines[0].Kind)
	assert.Equal(t, stepindex.Given, lines[1].Kind, "And with no kind in its own scenario defaults to Given")
}

func TestScanSteps_IgnoresNonStepLines(t *testing.T) {
	text := "Feature: f\n  Scenario: s\n    Given a thing\n    # a comment\n\n    When something happens\n"
	lines := feature.ScanSteps(text, en(t))
	require.Len(t, lines, 2)
	assert.Equal(t, "a thing", lines[0].Body)
	assert.Equal(t, "something happens", lines[1].Body)
}

func TestScanSteps_LineIndexIsZeroBased(t *testing.T) {
	text := "Given a thing\n"
	lines := feature.ScanSteps(text, en(t))
	require.Len(t, lines, 1)
	assert.Equal(t, 0, lines[0].LineIndex)
}

func TestScanSteps_BackgroundAlsoResetsKind(t *testing.T) {
	text := "Feature: f\n" +
		"  Background:\n" +
		"    And no prior kind here\n"
	lines := feature.ScanSteps(text, en(t))
	require.Len(t, lines, 1)
	assert.Equal(t, stepindex.Given, lines[0].Kind)
}
