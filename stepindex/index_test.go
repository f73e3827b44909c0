package stepindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veighnsche/cukerust/stepindex"
)

// TestBuildIndex_AmbiguityCounting covers spec.md §8 scenario 4: two
// entries of the same kind and regex, at different lines, count as one
// ambiguous key, not two offending entries.
func TestBuildIndex_AmbiguityCounting(t *testing.T) {
	entries := []stepindex.StepEntry{
		{Kind: stepindex.Given, Regex: `^I have (\d+) cukes$`, File: "a.rs", Line: 10},
		{Kind: stepindex.Given, Regex: `^I have (\d+) cukes$`, File: "b.rs", Line: 3},
	}

	idx := stepindex.BuildIndex(entries)

	assert.Equal(t, 1, idx.Stats.Ambiguous)
	assert.Equal(t, 2, idx.Stats.Total)
}

func TestBuildIndex_SortsByFileThenLine(t *testing.T) {
	entries := []stepindex.StepEntry{
		{Kind: stepindex.When, Regex: "^b$", File: "z.rs", Line: 5},
		{Kind: stepindex.Given, Regex: "^a$", File: "a.rs", Line: 20},
		{Kind: stepindex.Then, Regex: "^c$", File: "a.rs", Line: 1},
	}

	idx := stepindex.BuildIndex(entries)

	require.Len(t, idx.Steps, 3)
	assert.Equal(t, "a.rs", idx.Steps[0].File)
	assert.Equal(t, 1, idx.Steps[0].Line)
	assert.Equal(t, "a.rs", idx.Steps[1].File)
	assert.Equal(t, 20, idx.Steps[1].Line)
	assert.Equal(t, "z.rs", idx.Steps[2].File)
}

func TestBuildIndex_StableForEqualKeys(t *testing.T) {
	entries := []stepindex.StepEntry{
		{Kind: stepindex.Given, Regex: "^a$", File: "a.rs", Line: 1, Function: strPtr("first")},
		{Kind: stepindex.When, Regex: "^b$", File: "a.rs", Line: 1, Function: strPtr("second")},
	}

	idx := stepindex.BuildIndex(entries)

	require.Len(t, idx.Steps, 2)
	assert.Equal(t, "first", *idx.Steps[0].Function)
	assert.Equal(t, "second", *idx.Steps[1].Function)
}

func TestBuildIndex_TotalsAndByKindInvariant(t *testing.T) {
	entries := []stepindex.StepEntry{
		{Kind: stepindex.Given, Regex: "^a$", File: "a.rs", Line: 1},
		{Kind: stepindex.When, Regex: "^b$", File: "a.rs", Line: 2},
		{Kind: stepindex.Then, Regex: "^c$", File: "a.rs", Line: 3},
		{Kind: stepindex.Then, Regex: "^d$", File: "a.rs", Line: 4},
	}

	idx := stepindex.BuildIndex(entries)

	assert.Equal(t, len(entries), idx.Stats.Total)
	assert.Equal(t, idx.Stats.Total, idx.Stats.ByKind.Given+idx.Stats.ByKind.When+idx.Stats.ByKind.Then)
	assert.Equal(t, 0, idx.Stats.Ambiguous)
}

func TestBuildIndex_EmptyInput(t *testing.T) {
	idx := stepindex.BuildIndex(nil)
	assert.Equal(t, 0, idx.Stats.Total)
	assert.Equal(t, 0, idx.Stats.Ambiguous)
	assert.Empty(t, idx.Steps)
	assert.Nil(t, idx.Stats.GeneratedAt)
}

func TestBuildIndexWithTimestamp_StampsGeneratedAt(t *testing.T) {
	idx := stepindex.BuildIndexWithTimestamp([]stepindex.StepEntry{
		{Kind: stepindex.Given, Regex: "^a$", File: "a.rs", Line: 1},
	})
	require.NotNil(t, idx.Stats.GeneratedAt)
	assert.NotEmpty(t, *idx.Stats.GeneratedAt)
}

func strPtr(s string) *string { return &s }
